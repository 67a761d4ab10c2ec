package validator

func init() {
	validate.RegisterValidation("subject_id", validateSubjectID)
	validate.RegisterValidation("security_level", validateSecurityLevel)
}

type Validator struct{}

func (v *Validator) ValidateStruct(payload interface{}) *[]error {
	return validateStruct(payload)
}

func (v *Validator) ValidateValue(value any, rules string) error {
	return validateField(value, rules)
}

var ValidatorInstance = Validator{}
