package validator

import (
	"regexp"

	"biogate.io/application/constants"
	"biogate.io/application/utils"
	"github.com/go-playground/validator/v10"
)

var subjectIDPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_]{8,64}$`)

func validateSubjectID(fl validator.FieldLevel) bool {
	return subjectIDPattern.MatchString(fl.Field().String())
}

func validateSecurityLevel(fl validator.FieldLevel) bool {
	return utils.HasItemString(&constants.SECURITY_LEVELS, fl.Field().String())
}
