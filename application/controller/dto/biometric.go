package dto

import "biogate.io/infrastructure/biometric"

// EnrollBiometricDTO is bound from the multipart form. Image is filled
// from the biometric_image part.
type EnrollBiometricDTO struct {
	UserID        string             `form:"user_id" json:"user_id" validate:"required,subject_id"`
	SecurityLevel string             `form:"security_level" json:"security_level" validate:"omitempty,security_level"`
	Image         biometric.RawImage `form:"-" json:"-"`
}

type AuthenticateBiometricDTO struct {
	UserID string             `form:"user_id" json:"user_id" validate:"required,subject_id"`
	Image  biometric.RawImage `form:"-" json:"-"`
}

type SubjectDTO struct {
	UserID string `uri:"user_id" json:"user_id" validate:"required,subject_id"`
}
