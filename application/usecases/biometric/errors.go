package biometric_usecases

import "errors"

var (
	ErrDuplicateEnrollment = errors.New("subject already has an active biometric template")
	ErrUnknownSubject      = errors.New("subject has no active biometric template")
	ErrPipelineTimeout     = errors.New("biometric processing timed out")
)
