package biometric_usecases

import (
	"context"
	"time"

	"biogate.io/entities"
	"biogate.io/infrastructure/biometric"
)

// TemplateStore persists templates. Create must report a second active
// template for the same subject as ErrDuplicateEnrollment.
type TemplateStore interface {
	FindActive(ctx context.Context, userID string) (*entities.BiometricTemplate, error)
	Create(ctx context.Context, template entities.BiometricTemplate) (*entities.BiometricTemplate, error)
	RecordUse(ctx context.Context, templateID string, at time.Time) error
	Deactivate(ctx context.Context, templateID string, at time.Time) error
}

// Actor describes who made the request, for the audit trail.
type Actor struct {
	OperatorID string
	IPAddress  string
	UserAgent  string
}

type EnrollInput struct {
	Image         biometric.RawImage
	UserID        string
	SecurityLevel string
	Actor         Actor
}

type EnrollResult struct {
	TemplateHash  string
	FeatureVector biometric.FeatureVector
	Template      *entities.BiometricTemplate
}

type AuthenticateInput struct {
	Image  biometric.RawImage
	UserID string
	Actor  Actor
}

type AuthenticateResult struct {
	Matched  bool
	Template *entities.BiometricTemplate
}

// EnrollmentStatus is what may be shown about a template. It never
// carries the hash or the feature vector.
type EnrollmentStatus struct {
	UserID        string    `json:"user_id"`
	Enrolled      bool      `json:"enrolled"`
	SecurityLevel string    `json:"security_level"`
	CreatedAt     time.Time `json:"created_at"`
	LastUsed      time.Time `json:"last_used"`
	UsageCount    int64     `json:"usage_count"`
	Iterations    int       `json:"kdf_iterations"`
}
