package entities

import (
	"time"

	"biogate.io/application/utils"
	"biogate.io/infrastructure/biometric"
)

type EncryptionMetadata struct {
	Algorithm     string `bson:"algorithm" json:"algorithm"`
	KeyDerivation string `bson:"key_derivation" json:"key_derivation"`
	Iterations    int    `bson:"iterations" json:"iterations"`
	SaltLength    int    `bson:"salt_length" json:"salt_length"`
}

// BiometricTemplate is the irreversible record kept in place of the raw image.
// At most one template per user_id has is_active set.
type BiometricTemplate struct {
	UserID             string                  `bson:"user_id" json:"user_id"`
	TemplateHash       string                  `bson:"template_hash" json:"-"`
	FeatureVector      biometric.FeatureVector `bson:"feature_vector" json:"-"`
	SecurityLevel      string                  `bson:"security_level" json:"security_level"`
	EncryptionMetadata EncryptionMetadata      `bson:"encryption_metadata" json:"encryption_metadata"`
	LastUsed           time.Time               `bson:"last_used" json:"last_used"`
	UsageCount         int64                   `bson:"usage_count" json:"usage_count"`
	IsActive           bool                    `bson:"is_active" json:"is_active"`
	EnrolledBy         string                  `bson:"enrolled_by" json:"enrolled_by"`
	DeactivatedAt      *time.Time              `bson:"deactivated_at" json:"deactivated_at,omitempty"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (model BiometricTemplate) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateUULDString()
		}
		if model.LastUsed.IsZero() {
			model.LastUsed = now
		}
	}
	model.UpdatedAt = now
	return &model
}
