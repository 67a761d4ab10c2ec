package entities

import (
	"time"

	"biogate.io/application/utils"
)

// This represents an operator account able to sign in and manage enrollments
type User struct {
	Username      string     `bson:"username" json:"username"`
	Email         string     `bson:"email" json:"email"`
	Password      string     `bson:"password" json:"-"`
	SecurityLevel string     `bson:"security_level" json:"security_level"`
	LastLogin     *time.Time `bson:"last_login" json:"last_login"`
	IsActive      bool       `bson:"is_active" json:"is_active"`
	UserAgent     string     `bson:"user_agent" json:"-"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (model User) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateUULDString()
		}
	}
	model.UpdatedAt = now
	return &model
}
