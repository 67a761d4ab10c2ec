package auth_usecases

import (
	"context"

	"biogate.io/application/repository"
	"biogate.io/entities"
	"biogate.io/infrastructure/audit"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserStore interface {
	CountDocs(ctx context.Context, filter map[string]any) (int64, error)
	FindOneByFilter(ctx context.Context, filter map[string]any, opts ...*options.FindOneOptions) (*entities.User, error)
	CreateOne(ctx context.Context, payload entities.User) (*entities.User, error)
	UpdatePartialByFilter(ctx context.Context, filter map[string]any, payload map[string]any) (int64, error)
}

var userStore = func() UserStore {
	return repository.UserRepo()
}

var auditSink = func() audit.Sink {
	return audit.Default()
}

// RequestMeta is what the audit trail records about the caller.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type UserAuthResult struct {
	IsAuthenticated bool
	UserID          string
	Username        string
	Email           string
	TokenID         string
	ErrorMessage    string
	Threat          string
}

type LoginResult struct {
	Token     string         `json:"token"`
	ExpiresAt int64          `json:"expires_at"`
	User      *entities.User `json:"user"`
}
