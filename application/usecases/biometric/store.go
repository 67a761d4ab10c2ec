package biometric_usecases

import (
	"context"
	"errors"
	"time"

	"biogate.io/entities"
	"biogate.io/infrastructure/database/repository/mongo"
)

// MongoTemplateStore keeps templates in the BiometricTemplates collection.
// The partial unique index on user_id turns a lost enroll race into a
// duplicate key error.
type MongoTemplateStore struct {
	Repo *mongo.MongoRepository[entities.BiometricTemplate]
}

func (store *MongoTemplateStore) FindActive(ctx context.Context, userID string) (*entities.BiometricTemplate, error) {
	return store.Repo.FindOneByFilter(ctx, map[string]any{
		"user_id":   userID,
		"is_active": true,
	})
}

func (store *MongoTemplateStore) Create(ctx context.Context, template entities.BiometricTemplate) (*entities.BiometricTemplate, error) {
	created, err := store.Repo.CreateOne(ctx, template)
	if errors.Is(err, mongo.ErrDuplicateKey) {
		return nil, ErrDuplicateEnrollment
	}
	return created, err
}

func (store *MongoTemplateStore) RecordUse(ctx context.Context, templateID string, at time.Time) error {
	_, err := store.Repo.UpdateWithOperator(ctx, map[string]any{"_id": templateID}, map[string]any{
		"$inc": map[string]any{"usage_count": 1},
		"$set": map[string]any{"last_used": at, "updated_at": at},
	})
	return err
}

func (store *MongoTemplateStore) Deactivate(ctx context.Context, templateID string, at time.Time) error {
	modified, err := store.Repo.UpdatePartialByFilter(ctx, map[string]any{"_id": templateID, "is_active": true}, map[string]any{
		"is_active":      false,
		"deactivated_at": at,
		"updated_at":     at,
	})
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrUnknownSubject
	}
	return nil
}
