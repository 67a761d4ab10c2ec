package mongo

import (
	"context"
	"errors"
	"fmt"

	"biogate.io/infrastructure/database"
	"biogate.io/infrastructure/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *MongoRepository[T]) ready() error {
	if repo.Model == nil {
		return ErrCollectionUnavailable
	}
	return nil
}

// CreateOne stamps the payload through ParseModel before inserting it.
// Unique index violations are reported as ErrDuplicateKey.
func (repo *MongoRepository[T]) CreateOne(ctx context.Context, payload T) (*T, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}
	parsed := payload.ParseModel().(*T)
	_, err := repo.Model.InsertOne(ctx, parsed)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, repo.Model.Name())
		}
		logger.Error("mongo error occured while running CreateOne", logger.LoggerOptions{Key: "collection", Data: repo.Model.Name()}, logger.LoggerOptions{Key: "error", Data: err})
		return nil, err
	}
	return parsed, nil
}

// FindOneByFilter returns nil, nil when nothing matches.
func (repo *MongoRepository[T]) FindOneByFilter(ctx context.Context, filter map[string]any, opts ...*options.FindOneOptions) (*T, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}
	var result T
	err := repo.Model.FindOne(ctx, filter, opts...).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error("mongo error occured while running FindOneByFilter", logger.LoggerOptions{Key: "collection", Data: repo.Model.Name()}, logger.LoggerOptions{Key: "error", Data: err})
		return nil, err
	}
	return &result, nil
}

func (repo *MongoRepository[T]) FindMany(ctx context.Context, filter map[string]any, opts ...*options.FindOptions) (*[]T, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}
	cursor, err := repo.Model.Find(ctx, filter, opts...)
	if err != nil {
		logger.Error("mongo error occured while running FindMany", logger.LoggerOptions{Key: "collection", Data: repo.Model.Name()}, logger.LoggerOptions{Key: "error", Data: err})
		return nil, err
	}
	result := []T{}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (repo *MongoRepository[T]) FindManyPaginated(ctx context.Context, filter map[string]any, pagination PaginationOptions) (*[]T, error) {
	opts := options.Find()
	if pagination.Sort != nil {
		opts.SetSort(pagination.Sort)
	}
	if pagination.Limit > 0 {
		opts.SetLimit(pagination.Limit)
	}
	if pagination.Skip > 0 {
		opts.SetSkip(pagination.Skip)
	}
	return repo.FindMany(ctx, filter, opts)
}

func (repo *MongoRepository[T]) CountDocs(ctx context.Context, filter map[string]any) (int64, error) {
	if err := repo.ready(); err != nil {
		return 0, err
	}
	count, err := repo.Model.CountDocuments(ctx, filter)
	if err != nil {
		logger.Error("mongo error occured while running CountDocs", logger.LoggerOptions{Key: "collection", Data: repo.Model.Name()}, logger.LoggerOptions{Key: "error", Data: err})
		return 0, err
	}
	return count, nil
}

// UpdatePartialByFilter applies $set with the given fields to the first match.
func (repo *MongoRepository[T]) UpdatePartialByFilter(ctx context.Context, filter map[string]any, payload map[string]any) (int64, error) {
	return repo.UpdateWithOperator(ctx, filter, map[string]any{"$set": payload})
}

// UpdateWithOperator runs a raw update document such as {$inc, $set}.
func (repo *MongoRepository[T]) UpdateWithOperator(ctx context.Context, filter map[string]any, update map[string]any) (int64, error) {
	if err := repo.ready(); err != nil {
		return 0, err
	}
	result, err := repo.Model.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateKey, repo.Model.Name())
		}
		logger.Error("mongo error occured while running UpdateWithOperator", logger.LoggerOptions{Key: "collection", Data: repo.Model.Name()}, logger.LoggerOptions{Key: "error", Data: err})
		return 0, err
	}
	return result.ModifiedCount, nil
}

// Aggregate decodes the pipeline output into R.
func Aggregate[R any, T database.BaseModel](ctx context.Context, repo *MongoRepository[T], pipeline []bson.M) ([]R, error) {
	if err := repo.ready(); err != nil {
		return nil, err
	}
	cursor, err := repo.Model.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error("mongo error occured while running Aggregate", logger.LoggerOptions{Key: "collection", Data: repo.Model.Name()}, logger.LoggerOptions{Key: "error", Data: err})
		return nil, err
	}
	result := []R{}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
