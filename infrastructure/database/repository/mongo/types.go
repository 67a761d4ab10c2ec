package mongo

import (
	"errors"

	"biogate.io/infrastructure/database"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoRepository[T database.BaseModel] struct {
	Model *mongo.Collection
}

type PaginationOptions struct {
	Sort  any
	Limit int64
	Skip  int64
}

var ErrDuplicateKey = errors.New("a document with the same unique key already exists")

var ErrCollectionUnavailable = errors.New("collection has not been initialised")
