package datastore

import (
	"context"
	"os"
	"time"

	"biogate.io/application/constants"
	"biogate.io/infrastructure/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserModel              *mongo.Collection
	BiometricTemplateModel *mongo.Collection
	SecurityAuditLogModel  *mongo.Collection

	client *mongo.Client
)

func ConnectToDatabase() {
	url := os.Getenv("DB_URL")

	if url == "" {
		logger.Error("mongo url missing")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(url)
	clientOpts.SetMinPoolSize(5)
	clientOpts.SetMaxPoolSize(10)

	c, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Error("an error occured while starting the database", logger.LoggerOptions{Key: "error", Data: err})
		return
	}
	if err = c.Ping(ctx, nil); err != nil {
		logger.Error("mongodb did not respond to ping", logger.LoggerOptions{Key: "error", Data: err})
		return
	}
	client = c

	db := client.Database(os.Getenv("DB_NAME"))
	SetUpCollections(ctx, db)

	logger.Info("connected to mongodb successfully")
}

func Disconnect() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Warning("mongodb disconnect failed", logger.LoggerOptions{Key: "error", Data: err})
	}
	client = nil
}

// SetUpCollections binds the collection handles and creates their indexes.
func SetUpCollections(ctx context.Context, db *mongo.Database) {
	UserModel = db.Collection("Users")
	createIndexes(ctx, UserModel, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}, {
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}})

	// only one active template may exist per subject; revoked ones are kept
	BiometricTemplateModel = db.Collection("BiometricTemplates")
	createIndexes(ctx, BiometricTemplateModel, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{"is_active": true}),
	}, {
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "security_level", Value: 1}},
		Options: options.Index(),
	}})

	SecurityAuditLogModel = db.Collection("SecurityAuditLogs")
	createIndexes(ctx, SecurityAuditLogModel, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "timestamp", Value: -1}},
		Options: options.Index().SetExpireAfterSeconds(constants.AUDIT_RETENTION_SECONDS),
	}, {
		Keys:    bson.D{{Key: "event_type", Value: 1}, {Key: "timestamp", Value: -1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "security_level", Value: 1}, {Key: "timestamp", Value: -1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "correlation_id", Value: 1}},
		Options: options.Index(),
	}})

	logger.Info("mongodb indexes set up successfully")
}

func createIndexes(ctx context.Context, collection *mongo.Collection, models []mongo.IndexModel) {
	if _, err := collection.Indexes().CreateMany(ctx, models); err != nil {
		logger.Error("failed to create indexes", logger.LoggerOptions{Key: "collection", Data: collection.Name()}, logger.LoggerOptions{Key: "error", Data: err})
	}
}
