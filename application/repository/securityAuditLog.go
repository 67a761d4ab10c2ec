package repository

import (
	"sync"

	"biogate.io/entities"
	"biogate.io/infrastructure/database/connection/datastore"
	"biogate.io/infrastructure/database/repository/mongo"
)

var securityAuditLogOnce = sync.Once{}

var securityAuditLogRepository mongo.MongoRepository[entities.SecurityAuditLog]

func SecurityAuditLogRepo() *mongo.MongoRepository[entities.SecurityAuditLog] {
	securityAuditLogOnce.Do(func() {
		securityAuditLogRepository = mongo.MongoRepository[entities.SecurityAuditLog]{Model: datastore.SecurityAuditLogModel}
	})
	return &securityAuditLogRepository
}
