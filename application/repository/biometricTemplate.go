package repository

import (
	"sync"

	"biogate.io/entities"
	"biogate.io/infrastructure/database/connection/datastore"
	"biogate.io/infrastructure/database/repository/mongo"
)

var biometricTemplateOnce = sync.Once{}

var biometricTemplateRepository mongo.MongoRepository[entities.BiometricTemplate]

func BiometricTemplateRepo() *mongo.MongoRepository[entities.BiometricTemplate] {
	biometricTemplateOnce.Do(func() {
		biometricTemplateRepository = mongo.MongoRepository[entities.BiometricTemplate]{Model: datastore.BiometricTemplateModel}
	})
	return &biometricTemplateRepository
}
