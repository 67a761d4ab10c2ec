package biometric_usecases

import (
	"sync"

	"biogate.io/application/repository"
	"biogate.io/infrastructure/audit"
	"biogate.io/infrastructure/biometric"
	"biogate.io/infrastructure/env"
)

var (
	serviceOnce = sync.Once{}
	service     *Service
)

// BiometricService is the process wide service backed by MongoDB and the
// configured audit sink.
func BiometricService() *Service {
	serviceOnce.Do(func() {
		service = &Service{
			Templates:  &MongoTemplateStore{Repo: repository.BiometricTemplateRepo()},
			Audit:      audit.Default(),
			Iterations: env.Int("BIOMETRIC_KDF_ITERATIONS", biometric.DefaultKDFIterations),
			Timeout:    env.Duration("BIOMETRIC_TIMEOUT", DefaultTimeout),
		}
	})
	return service
}
