package cryptography

import (
	"biogate.io/infrastructure/logger"
	"github.com/matthewhartstonge/argon2"
)

type argonHasher struct {
	config argon2.Config
}

// HashString returns the encoded argon2id hash with a random salt.
func (ah argonHasher) HashString(data string) ([]byte, error) {
	raw, err := ah.config.Hash([]byte(data), nil)
	if err != nil {
		logger.Error("argon - error while hashing data", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	return raw.Encode(), nil
}

func (ah argonHasher) VerifyHashData(hash string, data string) bool {
	raw, err := argon2.Decode([]byte(hash))
	if err != nil {
		logger.Error("argon - could not decode data", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return false
	}
	ok, err := raw.Verify([]byte(data))
	if err != nil {
		logger.Error("argon - error while verifying data", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return false
	}

	return ok
}
