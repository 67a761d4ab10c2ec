package maxmind

import (
	"testing"

	"biogate.io/infrastructure/ipresolver/types"
	"github.com/stretchr/testify/assert"
)

func TestLookUpWithoutDatabase(t *testing.T) {
	resolver := &MaxMindIPResolver{}

	result, err := resolver.LookUp("102.89.23.187")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, types.ErrResolverUnavailable)
}

func TestConnectToDBMissingFile(t *testing.T) {
	resolver := &MaxMindIPResolver{}

	assert.Error(t, resolver.ConnectToDB(t.TempDir()+"/missing.mmdb"))
	_, err := resolver.LookUp("102.89.23.187")
	assert.ErrorIs(t, err, types.ErrResolverUnavailable)
}
