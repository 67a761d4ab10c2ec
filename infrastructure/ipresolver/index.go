package ipresolver

import (
	"os"

	"biogate.io/infrastructure/ipresolver/maxmind"
	"biogate.io/infrastructure/ipresolver/types"
)

var resolver = &maxmind.MaxMindIPResolver{}

var IPResolverInstance types.IPResolver = resolver

// Connect loads MAXMIND_DB_PATH when configured. Geolocation stays off otherwise.
func Connect() {
	path := os.Getenv("MAXMIND_DB_PATH")
	if path == "" {
		return
	}
	resolver.ConnectToDB(path)
}

func Close() {
	resolver.Close()
}
