package connection

import (
	"biogate.io/infrastructure/database/connection/cache"
	"biogate.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectToDatabase()
	cache.ConnectToCache()
}

func DisconnectFromDatabase() {
	datastore.Disconnect()
	cache.Disconnect()
}
