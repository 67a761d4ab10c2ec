package database

import "biogate.io/infrastructure/database/connection"

func SetUpDatabase() {
	connection.ConnectToDatabase()
}

func CleanUpDatabase() {
	connection.DisconnectFromDatabase()
}

type BaseModel interface {
	ParseModel() any
}
