package infrastructure

import (
	startup "biogate.io/infrastructure/startUp"
)

type serverInterface interface {
	Start()
}

func StartServer() {
	startup.StartServices()
	defer startup.CleanUpServices()

	var server serverInterface = &ginServer{}
	server.Start()
}
