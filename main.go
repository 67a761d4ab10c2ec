package main

import (
	"biogate.io/infrastructure"
	"biogate.io/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
