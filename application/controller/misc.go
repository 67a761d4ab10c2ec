package controller

import (
	"net/http"

	"biogate.io/application/interfaces"
	server_response "biogate.io/infrastructure/serverResponse"
)

func Ping(ctx *interfaces.ApplicationContext[any]) {
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "pong!", nil, nil, nil)
}
