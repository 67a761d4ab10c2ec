package apperrors

import (
	"net/http"

	"biogate.io/infrastructure/logger"
	server_response "biogate.io/infrastructure/serverResponse"
)

const serviceDownMessage = "Our service is temporarily unavailable 😢. Our team is working to fix it. Please check back later."

func NotFoundError(ctx interface{}, message string, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusNotFound, message, nil, nil, responseCode)
}

func ValidationFailedError(ctx interface{}, errMessages *[]error) {
	server_response.Responder.Respond(ctx, http.StatusUnprocessableEntity, "Payload validation failed 🙄", nil, *errMessages, nil)
}

func UnprocessableEntityError(ctx interface{}, message string, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusUnprocessableEntity, message, nil, nil, responseCode)
}

func EntityAlreadyExistsError(ctx interface{}, message string, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusConflict, message, nil, nil, responseCode)
}

func AuthenticationError(ctx interface{}, message string, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusUnauthorized, message, nil, nil, responseCode)
}

func ServiceUnavailableError(ctx interface{}, message string, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusServiceUnavailable, message, nil, nil, responseCode)
}

func ErrorProcessingPayload(ctx interface{}) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "Abnormal payload passed 🤨", nil, nil, nil)
}

func FatalServerError(ctx interface{}, err error) {
	logger.Error("fatal server error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusInternalServerError, serviceDownMessage, nil, nil, nil)
}

func ClientError(ctx interface{}, msg string, errs []error, responseCode *uint) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, msg, nil, errs, responseCode)
}
