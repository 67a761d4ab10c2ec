package server_response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGinResponder_Respond(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	code := uint(4310)
	Responder.Respond(ctx, http.StatusBadRequest, "bad image", nil, []error{errors.New("unsupported media type")}, &code)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, ctx.IsAborted())

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "bad image", body["message"])
	assert.EqualValues(t, 4310, body["response_code"])
	assert.Equal(t, []any{"unsupported media type"}, body["errors"])
}

func TestGinResponder_RespondWithoutErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	Responder.Respond(ctx, http.StatusOK, "ok", map[string]any{"matched": true}, nil, nil)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "errors")
	assert.NotContains(t, body, "response_code")
	assert.Equal(t, map[string]any{"matched": true}, body["body"])
}
