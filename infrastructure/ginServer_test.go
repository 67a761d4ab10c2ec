package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"biogate.io/application/controller"
	biometric_usecases "biogate.io/application/usecases/biometric"
	security_usecases "biogate.io/application/usecases/security"
	"biogate.io/entities"
	"biogate.io/infrastructure/audit"
	"biogate.io/infrastructure/auth"
	"biogate.io/infrastructure/biometric"
	"biogate.io/infrastructure/database/repository/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subjectID = "subject-0001"

type memoryTemplates struct {
	mu        sync.Mutex
	templates []entities.BiometricTemplate
}

func (m *memoryTemplates) FindActive(ctx context.Context, userID string) (*entities.BiometricTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, template := range m.templates {
		if template.UserID == userID && template.IsActive {
			found := template
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryTemplates) Create(ctx context.Context, template entities.BiometricTemplate) (*entities.BiometricTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.templates {
		if existing.UserID == template.UserID && existing.IsActive {
			return nil, biometric_usecases.ErrDuplicateEnrollment
		}
	}
	parsed := template.ParseModel().(*entities.BiometricTemplate)
	m.templates = append(m.templates, *parsed)
	return parsed, nil
}

func (m *memoryTemplates) RecordUse(ctx context.Context, templateID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.templates {
		if m.templates[i].ID == templateID {
			m.templates[i].UsageCount++
			m.templates[i].LastUsed = at
		}
	}
	return nil
}

func (m *memoryTemplates) Deactivate(ctx context.Context, templateID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.templates {
		if m.templates[i].ID == templateID && m.templates[i].IsActive {
			m.templates[i].IsActive = false
			m.templates[i].DeactivatedAt = &at
			return nil
		}
	}
	return biometric_usecases.ErrUnknownSubject
}

type recordingSink struct {
	mu     sync.Mutex
	events []entities.SecurityAuditLog
}

func (r *recordingSink) Record(ctx context.Context, event entities.SecurityAuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

type staticAuditLogs struct {
	since time.Time
}

func (s *staticAuditLogs) Recent(ctx context.Context, since time.Time, limit int64) ([]entities.SecurityAuditLog, error) {
	s.since = since
	return []entities.SecurityAuditLog{{EventType: "AUTHENTICATION", SecurityLevel: "INFO"}}, nil
}

func (s *staticAuditLogs) Statistics(ctx context.Context, since time.Time) ([]security_usecases.LevelStatistics, error) {
	s.since = since
	return []security_usecases.LevelStatistics{{SecurityLevel: "WARNING", Count: 3, AvgSeverity: 35, UniqueIPCount: 2, UniqueUserCount: 1}}, nil
}

type testServer struct {
	router *gin.Engine
	sink   *recordingSink
	logs   *staticAuditLogs
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SIGNING_KEY", "router-test-key")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("BIOMETRIC_RATE_LIMIT", "100")

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	previousCache := cache.Cache
	cache.Cache = &cache.RedisRepository{Client: client}

	sink := &recordingSink{}
	audit.Use(sink)

	service := &biometric_usecases.Service{
		Templates:  &memoryTemplates{},
		Audit:      sink,
		Iterations: 1000,
	}
	logs := &staticAuditLogs{}
	previousBiometric, previousSecurity := controller.BiometricService, controller.SecurityService
	controller.BiometricService = func() *biometric_usecases.Service { return service }
	controller.SecurityService = func() *security_usecases.Service { return &security_usecases.Service{Store: logs} }

	t.Cleanup(func() {
		cache.Cache = previousCache
		audit.Use(nil)
		controller.BiometricService, controller.SecurityService = previousBiometric, previousSecurity
		client.Close()
	})

	claims := auth.ClaimsData{
		TokenID:   "token-0001",
		UserID:    "operator-0001",
		Username:  "operator",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
	token, err := auth.GenerateAuthToken(claims)
	require.NoError(t, err)
	require.True(t, auth.CreateSession(context.Background(), claims.TokenID, claims.UserID, time.Hour))

	return &testServer{router: NewRouter(), sink: sink, logs: logs, token: *token}
}

func (s *testServer) do(req *http.Request, authenticated bool) *httptest.ResponseRecorder {
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func gradientPNG(t *testing.T, step int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x * step) % 256)})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func biometricRequest(t *testing.T, path string, userID string, imageData []byte, contentType string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("user_id", userID))
	if imageData != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="biometric_image"; filename="capture.png"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestPingAndNoRoute(t *testing.T) {
	server := newTestServer(t)

	w := server.do(httptest.NewRequest(http.MethodGet, "/ping", nil), false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong!", decode(t, w)["message"])

	w = server.do(httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil), false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/api/v1/auth/health", "/api/v1/biometric/health"} {
		w := server.do(httptest.NewRequest(http.MethodGet, path, nil), false)
		assert.Equal(t, http.StatusOK, w.Code, path)
		body := decode(t, w)["body"].(map[string]any)
		assert.Equal(t, "operational", body["status"])
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	server := newTestServer(t)

	w := server.do(httptest.NewRequest(http.MethodGet, "/api/v1/security/status", nil), false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = server.do(biometricRequest(t, "/api/v1/biometric/enroll", subjectID, gradientPNG(t, 4), "image/png"), false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	require.NotEmpty(t, server.sink.events)
	assert.Equal(t, "SECURITY_VIOLATION", server.sink.events[0].EventType)
	assert.Equal(t, []string{"MISSING_AUTHENTICATION_TOKEN"}, server.sink.events[0].ThreatIndicators)
}

func TestBiometricLifecycle(t *testing.T) {
	server := newTestServer(t)
	capture := gradientPNG(t, 4)

	w := server.do(biometricRequest(t, "/api/v1/biometric/enroll", subjectID, capture, "image/png"), true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	enrolled := decode(t, w)["body"].(map[string]any)
	assert.Len(t, enrolled["template_hash"], 64)
	assert.Equal(t, "STANDARD", enrolled["security_level"])

	w = server.do(biometricRequest(t, "/api/v1/biometric/enroll", subjectID, capture, "image/png"), true)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = server.do(biometricRequest(t, "/api/v1/biometric/authenticate", subjectID, capture, "image/png"), false)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decode(t, w)["body"].(map[string]any)["usage_count"])

	w = server.do(biometricRequest(t, "/api/v1/biometric/authenticate", subjectID, gradientPNG(t, 2), "image/png"), false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.EqualValues(t, 4351, decode(t, w)["response_code"])

	w = server.do(httptest.NewRequest(http.MethodGet, "/api/v1/biometric/status/"+subjectID, nil), true)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode(t, w)["body"].(map[string]any)
	assert.Equal(t, true, status["enrolled"])
	assert.NotContains(t, status, "template_hash")
	assert.NotContains(t, status, "feature_vector")

	w = server.do(httptest.NewRequest(http.MethodDelete, "/api/v1/biometric/"+subjectID, nil), true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = server.do(httptest.NewRequest(http.MethodGet, "/api/v1/biometric/status/"+subjectID, nil), true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = server.do(biometricRequest(t, "/api/v1/biometric/enroll", subjectID, capture, "image/png"), true)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBiometricRequestErrors(t *testing.T) {
	server := newTestServer(t)

	w := server.do(biometricRequest(t, "/api/v1/biometric/authenticate", "unknown-subject", gradientPNG(t, 4), "image/png"), false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = server.do(biometricRequest(t, "/api/v1/biometric/authenticate", "bad id", gradientPNG(t, 4), "image/png"), false)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = server.do(biometricRequest(t, "/api/v1/biometric/enroll", subjectID, []byte("not an image at all"), "image/png"), true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 4310, decode(t, w)["response_code"])

	w = server.do(biometricRequest(t, "/api/v1/biometric/enroll", subjectID, gradientPNG(t, 4), "text/plain"), true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = server.do(biometricRequest(t, "/api/v1/biometric/enroll", subjectID, nil, ""), true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBiometricAttemptsAreRateLimited(t *testing.T) {
	server := newTestServer(t)
	t.Setenv("BIOMETRIC_RATE_LIMIT", "2")
	server.router = NewRouter()

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := server.do(biometricRequest(t, "/api/v1/biometric/authenticate", "unknown-subject", gradientPNG(t, 4), "image/png"), false)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNotFound, http.StatusNotFound, http.StatusTooManyRequests}, codes)
}

func TestSecurityEndpoints(t *testing.T) {
	server := newTestServer(t)

	w := server.do(httptest.NewRequest(http.MethodGet, "/api/v1/security/status", nil), true)
	assert.Equal(t, http.StatusOK, w.Code)

	before := time.Now()
	w = server.do(httptest.NewRequest(http.MethodGet, "/api/v1/security/audit-logs", nil), true)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)["body"].(map[string]any)
	assert.EqualValues(t, 24, body["time_range"])
	assert.EqualValues(t, 1, body["count"])
	assert.WithinDuration(t, before.Add(-24*time.Hour), server.logs.since, 5*time.Second)

	w = server.do(httptest.NewRequest(http.MethodGet, "/api/v1/security/statistics?timeRange=6", nil), true)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)["body"].(map[string]any)
	assert.EqualValues(t, 6, body["time_range"])
	statistics := body["statistics"].([]any)
	require.Len(t, statistics, 1)
	assert.Equal(t, "WARNING", statistics[0].(map[string]any)["security_level"])
}

func TestLogoutRevokesSession(t *testing.T) {
	server := newTestServer(t)

	w := server.do(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil), true)
	require.Equal(t, http.StatusOK, w.Code)

	w = server.do(httptest.NewRequest(http.MethodGet, "/api/v1/security/status", nil), true)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.EqualValues(t, 6170, decode(t, w)["response_code"])
}

func TestBiometricRequestBodyIsCapped(t *testing.T) {
	server := newTestServer(t)
	oversized := append(gradientPNG(t, 4), bytes.Repeat([]byte{0}, biometric.MaxImageBytes+128<<10)...)

	w := server.do(biometricRequest(t, "/api/v1/biometric/authenticate", subjectID, oversized, "image/png"), false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 4310, decode(t, w)["response_code"])
}

func TestUnauthenticatedEnrollDoesNotSpendAttempts(t *testing.T) {
	server := newTestServer(t)
	t.Setenv("BIOMETRIC_RATE_LIMIT", "2")
	server.router = NewRouter()

	for i := 0; i < 3; i++ {
		w := server.do(biometricRequest(t, "/api/v1/biometric/enroll", subjectID, gradientPNG(t, 4), "image/png"), false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := server.do(biometricRequest(t, "/api/v1/biometric/enroll", subjectID, gradientPNG(t, 4), "image/png"), true)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestBiometricStatusIsRateLimited(t *testing.T) {
	server := newTestServer(t)
	t.Setenv("BIOMETRIC_RATE_LIMIT", "2")
	server.router = NewRouter()

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := server.do(httptest.NewRequest(http.MethodGet, "/api/v1/biometric/status/"+subjectID, nil), true)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNotFound, http.StatusNotFound, http.StatusTooManyRequests}, codes)
}
