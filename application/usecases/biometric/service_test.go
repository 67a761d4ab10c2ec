package biometric_usecases

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"biogate.io/application/constants"
	"biogate.io/entities"
	"biogate.io/infrastructure/biometric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIterations = 1000

type memoryTemplateStore struct {
	mu        sync.Mutex
	templates []entities.BiometricTemplate
	findErr   error
	useErr    error
}

func (m *memoryTemplateStore) FindActive(ctx context.Context, userID string) (*entities.BiometricTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	for i := range m.templates {
		if m.templates[i].UserID == userID && m.templates[i].IsActive {
			found := m.templates[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryTemplateStore) Create(ctx context.Context, template entities.BiometricTemplate) (*entities.BiometricTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.templates {
		if existing.UserID == template.UserID && existing.IsActive {
			return nil, ErrDuplicateEnrollment
		}
	}
	parsed := template.ParseModel().(*entities.BiometricTemplate)
	m.templates = append(m.templates, *parsed)
	return parsed, nil
}

func (m *memoryTemplateStore) RecordUse(ctx context.Context, templateID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.useErr != nil {
		return m.useErr
	}
	for i := range m.templates {
		if m.templates[i].ID == templateID {
			m.templates[i].UsageCount++
			m.templates[i].LastUsed = at
		}
	}
	return nil
}

func (m *memoryTemplateStore) Deactivate(ctx context.Context, templateID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.templates {
		if m.templates[i].ID == templateID && m.templates[i].IsActive {
			m.templates[i].IsActive = false
			m.templates[i].DeactivatedAt = &at
			return nil
		}
	}
	return ErrUnknownSubject
}

func (m *memoryTemplateStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.templates)
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

func (r *recordingSink) last() entities.SecurityAuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func newTestService() (*Service, *memoryTemplateStore, *recordingSink) {
	store := &memoryTemplateStore{}
	sink := &recordingSink{}
	return &Service{
		Templates:  store,
		Audit:      sink,
		Iterations: testIterations,
		Timeout:    5 * time.Second,
	}, store, sink
}

func pngImage(t *testing.T, fill func(x, y int) uint8) biometric.RawImage {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetGray(x, y, color.Gray{Y: fill(x, y)})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return biometric.RawImage{Data: buf.Bytes(), MediaType: "image/png"}
}

func uniformImage(t *testing.T, value uint8) biometric.RawImage {
	return pngImage(t, func(x, y int) uint8 { return value })
}

func actor() Actor {
	return Actor{OperatorID: "operator-1", IPAddress: "10.0.0.1", UserAgent: "test-agent"}
}

func TestEnrollThenAuthenticate(t *testing.T) {
	svc, store, sink := newTestService()
	ctx := context.Background()
	image := uniformImage(t, 200)

	enrolled, err := svc.Enroll(ctx, EnrollInput{Image: image, UserID: "subject-0001", SecurityLevel: constants.SecurityLevelEnhanced, Actor: actor()})
	require.NoError(t, err)
	assert.Len(t, enrolled.TemplateHash, 64)
	assert.Equal(t, [6]float64{0, 0, 0, 0, 255, 0}, enrolled.FeatureVector.H)
	assert.Equal(t, 4.0, enrolled.FeatureVector.C)
	assert.Equal(t, 0.0, enrolled.FeatureVector.M)
	assert.Equal(t, testIterations, enrolled.Template.EncryptionMetadata.Iterations)
	assert.Equal(t, constants.SecurityLevelEnhanced, enrolled.Template.SecurityLevel)
	assert.Equal(t, constants.ActionEnrolled, sink.last().ResponseAction)
	assert.Equal(t, "10.0.0.1", sink.last().IPAddress)

	result, err := svc.Authenticate(ctx, AuthenticateInput{Image: image, UserID: "subject-0001", Actor: actor()})
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.EqualValues(t, 1, result.Template.UsageCount)
	assert.EqualValues(t, 1, store.templates[0].UsageCount)
	assert.Equal(t, constants.ActionAllowed, sink.last().ResponseAction)
	assert.True(t, sink.last().BiometricData.AuthenticationResult)
}

func TestEnrollDefaultsSecurityLevel(t *testing.T) {
	svc, _, _ := newTestService()

	enrolled, err := svc.Enroll(context.Background(), EnrollInput{Image: uniformImage(t, 90), UserID: "subject-0002"})
	require.NoError(t, err)
	assert.Equal(t, constants.SecurityLevelStandard, enrolled.Template.SecurityLevel)
}

func TestAuthenticateMismatch(t *testing.T) {
	svc, store, sink := newTestService()
	ctx := context.Background()

	_, err := svc.Enroll(ctx, EnrollInput{Image: uniformImage(t, 200), UserID: "subject-0001"})
	require.NoError(t, err)

	result, err := svc.Authenticate(ctx, AuthenticateInput{Image: uniformImage(t, 20), UserID: "subject-0001"})
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Zero(t, store.templates[0].UsageCount)

	event := sink.last()
	assert.Equal(t, constants.ActionDenied, event.ResponseAction)
	require.NotNil(t, event.BiometricData)
	assert.False(t, event.BiometricData.AuthenticationResult)
}

func TestEnrollDuplicate(t *testing.T) {
	svc, store, sink := newTestService()
	ctx := context.Background()
	image := uniformImage(t, 200)

	_, err := svc.Enroll(ctx, EnrollInput{Image: image, UserID: "subject-0001"})
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, AuthenticateInput{Image: image, UserID: "subject-0001"})
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, EnrollInput{Image: uniformImage(t, 10), UserID: "subject-0001"})
	assert.ErrorIs(t, err, ErrDuplicateEnrollment)
	assert.Equal(t, 1, store.count())
	assert.EqualValues(t, 1, store.templates[0].UsageCount)
	assert.Equal(t, []string{constants.ThreatDuplicateEnrollment}, sink.last().ThreatIndicators)
}

func TestEnrollConcurrentRaceHasOneWinner(t *testing.T) {
	svc, store, _ := newTestService()
	image := uniformImage(t, 200)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Enroll(context.Background(), EnrollInput{Image: image, UserID: "subject-race"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrDuplicateEnrollment)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, store.count())
}

func TestAuthenticateUnknownSubject(t *testing.T) {
	svc, store, sink := newTestService()

	// an undecodable image proves no extraction happens before the lookup
	result, err := svc.Authenticate(context.Background(), AuthenticateInput{
		Image:  biometric.RawImage{Data: []byte("garbage"), MediaType: "image/png"},
		UserID: "subject-none",
		Actor:  actor(),
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnknownSubject)
	assert.Zero(t, store.count())

	require.Len(t, sink.events, 1)
	assert.Equal(t, []string{constants.ThreatUnknownSubject}, sink.events[0].ThreatIndicators)
	assert.Equal(t, "subject-none", sink.events[0].UserID)
}

func TestPipelineErrorsAreAudited(t *testing.T) {
	svc, store, sink := newTestService()
	ctx := context.Background()

	_, err := svc.Enroll(ctx, EnrollInput{Image: biometric.RawImage{Data: []byte("not an image"), MediaType: "image/png"}, UserID: "subject-0001"})
	assert.ErrorIs(t, err, biometric.ErrInvalidImage)
	assert.Zero(t, store.count())
	assert.Equal(t, []string{constants.ThreatInvalidBiometric}, sink.last().ThreatIndicators)
	assert.Equal(t, constants.ActionBlocked, sink.last().ResponseAction)
}

func TestStorageErrorsPropagate(t *testing.T) {
	svc, store, sink := newTestService()
	store.findErr = errors.New("connection reset")

	_, err := svc.Enroll(context.Background(), EnrollInput{Image: uniformImage(t, 200), UserID: "subject-0001"})
	assert.EqualError(t, err, "connection reset")
	assert.Equal(t, constants.AuditCritical, sink.last().SecurityLevel)
}

func TestRecordUseFailureStillAuthenticates(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()
	image := uniformImage(t, 200)

	_, err := svc.Enroll(ctx, EnrollInput{Image: image, UserID: "subject-0001"})
	require.NoError(t, err)
	store.useErr = errors.New("write conflict")

	result, err := svc.Authenticate(ctx, AuthenticateInput{Image: image, UserID: "subject-0001"})
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Zero(t, result.Template.UsageCount)
}

func TestPipelineTimeout(t *testing.T) {
	svc, _, sink := newTestService()
	svc.Iterations = biometric.DefaultKDFIterations * 50
	svc.Timeout = time.Millisecond

	_, err := svc.Enroll(context.Background(), EnrollInput{Image: uniformImage(t, 200), UserID: "subject-slow"})
	assert.ErrorIs(t, err, ErrPipelineTimeout)
	assert.Equal(t, []string{constants.ThreatSystemError}, sink.last().ThreatIndicators)
}

func TestStatusAndRevoke(t *testing.T) {
	svc, store, sink := newTestService()
	ctx := context.Background()

	_, err := svc.Status(ctx, "subject-0001")
	assert.ErrorIs(t, err, ErrUnknownSubject)

	_, err = svc.Enroll(ctx, EnrollInput{Image: uniformImage(t, 200), UserID: "subject-0001", SecurityLevel: constants.SecurityLevelMilitaryGrade})
	require.NoError(t, err)

	status, err := svc.Status(ctx, "subject-0001")
	require.NoError(t, err)
	assert.True(t, status.Enrolled)
	assert.Equal(t, constants.SecurityLevelMilitaryGrade, status.SecurityLevel)
	assert.Equal(t, testIterations, status.Iterations)

	require.NoError(t, svc.Revoke(ctx, "subject-0001", actor()))
	assert.Equal(t, constants.ActionRevoked, sink.last().ResponseAction)

	_, err = svc.Authenticate(ctx, AuthenticateInput{Image: uniformImage(t, 200), UserID: "subject-0001"})
	assert.ErrorIs(t, err, ErrUnknownSubject)
	assert.ErrorIs(t, svc.Revoke(ctx, "subject-0001", actor()), ErrUnknownSubject)

	// a revoked subject may enroll again with a fresh capture
	reenrolled, err := svc.Enroll(ctx, EnrollInput{Image: uniformImage(t, 30), UserID: "subject-0001"})
	require.NoError(t, err)
	assert.True(t, reenrolled.Template.IsActive)
	assert.Equal(t, 2, store.count())
	assert.False(t, store.templates[0].IsActive)
	assert.NotNil(t, store.templates[0].DeactivatedAt)
}
