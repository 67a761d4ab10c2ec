package biometric_usecases

import (
	"context"
	"errors"
	"time"

	"biogate.io/application/constants"
	"biogate.io/entities"
	"biogate.io/infrastructure/audit"
	"biogate.io/infrastructure/biometric"
	"biogate.io/infrastructure/logger"
)

const DefaultTimeout = 5 * time.Second

type Service struct {
	Templates  TemplateStore
	Audit      audit.Sink
	Iterations int
	Timeout    time.Duration
	Now        func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) iterations() int {
	if s.Iterations > 0 {
		return s.Iterations
	}
	return biometric.DefaultKDFIterations
}

// derive runs the pipeline under the service timeout. The work itself is
// not interruptible, so on expiry the result is dropped when it arrives.
func (s *Service) derive(ctx context.Context, raw biometric.RawImage, userID string, iterations int) (*biometric.Derivation, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		derivation *biometric.Derivation
		err        error
	}
	done := make(chan outcome, 1)
	go func() {
		derivation, err := biometric.Derive(raw, userID, iterations)
		done <- outcome{derivation, err}
	}()

	select {
	case out := <-done:
		return out.derivation, out.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrPipelineTimeout
		}
		return nil, ctx.Err()
	}
}

func (s *Service) record(ctx context.Context, event entities.SecurityAuditLog, actor Actor) {
	if s.Audit == nil {
		return
	}
	event.IPAddress = actor.IPAddress
	event.UserAgent = actor.UserAgent
	event.ActorID = actor.OperatorID
	event.Timestamp = s.now()
	s.Audit.Record(ctx, event)
}

// failureEvent classifies a pipeline or storage error for the audit trail.
func failureEvent(eventType string, userID string, err error) entities.SecurityAuditLog {
	event := entities.SecurityAuditLog{
		EventType: eventType,
		UserID:    userID,
	}
	switch {
	case errors.Is(err, biometric.ErrInvalidImage), errors.Is(err, biometric.ErrDegenerateImage):
		event.SecurityLevel = constants.AuditWarning
		event.ThreatIndicators = []string{constants.ThreatInvalidBiometric}
		event.ResponseAction = constants.ActionBlocked
	default:
		event.SecurityLevel = constants.AuditCritical
		event.ThreatIndicators = []string{constants.ThreatSystemError}
		event.ResponseAction = constants.ActionLogged
	}
	return event
}

func featureData(result bool, fv *biometric.FeatureVector) *entities.BiometricAuditData {
	data := &entities.BiometricAuditData{AuthenticationResult: result}
	if fv != nil {
		c, m := fv.C, fv.M
		data.FeatureCentroid = &c
		data.FeatureSpread = &m
	}
	return data
}

func logStorageError(operation string, userID string, err error) {
	logger.Error("biometric template storage failed", logger.LoggerOptions{
		Key:  "operation",
		Data: operation,
	}, logger.LoggerOptions{
		Key:  "userID",
		Data: userID,
	}, logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
}
