package biometric_usecases

import (
	"context"

	"biogate.io/application/constants"
	"biogate.io/entities"
	"biogate.io/infrastructure/biometric"
)

// Authenticate checks a fresh capture against the subject's active template.
// Unknown subjects are rejected before any image work is done.
func (s *Service) Authenticate(ctx context.Context, input AuthenticateInput) (*AuthenticateResult, error) {
	template, err := s.Templates.FindActive(ctx, input.UserID)
	if err != nil {
		logStorageError("find", input.UserID, err)
		s.record(ctx, failureEvent(constants.EventBiometricAuthentication, input.UserID, err), input.Actor)
		return nil, err
	}
	if template == nil {
		s.record(ctx, entities.SecurityAuditLog{
			EventType:        constants.EventBiometricAuthentication,
			UserID:           input.UserID,
			SecurityLevel:    constants.AuditWarning,
			ThreatIndicators: []string{constants.ThreatUnknownSubject},
			ResponseAction:   constants.ActionDenied,
		}, input.Actor)
		return nil, ErrUnknownSubject
	}

	// hash with the cost the template was enrolled under
	iterations := template.EncryptionMetadata.Iterations
	if iterations <= 0 {
		iterations = s.iterations()
	}
	derivation, err := s.derive(ctx, input.Image, input.UserID, iterations)
	if err != nil {
		s.record(ctx, failureEvent(constants.EventBiometricAuthentication, input.UserID, err), input.Actor)
		return nil, err
	}

	matched := biometric.MatchTemplate(derivation.TemplateHash, template.TemplateHash)
	if !matched {
		s.record(ctx, entities.SecurityAuditLog{
			EventType:      constants.EventBiometricAuthentication,
			UserID:         input.UserID,
			SecurityLevel:  constants.AuditWarning,
			ResponseAction: constants.ActionDenied,
			BiometricData:  featureData(false, &derivation.Features),
		}, input.Actor)
		return &AuthenticateResult{Matched: false, Template: template}, nil
	}

	now := s.now()
	// usage_count is advisory, a failed bump does not fail the login
	if err := s.Templates.RecordUse(ctx, template.ID, now); err != nil {
		logStorageError("record_use", input.UserID, err)
	} else {
		template.UsageCount++
		template.LastUsed = now
	}

	s.record(ctx, entities.SecurityAuditLog{
		EventType:      constants.EventBiometricAuthentication,
		UserID:         input.UserID,
		SecurityLevel:  constants.AuditInfo,
		ResponseAction: constants.ActionAllowed,
		BiometricData:  featureData(true, &derivation.Features),
	}, input.Actor)

	return &AuthenticateResult{Matched: true, Template: template}, nil
}
