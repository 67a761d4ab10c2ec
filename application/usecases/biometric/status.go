package biometric_usecases

import (
	"context"

	"biogate.io/application/constants"
	"biogate.io/entities"
)

func (s *Service) Status(ctx context.Context, userID string) (*EnrollmentStatus, error) {
	template, err := s.Templates.FindActive(ctx, userID)
	if err != nil {
		logStorageError("find", userID, err)
		return nil, err
	}
	if template == nil {
		return nil, ErrUnknownSubject
	}
	return &EnrollmentStatus{
		UserID:        template.UserID,
		Enrolled:      true,
		SecurityLevel: template.SecurityLevel,
		CreatedAt:     template.CreatedAt,
		LastUsed:      template.LastUsed,
		UsageCount:    template.UsageCount,
		Iterations:    template.EncryptionMetadata.Iterations,
	}, nil
}

// Revoke deactivates the active template, returning the subject to
// UNENROLLED. The record is kept for the audit trail.
func (s *Service) Revoke(ctx context.Context, userID string, actor Actor) error {
	template, err := s.Templates.FindActive(ctx, userID)
	if err != nil {
		logStorageError("find", userID, err)
		return err
	}
	if template == nil {
		s.record(ctx, entities.SecurityAuditLog{
			EventType:        constants.EventBiometricRevocation,
			UserID:           userID,
			SecurityLevel:    constants.AuditWarning,
			ThreatIndicators: []string{constants.ThreatUnknownSubject},
			ResponseAction:   constants.ActionDenied,
		}, actor)
		return ErrUnknownSubject
	}
	if err := s.Templates.Deactivate(ctx, template.ID, s.now()); err != nil {
		logStorageError("deactivate", userID, err)
		s.record(ctx, failureEvent(constants.EventBiometricRevocation, userID, err), actor)
		return err
	}
	s.record(ctx, entities.SecurityAuditLog{
		EventType:      constants.EventBiometricRevocation,
		UserID:         userID,
		SecurityLevel:  constants.AuditInfo,
		ResponseAction: constants.ActionRevoked,
	}, actor)
	return nil
}
