package biometric_usecases

import (
	"context"
	"errors"

	"biogate.io/application/constants"
	"biogate.io/entities"
	"biogate.io/infrastructure/biometric"
)

// Enroll moves a subject from UNENROLLED to ENROLLED. Subjects that
// already have an active template are rejected with ErrDuplicateEnrollment.
func (s *Service) Enroll(ctx context.Context, input EnrollInput) (*EnrollResult, error) {
	securityLevel := input.SecurityLevel
	if securityLevel == "" {
		securityLevel = constants.SecurityLevelStandard
	}

	existing, err := s.Templates.FindActive(ctx, input.UserID)
	if err != nil {
		logStorageError("find", input.UserID, err)
		s.record(ctx, failureEvent(constants.EventBiometricEnrollment, input.UserID, err), input.Actor)
		return nil, err
	}
	if existing != nil {
		s.rejectDuplicate(ctx, input)
		return nil, ErrDuplicateEnrollment
	}

	iterations := s.iterations()
	derivation, err := s.derive(ctx, input.Image, input.UserID, iterations)
	if err != nil {
		s.record(ctx, failureEvent(constants.EventBiometricEnrollment, input.UserID, err), input.Actor)
		return nil, err
	}

	now := s.now()
	template, err := s.Templates.Create(ctx, entities.BiometricTemplate{
		UserID:        input.UserID,
		TemplateHash:  derivation.TemplateHash,
		FeatureVector: derivation.Features,
		SecurityLevel: securityLevel,
		EncryptionMetadata: entities.EncryptionMetadata{
			Algorithm:     biometric.KDFAlgorithm,
			KeyDerivation: biometric.KDFDerivation,
			Iterations:    iterations,
			SaltLength:    biometric.SaltLength,
		},
		IsActive:   true,
		LastUsed:   now,
		EnrolledBy: input.Actor.OperatorID,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEnrollment) {
			s.rejectDuplicate(ctx, input)
			return nil, ErrDuplicateEnrollment
		}
		logStorageError("create", input.UserID, err)
		s.record(ctx, failureEvent(constants.EventBiometricEnrollment, input.UserID, err), input.Actor)
		return nil, err
	}

	s.record(ctx, entities.SecurityAuditLog{
		EventType:      constants.EventBiometricEnrollment,
		UserID:         input.UserID,
		SecurityLevel:  constants.AuditInfo,
		ResponseAction: constants.ActionEnrolled,
		BiometricData:  featureData(true, &derivation.Features),
	}, input.Actor)

	return &EnrollResult{
		TemplateHash:  derivation.TemplateHash,
		FeatureVector: derivation.Features,
		Template:      template,
	}, nil
}

func (s *Service) rejectDuplicate(ctx context.Context, input EnrollInput) {
	s.record(ctx, entities.SecurityAuditLog{
		EventType:        constants.EventBiometricEnrollment,
		UserID:           input.UserID,
		SecurityLevel:    constants.AuditWarning,
		ThreatIndicators: []string{constants.ThreatDuplicateEnrollment},
		ResponseAction:   constants.ActionBlocked,
	}, input.Actor)
}
