package entities

import (
	"time"

	"biogate.io/application/constants"
	"biogate.io/application/utils"
)

type BiometricAuditData struct {
	AuthenticationResult bool     `bson:"authentication_result" json:"authentication_result"`
	FeatureCentroid      *float64 `bson:"feature_centroid,omitempty" json:"feature_centroid,omitempty"`
	FeatureSpread        *float64 `bson:"feature_spread,omitempty" json:"feature_spread,omitempty"`
}

type DeviceFingerprint struct {
	Browser    string `bson:"browser" json:"browser"`
	OS         string `bson:"os" json:"os"`
	OSVersion  string `bson:"os_version" json:"os_version"`
	DeviceType string `bson:"device_type" json:"device_type"`
	Bot        bool   `bson:"bot" json:"bot"`
}

type Geolocation struct {
	Country   string  `bson:"country" json:"country"`
	City      string  `bson:"city" json:"city"`
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// SecurityAuditLog is an append-only record of a security relevant event.
type SecurityAuditLog struct {
	EventType        string              `bson:"event_type" json:"event_type"`
	Timestamp        time.Time           `bson:"timestamp" json:"timestamp"`
	UserID           string              `bson:"user_id,omitempty" json:"user_id,omitempty"`
	ActorID          string              `bson:"actor_id,omitempty" json:"actor_id,omitempty"`
	IPAddress        string              `bson:"ip_address" json:"ip_address"`
	UserAgent        string              `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Device           *DeviceFingerprint  `bson:"device,omitempty" json:"device,omitempty"`
	Geolocation      *Geolocation        `bson:"geolocation,omitempty" json:"geolocation,omitempty"`
	BiometricData    *BiometricAuditData `bson:"biometric_data,omitempty" json:"biometric_data,omitempty"`
	SecurityLevel    string              `bson:"security_level" json:"security_level"`
	ThreatIndicators []string            `bson:"threat_indicators" json:"threat_indicators"`
	ResponseAction   string              `bson:"response_action" json:"response_action"`
	CorrelationID    string              `bson:"correlation_id" json:"correlation_id"`
	SeverityScore    int                 `bson:"severity_score" json:"severity_score"`

	ID        string    `bson:"_id" json:"event_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CalculateSeverityScore derives the 0-100 severity from level, threats and biometric outcome.
func (model *SecurityAuditLog) CalculateSeverityScore() int {
	score := constants.AUDIT_LEVEL_SCORES[model.SecurityLevel]
	score += len(model.ThreatIndicators) * 5
	if model.BiometricData != nil && !model.BiometricData.AuthenticationResult {
		score += 20
	}
	if score > 100 {
		score = 100
	}
	model.SeverityScore = score
	return score
}

func (model *SecurityAuditLog) IsHighRisk() bool {
	return model.SeverityScore >= constants.HIGH_RISK_SEVERITY || model.SecurityLevel == constants.AuditCritical
}

func (model SecurityAuditLog) ParseModel() any {
	now := time.Now()
	if model.ID == "" {
		model.ID = utils.GenerateUULDString()
	}
	if model.Timestamp.IsZero() {
		model.Timestamp = now
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
	}
	if model.CorrelationID == "" {
		model.CorrelationID = model.EventType + "_" + model.ID
	}
	if model.ThreatIndicators == nil {
		model.ThreatIndicators = []string{}
	}
	model.CalculateSeverityScore()
	model.UpdatedAt = now
	return &model
}
