package constants

// biogate response codes
// these consist of 4 digit numbers
//
// the 1st 3 identify the scenario
// 4th indicates if the response requires user interaction through a dialog box. 0 means it does not require. 1 means it requires.

var INVALID_BIOMETRIC_IMAGE uint = 4310    // ask the user to upload a different file
var DEGENERATE_BIOMETRIC_IMAGE uint = 4321 // prompt the user for a better capture
var DUPLICATE_ENROLLMENT uint = 4330       // subject already has an active template
var SUBJECT_NOT_ENROLLED uint = 4340       // take the user to enrollment
var BIOMETRIC_MISMATCH uint = 4351         // capture did not match the enrolled template
var BIOMETRIC_TIMEOUT uint = 4360          // processing took too long, retry
var SESSION_EXPIRED uint = 6170            // log in again

// Template security levels.
const (
	SecurityLevelStandard       = "STANDARD"
	SecurityLevelEnhanced       = "ENHANCED"
	SecurityLevelMilitaryGrade  = "MILITARY_GRADE"
	SecurityLevelPhiDimensional = "PHI_DIMENSIONAL"
)

var SECURITY_LEVELS = []string{SecurityLevelStandard, SecurityLevelEnhanced, SecurityLevelMilitaryGrade, SecurityLevelPhiDimensional}

// Audit event types.
const (
	EventAuthentication          = "AUTHENTICATION"
	EventAuthorization           = "AUTHORIZATION"
	EventBiometricEnrollment     = "BIOMETRIC_ENROLLMENT"
	EventBiometricAuthentication = "BIOMETRIC_AUTHENTICATION"
	EventBiometricRevocation     = "BIOMETRIC_REVOCATION"
	EventSecurityViolation       = "SECURITY_VIOLATION"
	EventSystemAccess            = "SYSTEM_ACCESS"
	EventDataAccess              = "DATA_ACCESS"
	EventThreatDetection         = "THREAT_DETECTION"
)

// Audit severity levels, ordered from least to most severe.
const (
	AuditDebug    = "DEBUG"
	AuditInfo     = "INFO"
	AuditWarning  = "WARNING"
	AuditError    = "ERROR"
	AuditCritical = "CRITICAL"
)

var AUDIT_LEVEL_SCORES = map[string]int{
	AuditDebug:    0,
	AuditInfo:     10,
	AuditWarning:  30,
	AuditError:    60,
	AuditCritical: 90,
}

// Threat indicators attached to audit events.
const (
	ThreatBruteForce          = "BRUTE_FORCE_ATTACK"
	ThreatBiometricSpoofing   = "BIOMETRIC_SPOOFING"
	ThreatUnauthorizedAccess  = "UNAUTHORIZED_ACCESS"
	ThreatInvalidCredentials  = "INVALID_CREDENTIALS"
	ThreatRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	ThreatUnknownSubject      = "UNKNOWN_USER_AUTHENTICATION_ATTEMPT"
	ThreatInvalidBiometric    = "INVALID_BIOMETRIC_SAMPLE"
	ThreatDuplicateEnrollment = "DUPLICATE_ENROLLMENT_ATTEMPT"
	ThreatMissingToken        = "MISSING_AUTHENTICATION_TOKEN"
	ThreatInvalidToken        = "INVALID_JWT_TOKEN"
	ThreatSystemError         = "SYSTEM_ERROR"
)

// Response actions recorded on audit events.
const (
	ActionAllowed  = "ALLOWED"
	ActionBlocked  = "BLOCKED"
	ActionDenied   = "DENIED"
	ActionLogged   = "LOGGED"
	ActionRevoked  = "REVOKED"
	ActionEnrolled = "ENROLLED"
	ActionLogout   = "LOGOUT"
)

var AUDIT_RETENTION_SECONDS int32 = 90 * 24 * 60 * 60

var AUDIT_LOG_PAGE_LIMIT int64 = 50

var HIGH_RISK_SEVERITY = 70
