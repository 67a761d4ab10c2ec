package audit

import (
	"biogate.io/entities"
	"biogate.io/infrastructure/ipresolver/types"
	"biogate.io/infrastructure/useragent"
)

// Enrich fills the device fingerprint and geolocation when they are missing.
func Enrich(event *entities.SecurityAuditLog, resolver types.IPResolver) {
	if event.Device == nil && event.UserAgent != "" {
		ua := useragent.ParseUserAgent(event.UserAgent)
		event.Device = &entities.DeviceFingerprint{
			Browser:    ua.Name,
			OS:         ua.OS,
			OSVersion:  ua.OSVersion,
			DeviceType: ua.DeviceType(),
			Bot:        ua.Bot,
		}
	}
	if event.Geolocation == nil && event.IPAddress != "" && resolver != nil {
		result, err := resolver.LookUp(event.IPAddress)
		if err == nil && result != nil {
			event.Geolocation = &entities.Geolocation{
				Country:   result.CountryCode,
				City:      result.City,
				Latitude:  result.Latitude,
				Longitude: result.Longitude,
			}
		}
	}
}
