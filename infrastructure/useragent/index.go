package useragent

import "github.com/mileusna/useragent"

type UserAgent struct {
	Name      string
	OS        string
	OSVersion string
	Device    string
	Bot       bool
	Mobile    bool
	Desktop   bool
	Tablet    bool
}

func ParseUserAgent(userAgent string) *UserAgent {
	parsed := useragent.Parse(userAgent)
	return &UserAgent{
		Bot:       parsed.Bot,
		OS:        parsed.OS,
		OSVersion: parsed.OSVersion,
		Device:    parsed.Device,
		Name:      parsed.Name,
		Mobile:    parsed.Mobile,
		Desktop:   parsed.Desktop,
		Tablet:    parsed.Tablet,
	}
}

// DeviceType collapses the form factor flags into one label.
func (ua *UserAgent) DeviceType() string {
	switch {
	case ua.Bot:
		return "bot"
	case ua.Tablet:
		return "tablet"
	case ua.Mobile:
		return "mobile"
	case ua.Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}
