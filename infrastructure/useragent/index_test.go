package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserAgent(t *testing.T) {
	desktop := ParseUserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	assert.Equal(t, "Chrome", desktop.Name)
	assert.Equal(t, "Windows", desktop.OS)
	assert.Equal(t, "desktop", desktop.DeviceType())

	bot := ParseUserAgent("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
	assert.Equal(t, "bot", bot.DeviceType())

	assert.Equal(t, "unknown", ParseUserAgent("").DeviceType())
}
