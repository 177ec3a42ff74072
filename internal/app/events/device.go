package events

import (
	"strings"

	"github.com/mssola/useragent"
)

// DeviceLabel renders a raw user agent as a short human-readable label,
// e.g. "Chrome on Mac OS X". Login events carry it so consumers can show
// where a session came from without parsing agents themselves.
func DeviceLabel(rawAgent string) string {
	if strings.TrimSpace(rawAgent) == "" {
		return "Unknown Device"
	}

	ua := useragent.New(rawAgent)

	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}

	osName := ua.OSInfo().Name
	if osName == "" {
		osName = "Unknown OS"
	}

	return browser + " on " + osName
}
