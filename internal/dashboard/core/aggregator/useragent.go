package aggregator

import (
	"strings"

	"github.com/mileusna/useragent"
)

const (
	DeviceBot     = "Bot"
	DeviceTablet  = "Tablet"
	DeviceMobile  = "Mobile"
	DeviceDesktop = "Desktop"
)

// Client is the device, operating system and browser derived from a
// user-agent string.
type Client struct {
	Device  string
	OS      string
	Browser string
}

// ClassifyUserAgent maps a user-agent string to dashboard labels. Bot
// detection wins over device type; the parser checks Edge and Opera tokens
// before the generic Chrome and Safari ones.
func ClassifyUserAgent(raw string) Client {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Client{Device: labelUnknown, OS: labelUnknown, Browser: labelUnknown}
	}

	ua := useragent.Parse(raw)

	c := Client{
		Browser: ua.Name,
		OS:      ua.OS,
	}
	if c.Browser == "" {
		c.Browser = labelUnknown
	}
	if c.OS == "" {
		c.OS = labelUnknown
	}

	switch {
	case ua.Bot:
		c.Device = DeviceBot
	case ua.Tablet:
		c.Device = DeviceTablet
	case ua.Mobile:
		c.Device = DeviceMobile
	default:
		c.Device = DeviceDesktop
	}

	return c
}
