package enrich

import (
	"strings"

	"github.com/mssola/useragent"
)

const (
	Unknown       = "Unknown"
	DeviceDesktop = "Desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
)

type ClientInfo struct {
	Browser    string `json:"browser"`
	OS         string `json:"os"`
	DeviceType string `json:"device_type"`
}

// ParseClientSignature derives browser, OS and device class from a
// User-Agent header. Anything it cannot detect falls back to Unknown, and the
// device class to Desktop.
func ParseClientSignature(signature string) ClientInfo {
	info := ClientInfo{Browser: Unknown, OS: Unknown, DeviceType: DeviceDesktop}

	signature = strings.TrimSpace(signature)
	if signature == "" {
		return info
	}

	ua := useragent.New(signature)

	if name, _ := ua.Browser(); name != "" {
		info.Browser = name
	}

	if os := ua.OSInfo().Name; os != "" {
		info.OS = os
	} else if os := ua.OS(); os != "" {
		info.OS = os
	}

	switch {
	case isTablet(signature):
		info.DeviceType = DeviceTablet
	case ua.Mobile():
		info.DeviceType = DeviceMobile
	}

	return info
}

func isTablet(signature string) bool {
	if strings.Contains(signature, "iPad") || strings.Contains(signature, "Tablet") {
		return true
	}
	// Android tablets omit the "Mobile" token.
	return strings.Contains(signature, "Android") && !strings.Contains(signature, "Mobile")
}
