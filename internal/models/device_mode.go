package models

import (
	"fmt"
	"strings"
)

// DeviceMode is the form factor a record is attributed to.
type DeviceMode string

const (
	ModeMobile  DeviceMode = "mobile"
	ModeDesktop DeviceMode = "desktop"
)

// ParseDeviceMode accepts "mobile" or "desktop" in any case, the same words
// lighthouse uses for configSettings.emulatedFormFactor.
func ParseDeviceMode(s string) (DeviceMode, error) {
	switch DeviceMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeMobile:
		return ModeMobile, nil
	case ModeDesktop:
		return ModeDesktop, nil
	default:
		return "", fmt.Errorf("invalid device mode: %q", s)
	}
}

func (m DeviceMode) Valid() bool {
	return m == ModeMobile || m == ModeDesktop
}

func (m DeviceMode) String() string {
	return string(m)
}
