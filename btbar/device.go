package btbar

/*
btbar -
Battery levels for the host and its Bluetooth accessories, formatted for
xbar/SwiftBar style status-bar menus
*/

import "unicode/utf8"

// Display name used for the machine's own battery
const HostName = "host device"

type Tier int

const (
	TierUnknown Tier = iota
	TierCritical
	TierLow
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	}
	return "unknown"
}

type Device struct {
	Name       string
	Connected  bool
	Paired     bool
	Status     string
	Color      string
	Tier       Tier
	Percent    int
	HasPercent bool
	Icon       string
	Extra      []string
}

// Copy a computed Level onto the device
func (d *Device) SetLevel(l Level) {
	d.Status = l.Status
	d.Color = l.Color
	d.Tier = l.Tier
	d.Percent = l.Percent
	d.HasPercent = l.Known
}

// NameLen is the display width used for column alignment.
func NameLen(name string) int {
	return utf8.RuneCountInString(name)
}

// MaxNameLen returns the longest name among devices, starting from max.
func MaxNameLen(max int, devices ...Device) int {
	for _, d := range devices {
		if n := NameLen(d.Name); n > max {
			max = n
		}
	}
	return max
}
