package btbar

import (
	"sort"
	"strings"

	"howett.net/plist"
)

// Keys used by `system_profiler SPBluetoothDataType -xml`
const (
	itemsKey        = "_items"
	deviceTitleKey  = "device_title"
	connectedKey    = "device_isconnected"
	pairedKey       = "device_ispaired"
	batteryKey      = "device_batteryPercent"
	yesValue        = "attrib_Yes"
	connectedList   = "device_connected"
	unconnectedList = "device_not_connected"
	batteryMainKey  = "device_batteryLevelMain"
	batteryLevelKey = "device_batteryLevel"
	minorTypeKey    = "device_minorType"
)

// system_profiler minor types mapped onto BlueZ icon names
var minorTypeIcons = map[string]string{
	"Keyboard":   "input-keyboard",
	"Mouse":      "input-mouse",
	"Trackpad":   "input-tablet",
	"Gamepad":    "input-gaming",
	"Headphones": "audio-headphones",
	"Headset":    "audio-headset",
	"Speaker":    "audio-speakers",
	"Microphone": "audio-input-microphone",
	"Phone":      "phone",
}

// deviceAttrs holds the optional fields of one device dictionary. A field
// that is missing or not a string is left unset.
type deviceAttrs struct {
	connected, paired, battery, minorType string
	hasConnected, hasPaired, hasBatt      bool
}

func readAttrs(m map[string]interface{}) deviceAttrs {
	var a deviceAttrs
	a.connected, a.hasConnected = stringField(m, connectedKey)
	a.paired, a.hasPaired = stringField(m, pairedKey)
	a.battery, a.hasBatt = stringField(m, batteryKey)
	a.minorType, _ = stringField(m, minorTypeKey)
	if !a.hasBatt {
		a.battery, a.hasBatt = stringField(m, batteryMainKey)
	}
	if !a.hasBatt {
		a.battery, a.hasBatt = stringField(m, batteryLevelKey)
	}
	return a
}

func stringField(m map[string]interface{}, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

func isYes(v string) bool {
	return v == yesValue
}

// Strip the unit suffix from a battery field ("85%" -> "85").
func trimPercent(v string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%"))
}

// Extract decodes a system_profiler Bluetooth plist into device records, in
// document order, together with the longest device name seen. Anything that
// does not match the expected shape is skipped; an undecodable document
// yields no devices.
func Extract(data []byte) ([]Device, int) {
	var root interface{}
	if _, err := plist.Unmarshal(data, &root); err != nil {
		logf("decode bluetooth plist: %v", err)
		return nil, 0
	}
	results, ok := root.([]interface{})
	if !ok {
		logf("bluetooth plist root is %T, not an array", root)
		return nil, 0
	}

	var devices []Device
	for _, result := range results {
		dict, ok := result.(map[string]interface{})
		if !ok {
			continue
		}
		items, ok := dict[itemsKey].([]interface{})
		if !ok {
			continue
		}
		for _, item := range items {
			itemDict, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			devices = append(devices, itemDevices(itemDict)...)
		}
	}
	return devices, MaxNameLen(0, devices...)
}

// Older releases list every device under device_title with explicit flags.
// Newer ones split them into connected and not connected lists.
func itemDevices(item map[string]interface{}) []Device {
	var devices []Device
	if titles, ok := item[deviceTitleKey].([]interface{}); ok {
		devices = append(devices, titleDevices(titles, nil)...)
	}
	if list, ok := item[connectedList].([]interface{}); ok {
		connected := true
		devices = append(devices, titleDevices(list, &connected)...)
	}
	if list, ok := item[unconnectedList].([]interface{}); ok {
		connected := false
		devices = append(devices, titleDevices(list, &connected)...)
	}
	if len(devices) == 0 {
		logf("skipping bluetooth item without devices")
	}
	return devices
}

// titleDevices reads a list of single-entry {name: attributes} mappings. A
// non-nil listed overrides the connected flag for every entry.
func titleDevices(titles []interface{}, listed *bool) []Device {
	var devices []Device
	for _, title := range titles {
		entry, ok := title.(map[string]interface{})
		if !ok || len(entry) == 0 {
			continue
		}
		name := firstKey(entry)
		attrs, ok := entry[name].(map[string]interface{})
		if !ok || name == "" {
			continue
		}
		devices = append(devices, newAccessory(name, readAttrs(attrs), listed))
	}
	return devices
}

// Mappings should hold a single key; pick the smallest so that malformed
// ones still decode the same way every run.
func firstKey(m map[string]interface{}) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0]
}

func newAccessory(name string, a deviceAttrs, listed *bool) Device {
	d := Device{
		Name:      name,
		Connected: isYes(a.connected),
		Paired:    isYes(a.paired),
		Icon:      minorTypeIcons[a.minorType],
	}
	if listed != nil {
		d.Connected = *listed
		// macOS only lists paired devices in these sections
		if !a.hasPaired {
			d.Paired = true
		}
	}
	percent := ""
	if a.hasBatt {
		percent = trimPercent(a.battery)
	}
	d.SetLevel(Gradient(percent))
	return d
}
