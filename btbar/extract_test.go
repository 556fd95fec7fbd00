package btbar

import (
	"strings"
	"testing"
)

func plistDoc(body string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
` + body + `
</plist>`)
}

const legacyDoc = `<array>
	<dict>
		<key>_dataType</key>
		<string>SPBluetoothDataType</string>
		<key>_items</key>
		<array>
			<dict>
				<key>device_title</key>
				<array>
					<dict>
						<key>Magic Mouse</key>
						<dict>
							<key>device_isconnected</key>
							<string>attrib_Yes</string>
							<key>device_ispaired</key>
							<string>attrib_No</string>
							<key>device_batteryPercent</key>
							<string>42%</string>
							<key>device_minorType</key>
							<string>Mouse</string>
						</dict>
					</dict>
					<dict>
						<key>Keyboard</key>
						<dict>
							<key>device_isconnected</key>
							<string>attrib_No</string>
							<key>device_ispaired</key>
							<string>attrib_Yes</string>
						</dict>
					</dict>
					<dict>
						<key>Broken</key>
						<string>not a dictionary</string>
					</dict>
					<dict>
						<key>Odd Types</key>
						<dict>
							<key>device_isconnected</key>
							<true/>
							<key>device_batteryPercent</key>
							<integer>50</integer>
						</dict>
					</dict>
				</array>
			</dict>
			<dict>
				<key>local_device_title</key>
				<dict>
					<key>general_name</key>
					<string>MacBook</string>
				</dict>
			</dict>
		</array>
	</dict>
</array>`

func TestExtractEmptyArray(t *testing.T) {
	devices, max := Extract(plistDoc("<array/>"))
	if len(devices) != 0 || max != 0 {
		t.Errorf("Extract(empty) = %v, %d, want no devices", devices, max)
	}
}

func TestExtractUndecodable(t *testing.T) {
	for _, doc := range [][]byte{
		[]byte(""),
		[]byte("not a plist at all <"),
		plistDoc("<dict><key>a</key><string>b</string></dict>"),
		plistDoc("<string>hello</string>"),
	} {
		devices, max := Extract(doc)
		if len(devices) != 0 || max != 0 {
			t.Errorf("Extract(%q) = %v, %d, want no devices", doc, devices, max)
		}
	}
}

func TestExtractLegacyLayout(t *testing.T) {
	devices, max := Extract(plistDoc(legacyDoc))
	if len(devices) != 3 {
		t.Fatalf("len(devices) = %d, want 3: %+v", len(devices), devices)
	}

	mouse := devices[0]
	if mouse.Name != "Magic Mouse" {
		t.Errorf("devices[0].Name = %q, want %q", mouse.Name, "Magic Mouse")
	}
	if !mouse.Connected || mouse.Paired {
		t.Errorf("mouse connected/paired = %v/%v, want true/false", mouse.Connected, mouse.Paired)
	}
	if mouse.Status != "42%" {
		t.Errorf("mouse.Status = %q, want %q", mouse.Status, "42%")
	}
	if want := GradientFor(42).Color; mouse.Color != want {
		t.Errorf("mouse.Color = %q, want %q", mouse.Color, want)
	}
	if mouse.Icon != "input-mouse" {
		t.Errorf("mouse.Icon = %q, want %q", mouse.Icon, "input-mouse")
	}

	kb := devices[1]
	if kb.Connected || !kb.Paired {
		t.Errorf("keyboard connected/paired = %v/%v, want false/true", kb.Connected, kb.Paired)
	}
	if kb.Status != UnknownStatus || kb.Color != UnknownColor || kb.Tier != TierUnknown {
		t.Errorf("keyboard level = %q %q %v, want unknown", kb.Status, kb.Color, kb.Tier)
	}

	// non-string values count as absent
	odd := devices[2]
	if odd.Connected || odd.HasPercent {
		t.Errorf("odd types = %+v, want disconnected with unknown level", odd)
	}

	if max != len("Magic Mouse") {
		t.Errorf("max = %d, want %d", max, len("Magic Mouse"))
	}
}

func TestExtractSkipsMalformedItems(t *testing.T) {
	doc := `<array>
	<string>stray</string>
	<dict><key>_dataType</key><string>no items here</string></dict>
	<dict>
		<key>_items</key>
		<array>
			<string>not a dict</string>
			<dict><key>device_title</key><string>not an array</string></dict>
			<dict>
				<key>device_title</key>
				<array>
					<string>not a mapping</string>
					<dict/>
					<dict>
						<key>AirPods</key>
						<dict>
							<key>device_batteryPercent</key>
							<string>80 %</string>
						</dict>
					</dict>
				</array>
			</dict>
		</array>
	</dict>
</array>`
	devices, max := Extract(plistDoc(doc))
	if len(devices) != 1 {
		t.Fatalf("len(devices) = %d, want 1: %+v", len(devices), devices)
	}
	if devices[0].Name != "AirPods" || devices[0].Status != "80%" {
		t.Errorf("devices[0] = %+v, want AirPods at 80%%", devices[0])
	}
	if max != 7 {
		t.Errorf("max = %d, want 7", max)
	}
}

func TestExtractConnectedLists(t *testing.T) {
	doc := `<array>
	<dict>
		<key>_items</key>
		<array>
			<dict>
				<key>device_connected</key>
				<array>
					<dict>
						<key>AirPods Pro</key>
						<dict>
							<key>device_batteryLevelMain</key>
							<string>90%</string>
							<key>device_minorType</key>
							<string>Headphones</string>
						</dict>
					</dict>
				</array>
				<key>device_not_connected</key>
				<array>
					<dict>
						<key>Trackpad</key>
						<dict>
							<key>device_batteryLevel</key>
							<string>15%</string>
						</dict>
					</dict>
				</array>
			</dict>
		</array>
	</dict>
</array>`
	devices, _ := Extract(plistDoc(doc))
	if len(devices) != 2 {
		t.Fatalf("len(devices) = %d, want 2: %+v", len(devices), devices)
	}
	pods, pad := devices[0], devices[1]
	if !pods.Connected || !pods.Paired || pods.Status != "90%" || pods.Icon != "audio-headphones" {
		t.Errorf("devices[0] = %+v, want connected AirPods Pro at 90%%", pods)
	}
	if pad.Connected || !pad.Paired || pad.Tier != TierCritical {
		t.Errorf("devices[1] = %+v, want disconnected paired trackpad, critical", pad)
	}
}

func TestTrimPercent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"85%", "85"},
		{"85", "85"},
		{" 7 % ", "7"},
		{"", ""},
		{"%", ""},
	}
	for _, tt := range tests {
		if got := trimPercent(tt.input); got != tt.want {
			t.Errorf("trimPercent(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractMultibyteNames(t *testing.T) {
	doc := strings.Replace(legacyDoc, "Magic Mouse", "Souris Élégante", 1)
	_, max := Extract(plistDoc(doc))
	if max != 15 {
		t.Errorf("max = %d, want 15", max)
	}
}
