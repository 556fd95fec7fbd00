package btbar

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Map bluez icon names to Font Awesome glyphs
var iconMap = map[string]string{
	"input-keyboard":         "",
	"input-gaming":           "",
	"input-mouse":            "",
	"input-tablet":           "",
	"audio-input-microphone": "",
	"audio-speakers":         "",
	"audio-headphones":       "",
	"audio-headset":          "",
	"phone":                  "",
	"computer":               "",
	"default":                "",
}

type waybarOutput struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
}

func glyph(icon string) string {
	if i, ok := iconMap[icon]; ok {
		return i
	}
	return iconMap["default"]
}

func shortLevel(d Device) string {
	if !d.HasPercent {
		return "?"
	}
	return d.Status
}

// Print out a JSON formatted line, for Waybar's 'custom' module. Only
// connected and paired devices are shown; the class is the lowest tier among
// them.
func WriteWaybar(w io.Writer, devices []Device, icons bool) error {
	var shown []Device
	for _, d := range devices {
		if d.Connected && d.Paired {
			shown = append(shown, d)
		}
	}
	s := MaxNameLen(0, shown...)

	var text, tooltip []string
	class := TierUnknown
	for _, d := range shown {
		p := shortLevel(d)
		label := d.Name
		if icons {
			label = glyph(d.Icon)
		}
		text = append(text, fmt.Sprintf("%v %v", label, p))

		row := fmt.Sprintf("%-*s %v", s+1, d.Name+":", p)
		if icons {
			row = glyph(d.Icon) + " " + row
		}
		tooltip = append(tooltip, row)

		if d.Tier != TierUnknown && (class == TierUnknown || d.Tier < class) {
			class = d.Tier
		}
	}

	out := waybarOutput{
		Text:    strings.Join(text, "  "),
		Tooltip: strings.Join(tooltip, "\n"),
		Class:   class.String(),
	}
	// if no paired devices are connected display "Disconnected"
	if len(shown) == 0 {
		out.Text = "Disconnected"
		out.Tooltip = "Disconnected"
	}

	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
