package btbar

import "strings"

// HostReading holds the raw power-management fields for the host battery.
type HostReading struct {
	Source    string
	Percent   string
	Status    string
	Remaining string
}

// Parse `pmset -g batt` output, e.g.
//
//	Now drawing from 'Battery Power'
//	 -InternalBattery-0 (id=4653155)	85%; discharging; 4:32 remaining present: true
//
// Missing lines leave the corresponding fields empty.
func ParsePmset(text string) HostReading {
	var r HostReading
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.Contains(line, "Now drawing"):
			r.Source = drawSource(line)
		case strings.Contains(line, "InternalBattery") && r.Percent == "":
			r.Percent, r.Status, r.Remaining = batteryFields(line)
		}
	}
	return r
}

func drawSource(line string) string {
	if i := strings.Index(line, "'"); i >= 0 {
		rest := line[i+1:]
		if j := strings.Index(rest, "'"); j >= 0 {
			return rest[:j]
		}
		return rest
	}
	fields := strings.Fields(line)
	if len(fields) >= 4 {
		return fields[3]
	}
	return ""
}

func batteryFields(line string) (percent, status, remaining string) {
	parts := strings.Split(line, ";")

	fields := strings.Fields(parts[0])
	if len(fields) > 0 {
		percent = strings.TrimSuffix(fields[len(fields)-1], "%")
	}
	if len(parts) > 1 {
		status = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		remaining = strings.TrimSpace(parts[2])
		if i := strings.Index(remaining, "present:"); i >= 0 {
			remaining = strings.TrimSpace(remaining[:i])
		}
		remaining = strings.TrimSpace(strings.TrimSuffix(remaining, "remaining"))
	}
	return percent, status, remaining
}

// Build the host record from a reading. The host is always reported as
// connected and paired.
func HostDevice(name string, r HostReading) Device {
	if name == "" {
		name = HostName
	}
	d := Device{
		Name:      name,
		Connected: true,
		Paired:    true,
		Icon:      "computer",
		Extra: []string{
			"Now drawing: " + r.Source,
			"Status: " + r.Status,
		},
	}
	if r.Status == "charging" {
		d.Extra = append(d.Extra, "Time until full: "+r.Remaining)
	} else {
		d.Extra = append(d.Extra, "Time left: "+r.Remaining)
	}
	d.SetLevel(Gradient(r.Percent))
	return d
}
