package btbar

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	UnknownStatus = "Not connected"
	UnknownColor  = "#bdc3c7"
)

type rgb struct {
	r, g, b int
}

// red -> yellow -> green
var anchors = [3]rgb{
	{231, 76, 60},
	{241, 196, 15},
	{0, 177, 106},
}

// Level is the display form of a battery percentage.
type Level struct {
	Color   string
	Status  string
	Tier    Tier
	Percent int
	Known   bool
}

// Gradient parses a percentage string and computes its Level. Anything that
// is not an integer yields the neutral "Not connected" level.
func Gradient(percent string) Level {
	p, err := strconv.Atoi(strings.TrimSpace(percent))
	if err != nil {
		return Level{Color: UnknownColor, Status: UnknownStatus, Tier: TierUnknown}
	}
	return GradientFor(p)
}

// GradientFor computes the Level of an integer percentage.
func GradientFor(p int) Level {
	c := clamp(p)

	first, second := anchors[0], anchors[1]
	if c > 50 {
		first, second = anchors[1], anchors[2]
	}

	// 0 sits at the start of the red-yellow segment; every other multiple
	// of 50 is the end of its segment.
	f := 1.0
	if c%50 != 0 {
		f = float64(c%50) / 50.0
	} else if c == 0 {
		f = 0
	}

	return Level{
		Color:   interpolate(first, second, f).hex(),
		Status:  fmt.Sprintf("%d%%", p),
		Tier:    tierFor(c),
		Percent: p,
		Known:   true,
	}
}

// Exact boundaries belong to the higher tier.
func tierFor(p int) Tier {
	switch {
	case p >= 75:
		return TierHigh
	case p >= 50:
		return TierMedium
	case p >= 25:
		return TierLow
	}
	return TierCritical
}

func clamp(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func linear(initial, next int, f float64) int {
	return int(float64(initial)*(1.0-f) + float64(next)*f)
}

func interpolate(first, second rgb, f float64) rgb {
	return rgb{
		r: linear(first.r, second.r, f),
		g: linear(first.g, second.g, f),
		b: linear(first.b, second.b, f),
	}
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}
