package btbar

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorRed     = lipgloss.Color("#E74C3C")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorYellow  = lipgloss.Color("#F1C40F")
	colorGreen   = lipgloss.Color("#00B16A")
	colorGray    = lipgloss.Color(UnknownColor)

	critStyle    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	lowStyle     = lipgloss.NewStyle().Foreground(colorMagenta)
	mediumStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	highStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	unknownStyle = lipgloss.NewStyle().Foreground(colorGray)
	nameStyle    = lipgloss.NewStyle().Bold(true)
	extraStyle   = lipgloss.NewStyle().Faint(true)
)

func tierStyle(t Tier) lipgloss.Style {
	switch t {
	case TierCritical:
		return critStyle
	case TierLow:
		return lowStyle
	case TierMedium:
		return mediumStyle
	case TierHigh:
		return highStyle
	}
	return unknownStyle
}

// WriteTerminal prints one aligned row per device, with the level colored by
// its severity tier.
func WriteTerminal(w io.Writer, devices []Device, maxName int) error {
	bw := bufio.NewWriter(w)
	for _, d := range devices {
		icon := OfflineIcon
		if d.Connected {
			icon = ConnectedIcon
		}
		name := nameStyle.Render(fmt.Sprintf("%-*s", maxName+1, d.Name+":"))
		fmt.Fprintf(bw, "%s %s %s\n", icon, name, tierStyle(d.Tier).Render(d.Status))
		for _, extra := range d.Extra {
			fmt.Fprintf(bw, "   %s\n", extraStyle.Render(extra))
		}
	}
	return bw.Flush()
}
