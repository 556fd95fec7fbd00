package btbar

import (
	"bufio"
	"fmt"
	"io"
)

const (
	MenuHeader    = "Battery 🔋"
	Separator     = "---"
	DefaultFont   = "Courier"
	ConnectedIcon = "😀"
	OfflineIcon   = "😔"

	// narrowest colon field, reached by the longest name
	minPad = 11

	refreshIcon = "iVBORw0KGgoAAAANSUhEUgAAABAAAAAQCAMAAAAoLQ9TAAADAFBMVEX///8AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAmJiYnJycoKCgpKSkqKiorKyssLCwtLS0uLi4vLy8wMDAxMTEyMjIzMzM0NDQ1NTU2NjY3Nzc4ODg5OTk6Ojo7Ozs8PDw9PT0+Pj4/Pz9AQEBBQUFCQkJDQ0NERERFRUVGRkZHR0dISEhJSUlKSkpLS0tMTExNTU1OTk5PT09QUFBRUVFSUlJTU1NUVFRVVVVWVlZXV1dYWFhZWVlaWlpbW1tcXFxdXV1eXl5fX19gYGBhYWFiYmJjY2NkZGRlZWVmZmZnZ2doaGhpaWlqampra2tsbGxtbW1ubm5vb29wcHBxcXFycnJzc3N0dHR1dXV2dnZ3d3d4eHh5eXl6enp7e3t8fHx9fX1+fn5/f3+AgICBgYGCgoKDg4OEhISFhYWGhoaHh4eIiIiJiYmKioqLi4uMjIyNjY2Ojo6Pj4+QkJCRkZGSkpKTk5OUlJSVlZWWlpaXl5eYmJiZmZmampqbm5ucnJydnZ2enp6fn5+goKChoaGioqKjo6OkpKSlpaWmpqanp6eoqKipqamqqqqrq6usrKytra2urq6vr6+wsLCxsbGysrKzs7O0tLS1tbW2tra3t7e4uLi5ubm6urq7u7u8vLy9vb2+vr6/v7/AwMDBwcHCwsLDw8PExMTFxcXGxsbHx8fIyMjJycnKysrLy8vMzMzNzc3Ozs7Pz8/Q0NDR0dHS0tLT09PU1NTV1dXW1tbX19fY2NjZ2dna2trb29vc3Nzd3d3e3t7f39/g4ODh4eHi4uLj4+Pk5OTl5eXm5ubn5+fo6Ojp6enq6urr6+vs7Ozt7e3u7u7v7+/w8PDx8fHy8vLz8/P09PT19fX29vb39/f4+Pj5+fn6+vr7+/v8/Pz9/f3+/v7///87ptqzAAAAJXRSTlMAgA5ABAHjYRLswnooVM0CyLDK2mCpIMSvX5AFm5SRscBeH2Kql1edqgAAAGdJREFUeJyNjUcSgCAUQ1GKSlGw9879r6j4Wbogm0zeTBKEgkQSnrFmQBhDTstcyLbu+jH6cqENdT7NFoCq4s+t9QDFYU+/8t3oXYNcKQ8W4pwaXQBYt/04pcjLFCoY0+tmGU9I2NMDXoEEmA7BEvIAAAAASUVORK5CYII="
)

type MenuOptions struct {
	Font string
}

// PadWidth is the width of the colon field after a device name. It grows
// with the distance from the longest name, in either direction.
func PadWidth(name string, maxName int) int {
	diff := maxName - NameLen(name)
	if diff < 0 {
		diff = -diff
	}
	return minPad + diff
}

// Format one summary line of the menu
func MenuLine(d Device, maxName int, font string) string {
	icon := OfflineIcon
	if d.Connected {
		icon = ConnectedIcon
	}
	return fmt.Sprintf("%s %s%-*s%s| font=%s color=%s",
		icon, d.Name, PadWidth(d.Name, maxName), ":", d.Status, font, d.Color)
}

// WriteMenu renders the bitbar document: header, one block per device with
// its supplemental lines, and a refresh action.
func WriteMenu(w io.Writer, devices []Device, maxName int, opts MenuOptions) error {
	font := opts.Font
	if font == "" {
		font = DefaultFont
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, MenuHeader)
	fmt.Fprintln(bw, Separator)
	for _, d := range devices {
		fmt.Fprintln(bw, MenuLine(d, maxName, font))
		for _, extra := range d.Extra {
			fmt.Fprintf(bw, "--%s\n", extra)
		}
	}
	fmt.Fprintln(bw, Separator)
	fmt.Fprintf(bw, "Refresh | refresh=true image='%s'\n", refreshIcon)
	return bw.Flush()
}
