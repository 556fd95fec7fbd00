package source

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/distatus/battery"
	"github.com/pkg/errors"

	"github.com/seabassapologist/btbar/btbar"
)

const noEstimate = "(no estimate)"

// Battery reads the host battery through the OS battery API, for machines
// without pmset.
type Battery struct {
	// GetAll defaults to battery.GetAll
	GetAll func() ([]*battery.Battery, error)
}

func (b Battery) Read(ctx context.Context) (btbar.HostReading, error) {
	getAll := b.GetAll
	if getAll == nil {
		getAll = battery.GetAll
	}
	batteries, err := getAll()
	if len(batteries) == 0 {
		if err == nil {
			err = errors.New("no battery found")
		}
		return btbar.HostReading{}, errors.Wrap(err, "read host battery")
	}
	// partial errors still leave usable readings
	return readingFrom(batteries), nil
}

// Totals across all batteries, the way the OS status menu reports them.
func readingFrom(batteries []*battery.Battery) btbar.HostReading {
	var current, full, rate float64
	var state battery.AgnosticState
	seen := false
	for _, bat := range batteries {
		if bat == nil {
			continue
		}
		current += bat.Current
		if bat.Full != 0 {
			full += bat.Full
		} else {
			full += bat.Design
		}
		rate += bat.ChargeRate
		if !seen {
			state, seen = bat.State.Raw, true
		}
	}

	var r btbar.HostReading
	if full > 0 {
		r.Percent = strconv.Itoa(int(math.Round(current / full * 100)))
	}
	if seen {
		r.Status = strings.ToLower(state.String())
	}

	r.Source = "AC Power"
	if state == battery.Discharging {
		r.Source = "Battery Power"
	}

	r.Remaining = noEstimate
	if rate > 0 {
		switch state {
		case battery.Discharging:
			r.Remaining = hoursMinutes(current / rate)
		case battery.Charging:
			r.Remaining = hoursMinutes((full - current) / rate)
		}
	}
	return r
}

// Format fractional hours like pmset does ("4:32").
func hoursMinutes(h float64) string {
	m := int(math.Round(h * 60))
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}
