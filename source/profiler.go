package source

import (
	"context"

	"github.com/seabassapologist/btbar/btbar"
)

// Accessories lists the wireless accessories and the longest name among them.
type Accessories interface {
	Devices(ctx context.Context) ([]btbar.Device, int, error)
}

// Host reads the machine's own battery.
type Host interface {
	Read(ctx context.Context) (btbar.HostReading, error)
}

var (
	SystemProfilerCommand = []string{"system_profiler", "SPBluetoothDataType", "-xml"}
	PmsetCommand          = []string{"pmset", "-g", "batt"}
)

// SystemProfiler reads accessories from the macOS Bluetooth plist.
type SystemProfiler struct {
	Runner Runner
	Argv   []string
}

func (s SystemProfiler) Devices(ctx context.Context) ([]btbar.Device, int, error) {
	argv := s.Argv
	if len(argv) == 0 {
		argv = SystemProfilerCommand
	}
	out, err := Text(ctx, runner(s.Runner), argv)
	if err != nil {
		return nil, 0, err
	}
	devices, max := btbar.Extract([]byte(out))
	return devices, max, nil
}

// Pmset reads the host battery from `pmset -g batt`.
type Pmset struct {
	Runner Runner
	Argv   []string
}

func (p Pmset) Read(ctx context.Context) (btbar.HostReading, error) {
	argv := p.Argv
	if len(argv) == 0 {
		argv = PmsetCommand
	}
	out, err := Text(ctx, runner(p.Runner), argv)
	if err != nil {
		return btbar.HostReading{}, err
	}
	return btbar.ParsePmset(out), nil
}

func runner(r Runner) Runner {
	if r == nil {
		return ExecRunner{}
	}
	return r
}
