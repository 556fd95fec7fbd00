package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/seabassapologist/btbar/btbar"
	"github.com/seabassapologist/btbar/config"
	"github.com/seabassapologist/btbar/metrics"
	"github.com/seabassapologist/btbar/source"
)

const (
	formatBitbar     = "bitbar"
	formatWaybar     = "waybar"
	formatTerminal   = "terminal"
	formatPrometheus = "prometheus"
)

type options struct {
	configPath string
	format     string
	icons      bool
	verbose    bool
	timeout    time.Duration
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "btbar",
		Short: "Battery levels of this machine and its Bluetooth accessories",
		Long: `btbar prints the battery level of the host and of every paired
Bluetooth accessory as an xbar/SwiftBar menu. Drop it into the plugin
folder (e.g. as btbar.30m) to refresh every 30 minutes.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", config.Path(), "path to the TOML config file")
	f.StringVarP(&opts.format, "format", "f", formatBitbar, "output format: bitbar, waybar, terminal or prometheus")
	f.BoolVarP(&opts.icons, "icons", "i", false, "replace device names with Font Awesome icons (waybar)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log source and parse problems to stderr")
	f.DurationVar(&opts.timeout, "timeout", 0, "give up on external commands after this long (0 waits forever)")
	return cmd
}

func run(ctx context.Context, out io.Writer, opts options) error {
	switch opts.format {
	case formatBitbar, formatWaybar, formatTerminal, formatPrometheus:
	default:
		return errors.Errorf("unknown format %q", opts.format)
	}

	logger := log.New(io.Discard, "btbar: ", 0)
	if opts.verbose {
		logger.SetOutput(os.Stderr)
	}
	btbar.SetLogger(logger)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Printf("warning: %v; using defaults", err)
		cfg = config.Default()
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	host, accessories := sources(cfg)
	devices, maxName := collect(ctx, logger, cfg.HostName, host, accessories)

	switch opts.format {
	case formatWaybar:
		return btbar.WriteWaybar(out, devices, opts.icons)
	case formatTerminal:
		return btbar.WriteTerminal(out, devices, maxName)
	case formatPrometheus:
		return metrics.Write(out, devices)
	}
	return btbar.WriteMenu(out, devices, maxName, btbar.MenuOptions{Font: cfg.Font})
}

// Pick the host and accessory sources; nil means the source is disabled.
func sources(cfg config.Config) (source.Host, source.Accessories) {
	var host source.Host
	switch cfg.Host() {
	case config.SourcePmset:
		host = source.Pmset{Argv: cfg.Commands.Pmset}
	case config.SourceBattery:
		host = source.Battery{}
	}

	var accessories source.Accessories
	switch cfg.Accessories() {
	case config.SourceSystemProfiler:
		accessories = source.SystemProfiler{Argv: cfg.Commands.SystemProfiler}
	case config.SourceBlueZ:
		accessories = source.BlueZ{Adapter: cfg.Adapter}
	}
	return host, accessories
}

// collect builds the device list, host first. Source failures degrade to an
// unknown host level or an empty accessory list; they never stop the run.
func collect(ctx context.Context, logger *log.Logger, hostName string, host source.Host, accessories source.Accessories) ([]btbar.Device, int) {
	var devices []btbar.Device
	if host != nil {
		reading, err := host.Read(ctx)
		if err != nil {
			logger.Printf("host battery: %v", err)
		}
		devices = append(devices, btbar.HostDevice(hostName, reading))
	}

	maxName := 0
	if accessories != nil {
		found, max, err := accessories.Devices(ctx)
		if err != nil {
			logger.Printf("accessories: %v", err)
		}
		devices = append(devices, found...)
		maxName = max
	}

	return devices, btbar.MaxNameLen(maxName, devices...)
}
