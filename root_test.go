package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seabassapologist/btbar/btbar"
	"github.com/seabassapologist/btbar/config"
	"github.com/seabassapologist/btbar/source"
)

type fakeHost struct {
	reading btbar.HostReading
	err     error
}

func (f fakeHost) Read(ctx context.Context) (btbar.HostReading, error) {
	return f.reading, f.err
}

type fakeAccessories struct {
	devices []btbar.Device
	err     error
}

func (f fakeAccessories) Devices(ctx context.Context) ([]btbar.Device, int, error) {
	return f.devices, btbar.MaxNameLen(0, f.devices...), f.err
}

var quiet = log.New(io.Discard, "", 0)

func TestCollectHostFirst(t *testing.T) {
	acc := fakeAccessories{devices: []btbar.Device{{Name: "A"}, {Name: "LongName"}}}
	devices, max := collect(context.Background(), quiet, "", fakeHost{reading: btbar.HostReading{Percent: "50"}}, acc)

	if len(devices) != 3 {
		t.Fatalf("len(devices) = %d, want 3", len(devices))
	}
	if devices[0].Name != btbar.HostName {
		t.Errorf("devices[0].Name = %q, want host first", devices[0].Name)
	}
	// the host name is longer than every accessory
	if max != len(btbar.HostName) {
		t.Errorf("max = %d, want %d", max, len(btbar.HostName))
	}
}

func TestCollectDegrades(t *testing.T) {
	host := fakeHost{err: errors.New("pmset: not found")}
	acc := fakeAccessories{err: errors.New("system_profiler: exit status 1")}
	devices, _ := collect(context.Background(), quiet, "Laptop", host, acc)

	if len(devices) != 1 {
		t.Fatalf("len(devices) = %d, want only the host", len(devices))
	}
	if devices[0].Name != "Laptop" || devices[0].Status != btbar.UnknownStatus {
		t.Errorf("host = %+v, want unknown Laptop", devices[0])
	}
}

func TestCollectNoSources(t *testing.T) {
	devices, max := collect(context.Background(), quiet, "", nil, nil)
	if len(devices) != 0 || max != 0 {
		t.Errorf("collect() = %v, %d, want nothing", devices, max)
	}
}

func TestSources(t *testing.T) {
	cfg := config.Default()
	cfg.HostSource = config.SourcePmset
	cfg.AccessorySource = config.SourceBlueZ
	host, acc := sources(cfg)
	if _, ok := host.(source.Pmset); !ok {
		t.Errorf("host = %T, want source.Pmset", host)
	}
	if b, ok := acc.(source.BlueZ); !ok || b.Adapter != source.DefaultAdapter {
		t.Errorf("accessories = %#v, want source.BlueZ on the default adapter", acc)
	}

	cfg.HostSource = config.SourceNone
	cfg.AccessorySource = config.SourceNone
	if host, acc := sources(cfg); host != nil || acc != nil {
		t.Errorf("sources(none) = %v, %v, want nil", host, acc)
	}
}

func disabledConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "host_source = \"none\"\naccessory_source = \"none\"\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandBitbar(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--config", disabledConfig(t)})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 || lines[0] != btbar.MenuHeader || lines[1] != "---" || lines[2] != "---" {
		t.Errorf("output = %q, want empty menu", out.String())
	}
}

func TestRootCommandWaybar(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--config", disabledConfig(t), "-f", "waybar"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), `"text":"Disconnected"`) {
		t.Errorf("output = %q, want Disconnected", out.String())
	}
}

func TestRootCommandUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--format", "html"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown format")
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing", out.String())
	}
}
