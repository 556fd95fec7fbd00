// Package metrics writes device readings in the Prometheus text format, for
// node_exporter's textfile collector.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/seabassapologist/btbar/btbar"
)

type collectors struct {
	percent   *prometheus.GaugeVec
	connected *prometheus.GaugeVec
	paired    *prometheus.GaugeVec
}

func newCollectors() collectors {
	labels := []string{"device"}
	return collectors{
		percent: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "btbar_device_battery_percent",
				Help: "Battery level in percent (absent when unknown)",
			},
			labels,
		),
		connected: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "btbar_device_connected",
				Help: "1 if the device is connected",
			},
			labels,
		),
		paired: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "btbar_device_paired",
				Help: "1 if the device is paired",
			},
			labels,
		),
	}
}

func (c collectors) list() []prometheus.Collector {
	return []prometheus.Collector{c.percent, c.connected, c.paired}
}

// Registry builds a registry holding one sample set per device.
func Registry(devices []btbar.Device) *prometheus.Registry {
	c := newCollectors()
	registry := prometheus.NewRegistry()
	for _, collector := range c.list() {
		registry.MustRegister(collector)
	}

	for _, d := range devices {
		if d.HasPercent {
			c.percent.WithLabelValues(d.Name).Set(float64(d.Percent))
		}
		c.connected.WithLabelValues(d.Name).Set(boolValue(d.Connected))
		c.paired.WithLabelValues(d.Name).Set(boolValue(d.Paired))
	}
	return registry
}

// Write gathers the registry for devices and prints it in text format.
func Write(w io.Writer, devices []btbar.Device) error {
	families, err := Registry(devices).Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
