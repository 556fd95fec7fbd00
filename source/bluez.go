package source

import (
	"context"
	"encoding/xml"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/pkg/errors"

	"github.com/seabassapologist/btbar/btbar"
)

const (
	bluezService    = "org.bluez"
	deviceInterface = "org.bluez.Device1"
	batteryProperty = "org.bluez.Battery1.Percentage"
	DefaultAdapter  = "/org/bluez/hci0"
)

// BlueZ reads accessories from the Linux Bluetooth daemon over the system bus.
type BlueZ struct {
	Adapter string
}

func (b BlueZ) Devices(ctx context.Context) ([]btbar.Device, int, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, 0, errors.Wrap(err, "connect to system bus")
	}
	defer conn.Close()

	adapter := b.Adapter
	if adapter == "" {
		adapter = DefaultAdapter
	}

	paths, err := SearchAll(ctx, conn, adapter)
	if err != nil {
		return nil, 0, err
	}

	var devices []btbar.Device
	for _, p := range paths {
		d, err := GetDevice(ctx, conn, p)
		if err != nil || d.Name == "" {
			// devices can disappear between introspection and the property read
			continue
		}
		devices = append(devices, d)
	}
	return devices, btbar.MaxNameLen(0, devices...), nil
}

// Get list of D-Bus object paths for all viewable BT devices.
// May include devices that aren't paired or connected
func SearchAll(ctx context.Context, bus *dbus.Conn, adapter string) ([]dbus.ObjectPath, error) {
	var data string
	err := bus.Object(bluezService, dbus.ObjectPath(adapter)).
		CallWithContext(ctx, "org.freedesktop.DBus.Introspectable.Introspect", 0).
		Store(&data)
	if err != nil {
		return nil, errors.Wrapf(err, "introspect %s", adapter)
	}
	return childPaths(adapter, data)
}

func childPaths(adapter, data string) ([]dbus.ObjectPath, error) {
	var node introspect.Node
	if err := xml.Unmarshal([]byte(data), &node); err != nil {
		return nil, errors.Wrap(err, "parse introspection data")
	}
	var l []dbus.ObjectPath
	for _, c := range node.Children {
		l = append(l, dbus.ObjectPath(adapter+"/"+c.Name))
	}
	return l, nil
}

// Construct a Device from the provided D-Bus Object
func GetDevice(ctx context.Context, bus *dbus.Conn, obj dbus.ObjectPath) (btbar.Device, error) {
	o := bus.Object(bluezService, obj)

	var info map[string]dbus.Variant
	err := o.CallWithContext(ctx, "org.freedesktop.DBus.Properties.GetAll", 0, deviceInterface).Store(&info)
	if err != nil {
		return btbar.Device{}, errors.Wrapf(err, "read properties of %s", obj)
	}

	var bat *dbus.Variant
	if paired, _ := info["Paired"].Value().(bool); paired {
		// paired devices without battery reporting have no Battery1 interface
		if v, err := o.GetProperty(batteryProperty); err == nil {
			bat = &v
		}
	}
	return deviceFromProps(info, bat), nil
}

func deviceFromProps(info map[string]dbus.Variant, bat *dbus.Variant) btbar.Device {
	var d btbar.Device
	d.Connected, _ = info["Connected"].Value().(bool)
	d.Paired, _ = info["Paired"].Value().(bool)
	d.Icon, _ = info["Icon"].Value().(string)

	// Alias is the user-visible name and falls back to Name inside BlueZ
	d.Name, _ = info["Alias"].Value().(string)
	if d.Name == "" {
		d.Name, _ = info["Name"].Value().(string)
	}
	if d.Name == "" {
		d.Name, _ = info["Address"].Value().(string)
	}

	level := btbar.Gradient("")
	if bat != nil {
		if p, ok := percentValue(bat.Value()); ok {
			level = btbar.GradientFor(p)
		}
	}
	d.SetLevel(level)
	return d
}

// Battery1.Percentage is a byte, but accept any integer type
func percentValue(v interface{}) (int, bool) {
	switch p := v.(type) {
	case byte:
		return int(p), true
	case int16:
		return int(p), true
	case uint16:
		return int(p), true
	case int32:
		return int(p), true
	case uint32:
		return int(p), true
	case int64:
		return int(p), true
	case uint64:
		return int(p), true
	case int:
		return p, true
	}
	return 0, false
}
