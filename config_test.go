package unicornhd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/unicornhd"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unicorn.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
transport: serial
rotation: 180
brightness: 0.5
serial:
  port: /dev/ttyACM0
  baud_rate: 57600
`), 0o644))

	c, err := unicornhd.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, unicornhd.TransportSerial, c.Transport)
	assert.Equal(t, 180, c.Rotation)
	assert.Equal(t, 0.5, c.Brightness)
	assert.Equal(t, "/dev/ttyACM0", c.Serial.Port)
	assert.Equal(t, 57600, c.Serial.BaudRate)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := unicornhd.LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestOpenEmulated(t *testing.T) {
	d, err := unicornhd.Open(&unicornhd.Config{
		Transport:  unicornhd.TransportEmulated,
		Rotation:   90,
		Brightness: 0.25,
	})
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, unicornhd.Rotate90, d.Rotation())
	require.NoError(t, d.Display())
}

func TestOpenUnknownTransport(t *testing.T) {
	_, err := unicornhd.Open(&unicornhd.Config{Transport: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestOpenBadRotation(t *testing.T) {
	_, err := unicornhd.Open(&unicornhd.Config{
		Transport: unicornhd.TransportEmulated,
		Rotation:  45,
	})
	assert.ErrorIs(t, err, unicornhd.ErrRotation)
}

func TestOpenBadBrightness(t *testing.T) {
	_, err := unicornhd.Open(&unicornhd.Config{
		Transport:  unicornhd.TransportEmulated,
		Brightness: 1.5,
	})
	assert.ErrorIs(t, err, unicornhd.ErrBrightness)
}
