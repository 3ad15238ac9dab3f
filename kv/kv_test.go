package kv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BojanFaletic/codex-eeprom-emulation/eeprom"
	"github.com/BojanFaletic/codex-eeprom-emulation/flash"
	"github.com/BojanFaletic/codex-eeprom-emulation/kv"
)

func newStore(t *testing.T) *eeprom.Engine {
	t.Helper()
	dev := flash.NewMock(8192, 256, 4096)
	e, err := eeprom.Open(dev, eeprom.Config{Base: 0, SectorSize: 4096, LogicalSize: 256})
	require.NoError(t, err)
	return e
}

func TestBootCounterRoundTrips(t *testing.T) {
	s := newStore(t)

	count, err := kv.GetBootCount(s)
	require.NoError(t, err)
	require.Equal(t, uint32(0xFFFFFFFF), count, "fresh EEPROM reads back as all-FF")

	count, err = kv.IncBootCount(s)
	require.NoError(t, err)
	require.Equal(t, uint32(0), count, "first increment wraps 0xFFFFFFFF to 0")

	count, err = kv.IncBootCount(s)
	require.NoError(t, err)
	require.Equal(t, uint32(1), count)
}

func TestNameRoundTrip(t *testing.T) {
	s := newStore(t)

	require.NoError(t, kv.SetName(s, "sensor-01"))
	name, err := kv.GetName(s)
	require.NoError(t, err)
	require.Equal(t, "sensor-01", name)
}

func TestNameTooLongRejected(t *testing.T) {
	s := newStore(t)
	err := kv.SetName(s, "this name is definitely longer than thirty two bytes")
	require.Error(t, err)
}

func TestBaudAndMode(t *testing.T) {
	s := newStore(t)

	require.NoError(t, kv.SetBaud(s, 115200))
	baud, err := kv.GetBaud(s)
	require.NoError(t, err)
	require.Equal(t, uint32(115200), baud)

	require.NoError(t, kv.SetMode(s, 3))
	mode, err := kv.GetMode(s)
	require.NoError(t, err)
	require.Equal(t, byte(3), mode)
}
