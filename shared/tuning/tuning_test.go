package tuning

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/gladiator/shared/duel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverlaysBase(t *testing.T) {
	base := duel.DefaultTunables()
	got, err := Load(filepath.Join("testdata", "heavy.yaml"), base)
	require.NoError(t, err)

	want := base
	want.AttackDurationFrames = 20
	want.MaxThrust = 60
	want.ParryKnockback = 6
	want.ParryStunFrames = 40
	assert.Equal(t, want, got)
}

func TestExampleFileMatchesDefaults(t *testing.T) {
	got, err := Load(filepath.Join("..", "..", "configs", "tuning.example.yaml"), duel.Tunables{})
	require.NoError(t, err)
	assert.Equal(t, duel.DefaultTunables(), got)
}

func TestDecodeEmptyDocument(t *testing.T) {
	got, err := Decode(strings.NewReader(""), duel.DefaultTunables())
	require.NoError(t, err)
	assert.Equal(t, duel.DefaultTunables(), got)
}

func TestDecodeRejectsUnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader("max_thrusts: 50\n"), duel.DefaultTunables())
	assert.ErrorContains(t, err, "max_thrusts")
}

func TestDecodeRejectsInvalidValues(t *testing.T) {
	base := duel.DefaultTunables()
	got, err := Decode(strings.NewReader("shield_smoothing: 0\nbody_radius: -3\n"), base)
	require.Error(t, err)
	assert.ErrorContains(t, err, "shield_smoothing")
	assert.ErrorContains(t, err, "body_radius")
	assert.Equal(t, base, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"), duel.DefaultTunables())
	assert.ErrorContains(t, err, "nope.yaml")
}

func TestEncodeRoundTripsThroughDecode(t *testing.T) {
	tun := duel.DefaultTunables()
	tun.MoveSpeed = 5.5

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, tun))
	assert.Contains(t, buf.String(), "move_speed: 5.5")

	got, err := Decode(&buf, duel.DefaultTunables())
	require.NoError(t, err)
	assert.Equal(t, tun, got)
}
