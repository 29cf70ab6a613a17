package cli

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/glprims/render"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs)
	require.NoError(t, fs.Parse(args))
	return &f
}

func TestDefaults(t *testing.T) {
	f := parse(t)
	assert.Equal(t, "triangle", f.Demo)
	assert.Equal(t, 100, f.Count)
	assert.Equal(t, 30, f.LatBands)

	p, err := f.Params()
	require.NoError(t, err)
	assert.Nil(t, p.Color)
	assert.NotZero(t, f.Seed)

	_, err = f.Routine()
	assert.NoError(t, err)
}

func TestParams(t *testing.T) {
	f := parse(t, "-demo", "sphere", "-color", "0,1,0", "-seed", "9", "-lat", "12")
	p, err := f.Params()
	require.NoError(t, err)
	assert.Equal(t, &render.Color{0, 1, 0, 1}, p.Color)
	assert.Equal(t, 12, p.LatBands)
	assert.Zero(t, p.RotationY)

	// Same seed, same sequence.
	q, err := f.Params()
	require.NoError(t, err)
	assert.Equal(t, p.Rand.Uint64(), q.Rand.Uint64())

	f = parse(t, "-demo", "sphere", "-rotate", "0.5")
	p, err = f.Params()
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), p.RotationY)

	f = parse(t, "-color", "nope")
	_, err = f.Params()
	assert.Error(t, err)

	f = parse(t, "-demo", "cube")
	_, err = f.Routine()
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	l := SetupLogging(true)
	assert.Same(t, l, render.Logger())
	render.SetLogger(nil)
	assert.NotSame(t, l, render.Logger())
}
