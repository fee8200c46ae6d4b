package damplot

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwa-project/jdep"
)

func TestProbabilityMap(t *testing.T) {
	for _, etype := range []jdep.EmissionType{jdep.EmissionAll, jdep.EmissionNonIo} {
		p, err := ProbabilityMap(nil, etype)
		require.NoError(t, err, "emission type %s", etype)
		assert.Contains(t, p.Title.Text, etype.String())
		assert.Equal(t, "CML (System III) [deg]", p.X.Label.Text)
	}

	p, err := ProbabilityMap(nil, jdep.EmissionNonIo)
	require.NoError(t, err)
	assert.Contains(t, p.Y.Label.Text, "Ganymede")

	_, err = ProbabilityMap(nil, jdep.EmissionType(42))
	var ierr *jdep.InputError
	require.ErrorAs(t, err, &ierr)
}

func TestWriteImage(t *testing.T) {
	p, err := ProbabilityMap(nil, jdep.EmissionAll)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteImage(&buf, p, 8, 6, "png"))
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4], "not a PNG")
}

func TestAddTrack(t *testing.T) {
	p, err := ProbabilityMap(nil, jdep.EmissionAll)
	require.NoError(t, err)

	start, err := jdep.ParseTime("2025/3/8 20:00:00")
	require.NoError(t, err)

	// A single instant draws one marker.
	require.NoError(t, AddTrack(p, jdep.Io, start, start, 0))

	// Ten hours sweeps the CML through a full rotation, so the track
	// must split at the wrap without error.
	require.NoError(t, AddTrack(p, jdep.Io, start, start.Add(10*time.Hour), 15*time.Minute))

	// Out-of-epoch times surface the ephemeris error.
	old := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	var ierr *jdep.InputError
	require.ErrorAs(t, AddTrack(p, jdep.Io, old, old, 0), &ierr)
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, nil, jdep.EmissionAll))
	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Jovian DAM probability")

	var ierr *jdep.InputError
	require.ErrorAs(t, WriteHTML(&buf, nil, jdep.EmissionType(42)), &ierr)
}
