package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	f, err := LoadFile("testdata/trip.yaml")
	require.NoError(t, err, "error loading trip file")

	assert.Equal(t, "Pacific Northwest Loop", f.Trip.Name)
	assert.Equal(t, []string{"ana", "ben", "cleo"}, f.Trip.Members)
	require.NotNil(t, f.Trip.Window)
	assert.Equal(t, 2026, f.Trip.Window.Start.Year())
	assert.NotEmpty(t, f.Trip.ID, "missing trip ID should be generated")

	require.Len(t, f.Entries.Flights, 1)
	require.Len(t, f.Entries.Restaurants, 2)
	require.Len(t, f.Entries.Activities, 1)
	assert.Equal(t, 6, f.Entries.Len())

	assert.Equal(t, "7pm", f.Entries.Restaurants[0].TimeOfDay)
	require.NotNil(t, f.Entries.Restaurants[0].Date)
	assert.Nil(t, f.Entries.Restaurants[1].Date, "an idea has no committed date")

	for _, r := range f.Entries.Restaurants {
		assert.NotEmpty(t, r.ID, "every entry should end up with an ID")
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile("testdata/no-such-file.yaml")
	require.Error(t, err)
}
