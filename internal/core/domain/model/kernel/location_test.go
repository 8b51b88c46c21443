package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "valid location", lat: 19.076, lng: 72.8777},
		{name: "valid at min bounds", lat: kernel.LatitudeMin, lng: kernel.LongitudeMin},
		{name: "valid at max bounds", lat: kernel.LatitudeMax, lng: kernel.LongitudeMax},
		{name: "latitude too small", lat: -90.01, lng: 0, wantErr: true},
		{name: "latitude too large", lat: 90.01, lng: 0, wantErr: true},
		{name: "longitude too small", lat: 0, lng: -180.5, wantErr: true},
		{name: "longitude too large", lat: 0, lng: 181, wantErr: true},
		{name: "latitude is NaN", lat: math.NaN(), lng: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.lat, tt.lng, "")

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Equal(t, kernel.Location{}, loc)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.lat, loc.Latitude(), 1e-9)
			assert.InDelta(t, tt.lng, loc.Longitude(), 1e-9)
			assert.NoError(t, loc.Validate())
		})
	}

	t.Run("both coordinates invalid reports both", func(t *testing.T) {
		_, err := kernel.NewLocation(100, 200, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("address is trimmed", func(t *testing.T) {
		loc, err := kernel.NewLocation(1, 2, "  12 Baker Street \n")

		require.NoError(t, err)
		assert.Equal(t, "12 Baker Street", loc.Address())
	})
}

func TestLocation_ZeroValue(t *testing.T) {
	var loc kernel.Location
	valid, err := kernel.NewLocation(0, 0, "")
	require.NoError(t, err)

	require.ErrorIs(t, loc.Validate(), errs.ErrValueIsRequired)

	_, err = loc.DistanceTo(valid)
	require.Error(t, err)

	_, err = valid.IsEqual(loc)
	require.Error(t, err)
}

func TestLocation_DistanceTo(t *testing.T) {
	origin, err := kernel.NewLocation(0, 0, "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		lat    float64
		lng    float64
		wantKm float64
	}{
		{name: "same point", lat: 0, lng: 0, wantKm: 0},
		{name: "one degree east on the equator", lat: 0, lng: 1, wantKm: 111.19},
		{name: "one degree north", lat: 1, lng: 0, wantKm: 111.19},
		{name: "just under ten km", lat: 0, lng: 0.08, wantKm: 8.9},
		{name: "just over ten km", lat: 0, lng: 0.09, wantKm: 10.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := kernel.NewLocation(tt.lat, tt.lng, "")
			require.NoError(t, err)

			km, err := origin.DistanceTo(target)

			require.NoError(t, err)
			assert.InDelta(t, tt.wantKm, km, 1e-9)
		})
	}

	t.Run("distance is symmetric", func(t *testing.T) {
		mumbai, err := kernel.NewLocation(19.0760, 72.8777, "Mumbai")
		require.NoError(t, err)
		pune, err := kernel.NewLocation(18.5204, 73.8567, "Pune")
		require.NoError(t, err)

		d1, err := mumbai.DistanceTo(pune)
		require.NoError(t, err)
		d2, err := pune.DistanceTo(mumbai)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
		assert.InDelta(t, 120, d1, 5)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(10, 20, "A")
	b, _ := kernel.NewLocation(10, 20, "A")
	c, _ := kernel.NewLocation(10, 20, "B")

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestRoundKm(t *testing.T) {
	assert.InDelta(t, 3.14, kernel.RoundKm(3.14159), 1e-9)
	assert.InDelta(t, 2.68, kernel.RoundKm(2.675001), 1e-9)
	assert.InDelta(t, 0, kernel.RoundKm(0.004), 1e-9)
}
