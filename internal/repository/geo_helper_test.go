package repository

import (
	"testing"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareMap-App/internal/domain/model"
)

func TestLatLngFromWKT(t *testing.T) {
	pos, err := LatLngFromWKT("POINT(127.055 37.59)")
	require.NoError(t, err)
	assert.InDelta(t, 37.59, pos.Lat, 1e-9)
	assert.InDelta(t, 127.055, pos.Lng, 1e-9)

	_, err = LatLngFromWKT("LINESTRING(0 0,1 1)")
	assert.Error(t, err)
}

func TestLatLngFromWKT_RoundTrip(t *testing.T) {
	c := &model.Center{Lat: 37.578, Lng: 127.06}
	pos, err := LatLngFromWKT(wkt.MarshalString(c.ToPoint()))
	require.NoError(t, err)
	assert.Equal(t, c.ToLatLng(), pos)
}

func TestCenterRow_ToCenter(t *testing.T) {
	row := centerRow{
		ID:       "7",
		Name:     "회기 건강센터",
		Location: "POINT(127.055 37.59)",
	}
	row.Categories.String, row.Categories.Valid = "노인", true

	center, err := row.ToCenter()
	require.NoError(t, err)
	assert.Equal(t, "7", center.ID)
	assert.Equal(t, "노인", center.Categories)
	assert.Equal(t, "", center.Area)

	row.Location = "invalid"
	_, err = row.ToCenter()
	assert.Error(t, err)
}
