package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareMap-App/internal/domain/model"
)

func TestCenterFromDocument(t *testing.T) {
	t.Run("全フィールド", func(t *testing.T) {
		center, err := centerFromDocument("doc-1", map[string]interface{}{
			"name":       "회기 건강센터",
			"lat":        37.59,
			"lng":        int64(127),
			"categories": "노인;성인",
			"area":       "회기동",
		})
		require.NoError(t, err)
		assert.Equal(t, model.Center{
			ID:         "doc-1",
			Name:       "회기 건강센터",
			Lat:        37.59,
			Lng:        127,
			Categories: "노인;성인",
			Area:       "회기동",
		}, center)
	})

	t.Run("idフィールドを優先", func(t *testing.T) {
		center, err := centerFromDocument("doc-1", map[string]interface{}{"id": int64(7), "name": "A", "lat": 37.5, "lng": 127.0})
		require.NoError(t, err)
		assert.Equal(t, "7", center.ID)
	})

	tests := []struct {
		name string
		data map[string]interface{}
	}{
		{name: "latがない", data: map[string]interface{}{"name": "A", "lng": 127.0}},
		{name: "lngがnull", data: map[string]interface{}{"name": "A", "lat": 37.5, "lng": nil}},
		{name: "latが文字列", data: map[string]interface{}{"name": "A", "lat": "37.5", "lng": 127.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := centerFromDocument("doc-1", tt.data)
			assert.Error(t, err)
		})
	}
}
