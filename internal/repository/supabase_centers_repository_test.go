package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareMap-App/internal/domain/model"
)

func TestDecodeSupabaseCenters(t *testing.T) {
	t.Run("数値と文字列のid", func(t *testing.T) {
		data := []byte(`[
			{"id":1,"name":"A","lat":37.58,"lng":127.05,"categories":"노인","area":null},
			{"id":"center-b","name":"B","lat":37.60,"lng":127.07,"categories":null},
			{"id":null,"name":"C","lat":37.59,"lng":127.06}
		]`)

		centers, err := decodeSupabaseCenters(data, "supabase:centers")
		require.NoError(t, err)
		require.Len(t, centers, 3)

		assert.Equal(t, model.Center{ID: "1", Name: "A", Lat: 37.58, Lng: 127.05, Categories: "노인"}, centers[0])
		assert.Equal(t, "center-b", centers[1].ID)
		assert.Equal(t, "", centers[1].Categories)
		assert.Equal(t, "", centers[2].ID)
	})

	tests := []struct {
		name string
		data string
	}{
		{name: "latがNULL", data: `[{"id":1,"name":"A","lat":null,"lng":null},{"id":2,"name":"B","lat":37.60,"lng":127.07}]`},
		{name: "lngがない", data: `[{"id":1,"name":"A","lat":37.58}]`},
		{name: "idが配列", data: `[{"id":[1],"name":"A","lat":37.58,"lng":127.05}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			centers, err := decodeSupabaseCenters([]byte(tt.data), "supabase:centers")
			assert.Nil(t, centers)
			require.Error(t, err)
			assert.True(t, model.IsConfigError(err))
		})
	}

	t.Run("JSONが不正", func(t *testing.T) {
		_, err := decodeSupabaseCenters([]byte(`{"message":"oops"}`), "supabase:centers")
		assert.Error(t, err)
	})
}
