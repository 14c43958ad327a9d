package repository

import (
	"fmt"

	"github.com/paulmach/orb/encoding/wkt"

	"CareMap-App/internal/domain/model"
)

// LatLngFromWKT PostGIS の ST_AsText 結果 (POINT(lng lat)) を LatLng に変換
func LatLngFromWKT(s string) (model.LatLng, error) {
	point, err := wkt.UnmarshalPoint(s)
	if err != nil {
		return model.LatLng{}, fmt.Errorf("WKTの解析に失敗 (%q): %w", s, err)
	}
	return model.LatLng{Lat: point.Lat(), Lng: point.Lon()}, nil
}
