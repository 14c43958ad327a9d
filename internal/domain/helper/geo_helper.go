package helper

import (
	"math"

	"github.com/paulmach/orb"

	"CareMap-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の距離を計算する (km)
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// Centroid は緯度・経度それぞれの算術平均を返す
// 空の場合や非有限値になった場合は ok=false
func Centroid(centers []model.Center) (model.LatLng, bool) {
	if len(centers) == 0 {
		return model.LatLng{}, false
	}
	var sumLat, sumLng float64
	for i := range centers {
		sumLat += centers[i].Lat
		sumLng += centers[i].Lng
	}
	n := float64(len(centers))
	c := model.LatLng{Lat: sumLat / n, Lng: sumLng / n}
	if !IsFinite(c.Lat) || !IsFinite(c.Lng) {
		return model.LatLng{}, false
	}
	return c, true
}

// MaxDistanceFrom は基準地点から最も遠いセンターまでの距離 (km)
func MaxDistanceFrom(origin model.LatLng, centers []model.Center) float64 {
	var max float64
	for i := range centers {
		if d := HaversineDistance(origin, centers[i].ToLatLng()); d > max {
			max = d
		}
	}
	return max
}

// BoundOf はセンター群を囲む orb.Bound を返す
func BoundOf(centers []model.Center) (orb.Bound, bool) {
	if len(centers) == 0 {
		return orb.Bound{}, false
	}
	bound := centers[0].ToPoint().Bound()
	for i := 1; i < len(centers); i++ {
		bound = bound.Extend(centers[i].ToPoint())
	}
	return bound, true
}

// ToBounds orb.Bound を API 用の Bounds に変換
func ToBounds(b orb.Bound) *model.Bounds {
	return &model.Bounds{
		MinLat: b.Min.Lat(),
		MinLng: b.Min.Lon(),
		MaxLat: b.Max.Lat(),
		MaxLng: b.Max.Lon(),
	}
}

// IsFinite は NaN / Inf でないかをチェックする
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsValidCoordinate は緯度経度が有限かつ範囲内かをチェックする
func IsValidCoordinate(lat, lng float64) bool {
	return IsFinite(lat) && IsFinite(lng) && lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
