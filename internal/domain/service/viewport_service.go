package service

import (
	"CareMap-App/internal/domain/helper"
	"CareMap-App/internal/domain/model"
)

// ViewportOptions ビューポート計算の既定値とズーム方針
type ViewportOptions struct {
	DefaultCenter   model.LatLng
	DefaultZoom     int
	FocusedZoom     int
	FocusThreshold  int     // 件数がこれ未満なら拡大
	ClusterRadiusKm float64 // 全件が重心からこの距離以内なら拡大（0以下で無効）
}

// DefaultViewportOptions 동대문구 全体を表示する既定値
func DefaultViewportOptions() ViewportOptions {
	return ViewportOptions{
		DefaultCenter:   model.LatLng{Lat: model.DefaultCenterLat, Lng: model.DefaultCenterLng},
		DefaultZoom:     model.DefaultZoom,
		FocusedZoom:     model.DefaultFocusedZoom,
		FocusThreshold:  model.DefaultFocusThreshold,
		ClusterRadiusKm: model.DefaultClusterRadiusKm,
	}
}

// ComputeViewport はフィルタ結果の重心と表示ズームを求める
// 結果が空、または重心が非有限値になる場合は既定の中心とズームを返す
func ComputeViewport(centers []model.Center, query model.Query, opts ViewportOptions) model.Viewport {
	fallback := model.Viewport{
		CenterLat: opts.DefaultCenter.Lat,
		CenterLng: opts.DefaultCenter.Lng,
		Zoom:      opts.DefaultZoom,
	}

	centroid, ok := helper.Centroid(centers)
	if !ok {
		return fallback
	}

	zoom := opts.DefaultZoom
	if shouldFocus(centers, centroid, query, opts) {
		zoom = opts.FocusedZoom
	}

	return model.Viewport{
		CenterLat: centroid.Lat,
		CenterLng: centroid.Lng,
		Zoom:      zoom,
	}
}

// shouldFocus 行政洞指定・少数件・1クラスタのいずれかで拡大表示にする
func shouldFocus(centers []model.Center, centroid model.LatLng, query model.Query, opts ViewportOptions) bool {
	if query.HasAreaFilter() {
		return true
	}
	if len(centers) < opts.FocusThreshold {
		return true
	}
	if opts.ClusterRadiusKm > 0 && helper.MaxDistanceFrom(centroid, centers) <= opts.ClusterRadiusKm {
		return true
	}
	return false
}

// ComputeBounds はフィルタ結果を囲む矩形を返す（空の場合は nil）
func ComputeBounds(centers []model.Center) *model.Bounds {
	bound, ok := helper.BoundOf(centers)
	if !ok {
		return nil
	}
	return helper.ToBounds(bound)
}
