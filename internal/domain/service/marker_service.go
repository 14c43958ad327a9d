package service

import (
	"CareMap-App/internal/domain/model"
)

// BuildMarkers はフィルタ結果の順にマーカー記述子を作る
// ポップアップのマークアップは描画側が担当し、ここでは項目のみを渡す
func BuildMarkers(centers []model.Center) []model.MarkerDescriptor {
	markers := make([]model.MarkerDescriptor, 0, len(centers))
	for i := range centers {
		c := &centers[i]
		markers = append(markers, model.MarkerDescriptor{
			ID:    c.ID,
			Lat:   c.Lat,
			Lng:   c.Lng,
			Label: c.Name,
			Detail: model.MarkerDetail{
				Feature:    c.Feature,
				Events:     c.EventTokens(),
				Programs:   c.ProgramTokens(),
				Categories: c.CategoryTokens(),
				Area:       c.Area,
			},
		})
	}
	return markers
}

// BuildFilteredView はフィルタとビューポート計算をまとめて行う
func BuildFilteredView(centers []model.Center, query model.Query, opts ViewportOptions) model.FilteredView {
	filtered := ApplyFilter(centers, query)
	return model.FilteredView{
		Centers:  filtered,
		Viewport: ComputeViewport(filtered, query, opts),
		Count:    len(filtered),
		Empty:    len(filtered) == 0,
	}
}
