package service

import (
	"strings"

	"CareMap-App/internal/domain/model"
)

// StyleBoundaries は選択中の行政洞を含む境界を強調し、それ以外は枠線のみで描画する
// data が nil の場合（取得失敗）は空のスライスを返す
func StyleBoundaries(data *model.BoundaryData, selectedArea string) []model.StyledBoundary {
	styled := make([]model.StyledBoundary, 0)
	if data == nil || data.Collection == nil {
		return styled
	}

	for _, f := range data.Collection.Features {
		if f == nil {
			continue
		}
		name := f.Properties.MustString(model.BoundaryNameProperty, "")
		highlighted := selectedArea != "" && strings.Contains(name, selectedArea)
		styled = append(styled, model.StyledBoundary{
			Name:        name,
			Highlighted: highlighted,
			Style:       BoundaryStyleFor(highlighted, selectedArea),
			Feature:     f,
		})
	}
	return styled
}

// BoundaryStyleFor は強調有無に応じたスタイルを返す
// 전체 選択時は強調対象でも塗りつぶさない
func BoundaryStyleFor(highlighted bool, selectedArea string) model.BoundaryStyle {
	if !highlighted {
		return model.BoundaryStyle{
			FillColor:   model.DefaultFillColor,
			Color:       model.DefaultLineColor,
			Weight:      1,
			FillOpacity: 0,
		}
	}
	opacity := 0.3
	if selectedArea == model.AreaAll {
		opacity = 0
	}
	return model.BoundaryStyle{
		FillColor:   model.HighlightColor,
		Color:       model.HighlightColor,
		Weight:      2,
		FillOpacity: opacity,
	}
}
