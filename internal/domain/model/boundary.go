package model

import "github.com/paulmach/orb/geojson"

// BoundaryNameProperty 行政洞名が格納されているGeoJSONプロパティ
const BoundaryNameProperty = "adm_nm"

// BoundaryData 行政洞境界のGeoJSON
type BoundaryData struct {
	Collection *geojson.FeatureCollection
}

// BoundaryStyle 境界ポリゴンの描画スタイル
type BoundaryStyle struct {
	FillColor   string  `json:"fillColor"`
	Color       string  `json:"color"`
	Weight      int     `json:"weight"`
	FillOpacity float64 `json:"fillOpacity"`
}

// StyledBoundary スタイルを決定済みの境界1件
type StyledBoundary struct {
	Name        string           `json:"name"`
	Highlighted bool             `json:"highlighted"`
	Style       BoundaryStyle    `json:"style"`
	Feature     *geojson.Feature `json:"feature"`
}

// BoundaryOverlay 境界オーバーレイAPIのレスポンス（取得失敗時はFeaturesが空でWarningsに理由が入る）
type BoundaryOverlay struct {
	SelectedArea string           `json:"selected_area"`
	Features     []StyledBoundary `json:"features"`
	Warnings     []string         `json:"warnings,omitempty"`
}
