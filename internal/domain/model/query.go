package model

import "strings"

// Query ユーザー操作ごとに生成されるフィルタ条件
type Query struct {
	NameSubstring  string    `json:"name,omitempty"`
	SelectedFacets []string  `json:"facets,omitempty"`
	SelectedArea   string    `json:"area,omitempty"`
	FacetMode      FacetMode `json:"mode,omitempty"`
}

// HasNameFilter 名前フィルタが有効かどうか（空白のみは無効）
func (q Query) HasNameFilter() bool {
	return strings.TrimSpace(q.NameSubstring) != ""
}

// HasAreaFilter 行政洞フィルタが有効かどうか
func (q Query) HasAreaFilter() bool {
	return q.SelectedArea != "" && q.SelectedArea != AreaAll
}

// Viewport 地図の初期カメラ位置
type Viewport struct {
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Zoom      int     `json:"zoom"`
}

// Bounds フィルタ結果を囲む矩形（fitBounds用）
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// FilteredView フィルタ結果とビューポート
type FilteredView struct {
	Centers  []Center `json:"centers"`
	Viewport Viewport `json:"viewport"`
	Count    int      `json:"count"`
	Empty    bool     `json:"empty"`
}
