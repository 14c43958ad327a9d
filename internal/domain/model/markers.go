package model

// MarkerDetail ポップアップに表示する項目（描画側がマークアップを担当する）
type MarkerDetail struct {
	Feature    string   `json:"feature"`
	Events     []string `json:"events"`
	Programs   []string `json:"programs"`
	Categories []string `json:"categories"`
	Area       string   `json:"area,omitempty"`
}

// MarkerDescriptor 地図描画側へ渡すマーカー1件
type MarkerDescriptor struct {
	ID     string       `json:"id"`
	Lat    float64      `json:"lat"`
	Lng    float64      `json:"lng"`
	Label  string       `json:"label"`
	Detail MarkerDetail `json:"detail"`
}

// DashboardView 検索APIのレスポンス
type DashboardView struct {
	Query    Query              `json:"query"`
	Count    int                `json:"count"`
	Empty    bool               `json:"empty"`
	Viewport Viewport           `json:"viewport"`
	Bounds   *Bounds            `json:"bounds,omitempty"`
	Markers  []MarkerDescriptor `json:"markers"`
}
