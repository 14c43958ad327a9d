package model

// Delimiter 複数値フィールドの区切り文字
const Delimiter = ";"

// AreaAll 行政洞フィルタを適用しないことを示すセンチネル
const AreaAll = "전체"

// DelimitedField ファセット抽出の対象となる区切りフィールド名
type DelimitedField string

const (
	FieldCategories DelimitedField = "categories"
	FieldPrograms   DelimitedField = "programs"
	FieldEvents     DelimitedField = "events"
)

// FacetMode 複数ファセット選択時の結合方法
type FacetMode string

const (
	// FacetModeAny 選択したいずれかの対象に該当すれば残す（既定）
	FacetModeAny FacetMode = "any"
	// FacetModeAll 選択した全ての対象に該当する場合のみ残す
	FacetModeAll FacetMode = "all"
)

// ParseFacetMode 文字列からFacetModeを取得する（不明な値は既定のany）
func ParseFacetMode(s string) FacetMode {
	if FacetMode(s) == FacetModeAll {
		return FacetModeAll
	}
	return FacetModeAny
}

// 地図の既定値（동대문구 중심）
const (
	DefaultCenterLat       = 37.574360
	DefaultCenterLng       = 127.039530
	DefaultZoom            = 13
	DefaultFocusedZoom     = 15
	DefaultFocusThreshold  = 3
	DefaultClusterRadiusKm = 0.5
)

// KeywordGroup プログラム名からタグを導出するためのキーワード群
type KeywordGroup struct {
	Tag      string
	Keywords []string
}

// ProgramKeywordGroups プログラム名に対するタグ付けルール
var ProgramKeywordGroups = []KeywordGroup{
	{Tag: "#예방", Keywords: []string{"예방", "검진", "접종", "금연", "절주"}},
	{Tag: "#정신건강", Keywords: []string{"우울", "스트레스", "마음", "정신", "불안", "자살"}},
	{Tag: "#운동", Keywords: []string{"운동", "체조", "걷기", "요가", "스트레칭", "필라테스"}},
	{Tag: "#영양", Keywords: []string{"영양", "식단", "요리", "식생활"}},
	{Tag: "#상담", Keywords: []string{"상담", "코칭", "멘토"}},
	{Tag: "#치매", Keywords: []string{"치매", "인지", "기억"}},
}

// 境界オーバーレイのスタイル
const (
	HighlightColor   = "#0055FF"
	DefaultFillColor = "#ffffff"
	DefaultLineColor = "#999999"
)
