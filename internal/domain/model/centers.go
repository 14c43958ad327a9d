package model

import (
	"strings"

	"github.com/paulmach/orb"
)

// LatLng 緯度経度を表す基本的な型
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Center 健康・ケアセンター1件を表すモデル
// Events / Programs / Categories は ";" 区切りの生文字列のまま保持する
type Center struct {
	ID         string  `json:"id" db:"id" firestore:"id"`                         // 読み込み内で一意なID（未指定時は行番号）
	Name       string  `json:"name" db:"name" firestore:"name"`                   // センター名
	Lat        float64 `json:"lat" db:"lat" firestore:"lat"`                      // 緯度
	Lng        float64 `json:"lng" db:"lng" firestore:"lng"`                      // 経度
	Feature    string  `json:"feature" db:"feature" firestore:"feature"`          // 機能・説明
	Events     string  `json:"events" db:"events" firestore:"events"`             // 行事（";"区切り）
	Programs   string  `json:"programs" db:"programs" firestore:"programs"`       // プログラム（";"区切り）
	Categories string  `json:"categories" db:"categories" firestore:"categories"` // 対象（";"区切り）
	Area       string  `json:"area" db:"area" firestore:"area"`                   // 行政洞名
}

// ToLatLng センターの位置情報をLatLng型に変換
func (c *Center) ToLatLng() LatLng {
	return LatLng{Lat: c.Lat, Lng: c.Lng}
}

// ToPoint orb.Point（経度, 緯度の順）に変換
func (c *Center) ToPoint() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// CategoryTokens 対象カテゴリを正規化済みトークンとして返す
func (c *Center) CategoryTokens() []string {
	return SplitDelimited(c.Categories)
}

// ProgramTokens プログラムを正規化済みトークンとして返す
func (c *Center) ProgramTokens() []string {
	return SplitDelimited(c.Programs)
}

// EventTokens 行事を正規化済みトークンとして返す
func (c *Center) EventTokens() []string {
	return SplitDelimited(c.Events)
}

// FieldValue 区切りフィールド名から生の値を取得する
func (c *Center) FieldValue(field DelimitedField) (string, bool) {
	switch field {
	case FieldCategories:
		return c.Categories, true
	case FieldPrograms:
		return c.Programs, true
	case FieldEvents:
		return c.Events, true
	default:
		return "", false
	}
}

// SplitDelimited ";" で分割し、前後の空白を除去して空トークンを捨てる
// 区切り文字を含まない場合はトリムした値全体が唯一のトークンになる
func SplitDelimited(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, Delimiter)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
