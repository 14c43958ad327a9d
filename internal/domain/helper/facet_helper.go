package helper

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"CareMap-App/internal/domain/model"
)

// ExtractFacets は全センターの区切りフィールドからトークンの和集合をソートして返す
func ExtractFacets(centers []model.Center, field model.DelimitedField) ([]string, error) {
	if _, ok := (&model.Center{}).FieldValue(field); !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownField, field)
	}
	tokens := make([]string, 0)
	for i := range centers {
		raw, _ := centers[i].FieldValue(field)
		tokens = append(tokens, model.SplitDelimited(raw)...)
	}
	facets := lo.Uniq(tokens)
	sort.Strings(facets)
	return facets, nil
}

// ExtractAreas は空でない行政洞名の一覧をソートして返す
func ExtractAreas(centers []model.Center) []string {
	areas := lo.Uniq(lo.FilterMap(centers, func(c model.Center, _ int) (string, bool) {
		return c.Area, c.Area != ""
	}))
	sort.Strings(areas)
	return areas
}

// HasAnyFacet はセンターが指定された対象のいずれかを持つかチェックする
func HasAnyFacet(center *model.Center, facets []string) bool {
	catSet := toSet(facets)
	for _, cat := range center.CategoryTokens() {
		if _, ok := catSet[cat]; ok {
			return true
		}
	}
	return false
}

// HasAllFacets はセンターが指定された対象を全て持つかチェックする
func HasAllFacets(center *model.Center, facets []string) bool {
	own := toSet(center.CategoryTokens())
	for _, f := range facets {
		if _, ok := own[f]; !ok {
			return false
		}
	}
	return true
}

// NormalizeFacets は選択ファセットをトリムし、空と重複を取り除く
func NormalizeFacets(facets []string) []string {
	return lo.Uniq(lo.FlatMap(facets, func(f string, _ int) []string {
		return model.SplitDelimited(f)
	}))
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
