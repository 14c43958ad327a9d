package service

import (
	"strings"

	"CareMap-App/internal/domain/helper"
	"CareMap-App/internal/domain/model"
)

// ApplyFilter は名前・対象・行政洞の条件をANDで組み合わせてセンターを絞り込む
// 元の順序を保つ安定フィルタで、該当なしは空スライスを返す（エラーではない）
func ApplyFilter(centers []model.Center, query model.Query) []model.Center {
	name := strings.ToLower(strings.TrimSpace(query.NameSubstring))
	facets := helper.NormalizeFacets(query.SelectedFacets)
	mode := model.ParseFacetMode(string(query.FacetMode))

	filtered := make([]model.Center, 0, len(centers))
	for i := range centers {
		c := &centers[i]
		if name != "" && !strings.Contains(strings.ToLower(c.Name), name) {
			continue
		}
		if len(facets) > 0 && !matchFacets(c, facets, mode) {
			continue
		}
		if query.HasAreaFilter() && c.Area != query.SelectedArea {
			continue
		}
		filtered = append(filtered, *c)
	}
	return filtered
}

func matchFacets(c *model.Center, facets []string, mode model.FacetMode) bool {
	if mode == model.FacetModeAll {
		return helper.HasAllFacets(c, facets)
	}
	return helper.HasAnyFacet(c, facets)
}
