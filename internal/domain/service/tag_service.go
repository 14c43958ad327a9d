package service

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"CareMap-App/internal/domain/model"
)

// TagProgram はプログラム名と対象カテゴリから表示用タグを導出する
// 結果は "#"+対象 とキーワード群に一致したタグの和集合（重複なし・ソート済み）
func TagProgram(programName, category string) []string {
	return tagWithGroups(programName, category, model.ProgramKeywordGroups)
}

func tagWithGroups(programName, category string, groups []model.KeywordGroup) []string {
	tags := make([]string, 0, len(groups)+1)
	if c := strings.TrimSpace(category); c != "" {
		tags = append(tags, "#"+c)
	}
	for _, g := range groups {
		if lo.SomeBy(g.Keywords, func(k string) bool { return strings.Contains(programName, k) }) {
			tags = append(tags, g.Tag)
		}
	}
	tags = lo.Uniq(tags)
	sort.Strings(tags)
	return tags
}

// BuildPrograms はセンター群からプログラム一覧を作る
// センターの対象が複数ある場合は対象ごとに1件ずつ展開する
func BuildPrograms(centers []model.Center) []model.Program {
	programs := make([]model.Program, 0)
	for i := range centers {
		c := &centers[i]
		categories := c.CategoryTokens()
		if len(categories) == 0 {
			categories = []string{""}
		}
		for _, name := range c.ProgramTokens() {
			for _, cat := range categories {
				programs = append(programs, model.Program{
					Name:       name,
					Category:   cat,
					CenterID:   c.ID,
					CenterName: c.Name,
					Tags:       TagProgram(name, cat),
				})
			}
		}
	}
	return programs
}

// FilterProgramsByCategory は対象カテゴリでプログラムを絞り込む（空・전체は全件）
func FilterProgramsByCategory(programs []model.Program, category string) []model.Program {
	category = strings.TrimSpace(category)
	if category == "" || category == model.AreaAll {
		return programs
	}
	return lo.Filter(programs, func(p model.Program, _ int) bool {
		return p.Category == category
	})
}
