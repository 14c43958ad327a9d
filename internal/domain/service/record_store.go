package service

import (
	"fmt"
	"strings"
	"time"

	"CareMap-App/internal/domain/helper"
	"CareMap-App/internal/domain/model"
)

// RecordStore 読み込み済みセンターの不変スナップショット
// 生成後は変更されないため、複数リクエストからロックなしで共有できる
type RecordStore struct {
	centers       []model.Center
	facets        []string
	programFacets []string
	eventFacets   []string
	areas         []string
	programs      []model.Program
	loadedAt      time.Time
}

// NewRecordStore は不変条件を検証してスナップショットを作成する
func NewRecordStore(centers []model.Center) (*RecordStore, error) {
	copied := make([]model.Center, len(centers))
	copy(copied, centers)

	seen := make(map[string]int, len(copied))
	for i := range copied {
		c := &copied[i]
		c.Name = strings.TrimSpace(c.Name)
		if c.ID == "" {
			c.ID = fmt.Sprintf("row-%d", i+1)
		}
		if c.Name == "" {
			return nil, &model.ConfigError{Reason: fmt.Sprintf("%d行目: name が空です", i+1)}
		}
		if !helper.IsValidCoordinate(c.Lat, c.Lng) {
			return nil, &model.ConfigError{Reason: fmt.Sprintf("%d行目 (%s): 緯度経度が不正です (%v, %v)", i+1, c.Name, c.Lat, c.Lng)}
		}
		if prev, dup := seen[c.ID]; dup {
			return nil, &model.ConfigError{Reason: fmt.Sprintf("ID %s が重複しています (%d行目と%d行目)", c.ID, prev+1, i+1)}
		}
		seen[c.ID] = i
	}

	facets, err := helper.ExtractFacets(copied, model.FieldCategories)
	if err != nil {
		return nil, err
	}
	programFacets, err := helper.ExtractFacets(copied, model.FieldPrograms)
	if err != nil {
		return nil, err
	}
	eventFacets, err := helper.ExtractFacets(copied, model.FieldEvents)
	if err != nil {
		return nil, err
	}

	return &RecordStore{
		centers:       copied,
		facets:        facets,
		programFacets: programFacets,
		eventFacets:   eventFacets,
		areas:         helper.ExtractAreas(copied),
		programs:      BuildPrograms(copied),
		loadedAt:      time.Now(),
	}, nil
}

// Centers はスナップショットのコピーを返す
func (s *RecordStore) Centers() []model.Center {
	out := make([]model.Center, len(s.centers))
	copy(out, s.centers)
	return out
}

// Len はセンター件数
func (s *RecordStore) Len() int {
	return len(s.centers)
}

// LoadedAt はスナップショット作成時刻
func (s *RecordStore) LoadedAt() time.Time {
	return s.loadedAt
}

// Facets は対象カテゴリの一覧
func (s *RecordStore) Facets() []string {
	return cloneStrings(s.facets)
}

// ProgramFacets はプログラム名の一覧
func (s *RecordStore) ProgramFacets() []string {
	return cloneStrings(s.programFacets)
}

// FacetsFor は指定フィールドのファセット一覧
func (s *RecordStore) FacetsFor(field model.DelimitedField) ([]string, error) {
	switch field {
	case model.FieldCategories:
		return cloneStrings(s.facets), nil
	case model.FieldPrograms:
		return s.ProgramFacets(), nil
	case model.FieldEvents:
		return cloneStrings(s.eventFacets), nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownField, field)
	}
}

// Areas は行政洞の一覧
func (s *RecordStore) Areas() []string {
	return cloneStrings(s.areas)
}

// Programs はタグ付け済みプログラム一覧
func (s *RecordStore) Programs() []model.Program {
	out := make([]model.Program, len(s.programs))
	copy(out, s.programs)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
