package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareMap-App/internal/domain/model"
)

func TestTagProgram(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		category string
		want     []string
	}{
		{
			name:     "우울증 상담",
			program:  "우울증 상담",
			category: "성인",
			want:     []string{"#상담", "#성인", "#정신건강"},
		},
		{
			name:     "複数グループに一致",
			program:  "치매 예방 체조",
			category: "노인",
			want:     []string{"#노인", "#예방", "#운동", "#치매"},
		},
		{
			name:     "キーワードなし",
			program:  "독서 모임",
			category: "아동",
			want:     []string{"#아동"},
		},
		{
			name:     "対象なし",
			program:  "스트레스 관리",
			category: " ",
			want:     []string{"#정신건강"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TagProgram(tt.program, tt.category))
		})
	}
}

func TestTagProgram_NoDuplicates(t *testing.T) {
	groups := []model.KeywordGroup{
		{Tag: "#상담", Keywords: []string{"상담"}},
		{Tag: "#상담", Keywords: []string{"코칭"}},
	}
	got := tagWithGroups("상담 코칭", "상담", groups)
	assert.Equal(t, []string{"#상담"}, got)
}

func TestBuildPrograms(t *testing.T) {
	centers := []model.Center{
		{ID: "1", Name: "회기 건강센터", Categories: "노인;성인", Programs: "치매 예방 교실;우울증 상담"},
		{ID: "2", Name: "전농 돌봄센터", Categories: "", Programs: "요가"},
		{ID: "3", Name: "빈 센터", Categories: "아동"},
	}

	programs := BuildPrograms(centers)
	require.Len(t, programs, 5)

	assert.Equal(t, model.Program{
		Name:       "치매 예방 교실",
		Category:   "노인",
		CenterID:   "1",
		CenterName: "회기 건강센터",
		Tags:       []string{"#노인", "#예방", "#치매"},
	}, programs[0])
	assert.Equal(t, "성인", programs[1].Category)
	assert.Equal(t, "우울증 상담", programs[2].Name)
	assert.Equal(t, "", programs[4].Category)
	assert.Equal(t, []string{"#운동"}, programs[4].Tags)

	t.Run("対象で絞り込み", func(t *testing.T) {
		got := FilterProgramsByCategory(programs, "성인")
		require.Len(t, got, 2)
		for _, p := range got {
			assert.Equal(t, "성인", p.Category)
		}
	})

	t.Run("전체と空は全件", func(t *testing.T) {
		assert.Len(t, FilterProgramsByCategory(programs, model.AreaAll), 5)
		assert.Len(t, FilterProgramsByCategory(programs, ""), 5)
	})
}
