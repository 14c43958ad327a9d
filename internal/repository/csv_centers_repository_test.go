package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareMap-App/internal/domain/model"
)

const sampleCSV = `name,lat,lng,feature,events,programs,categories,dong
회기 건강센터,37.59,127.055,경로당 연계,건강 걷기대회,"우울증 상담;치매 예방 교실","노인;성인",회기동
전농 돌봄센터,37.578,127.06,,,요가,아동,전농1동
`

func TestParseCentersCSV(t *testing.T) {
	centers, err := ParseCentersCSV(strings.NewReader(sampleCSV), "centers.csv")
	require.NoError(t, err)
	require.Len(t, centers, 2)

	assert.Equal(t, model.Center{
		Name:       "회기 건강센터",
		Lat:        37.59,
		Lng:        127.055,
		Feature:    "경로당 연계",
		Events:     "건강 걷기대회",
		Programs:   "우울증 상담;치매 예방 교실",
		Categories: "노인;성인",
		Area:       "회기동",
	}, centers[0])
	assert.Equal(t, "전농1동", centers[1].Area)
	assert.Equal(t, "", centers[1].Feature)
}

func TestParseCentersCSV_HeaderVariants(t *testing.T) {
	t.Run("BOM付き", func(t *testing.T) {
		in := "\ufeff" + sampleCSV
		centers, err := ParseCentersCSV(strings.NewReader(in), "bom.csv")
		require.NoError(t, err)
		assert.Len(t, centers, 2)
	})

	t.Run("大文字とidカラム", func(t *testing.T) {
		in := "ID,Name,LAT,Lng,Categories,Area\nc-1,가 센터,37.5,127.0,노인,회기동\n"
		centers, err := ParseCentersCSV(strings.NewReader(in), "upper.csv")
		require.NoError(t, err)
		require.Len(t, centers, 1)
		assert.Equal(t, "c-1", centers[0].ID)
		assert.Equal(t, "회기동", centers[0].Area)
	})

	t.Run("空行はスキップ", func(t *testing.T) {
		in := "name,lat,lng,categories\n가,37.5,127.0,노인\n,,,\n나,37.6,127.1,\n"
		centers, err := ParseCentersCSV(strings.NewReader(in), "blank.csv")
		require.NoError(t, err)
		assert.Len(t, centers, 2)
	})

	t.Run("列数が足りない行", func(t *testing.T) {
		in := "name,lat,lng,categories,area\n가,37.5,127.0\n"
		centers, err := ParseCentersCSV(strings.NewReader(in), "short.csv")
		require.NoError(t, err)
		require.Len(t, centers, 1)
		assert.Equal(t, "", centers[0].Categories)
	})
}

func TestParseCentersCSV_MissingColumns(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "latがない",
			in:   "name,lng,categories\n가,127.0,노인\n",
			want: []string{"lat"},
		},
		{
			name: "複数欠落",
			in:   "name,feature\n가,설명\n",
			want: []string{"lat", "lng", "categories"},
		},
		{
			name: "空ファイル",
			in:   "",
			want: []string{"name", "lat", "lng", "categories"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCentersCSV(strings.NewReader(tt.in), "centers.csv")
			require.Error(t, err)

			var missing *model.MissingColumnsError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.want, missing.Columns)
			assert.Equal(t, "centers.csv", missing.Source)
			assert.True(t, model.IsConfigError(err))
		})
	}
}

func TestParseCentersCSV_InvalidCoordinate(t *testing.T) {
	in := "name,lat,lng,categories\n가,북위37,127.0,노인\n"
	_, err := ParseCentersCSV(strings.NewReader(in), "bad.csv")
	require.Error(t, err)
	assert.True(t, model.IsConfigError(err))
	assert.Contains(t, err.Error(), "lat")
}

func TestCSVCentersRepository_LoadAll(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "centers.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	repo := NewCSVCentersRepository(path)
	assert.Equal(t, "csv:"+path, repo.Name())

	centers, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, centers, 2)

	t.Run("ファイルがない", func(t *testing.T) {
		_, err := NewCSVCentersRepository(filepath.Join(dir, "none.csv")).LoadAll(context.Background())
		require.Error(t, err)
		assert.True(t, model.IsConfigError(err))
	})

	t.Run("キャンセル済み", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := repo.LoadAll(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
