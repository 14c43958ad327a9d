package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"CareMap-App/internal/domain/model"
	"CareMap-App/internal/domain/repository"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// 必須カラム（この順でエラーに列挙する）
var requiredColumns = []string{"name", "lat", "lng", "categories"}

// 任意カラムの別名（dong 列は area として扱う）
var columnAliases = map[string]string{
	"dong": "area",
}

// CSVCentersRepository CSVファイルからセンターを読み込むリポジトリ
type CSVCentersRepository struct {
	path string
}

var _ repository.CentersRepository = (*CSVCentersRepository)(nil)

// NewCSVCentersRepository 新しいCSVCentersRepositoryインスタンスを作成
func NewCSVCentersRepository(path string) *CSVCentersRepository {
	return &CSVCentersRepository{path: path}
}

// Name ソース名
func (r *CSVCentersRepository) Name() string {
	return "csv:" + r.path
}

// LoadAll CSVファイル全体を読み込む
func (r *CSVCentersRepository) LoadAll(ctx context.Context) ([]model.Center, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &model.ConfigError{Reason: r.path + " がありません", Err: err}
		}
		return nil, fmt.Errorf("CSVファイルの読み込みに失敗: %w", err)
	}
	return ParseCentersCSV(bytes.NewReader(raw), r.path)
}

// ParseCentersCSV はヘッダー付きCSVをセンターに変換する
// 必須カラムが欠けている場合は *model.MissingColumnsError を返す
func ParseCentersCSV(in io.Reader, source string) ([]model.Center, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("CSVの読み込みに失敗: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &model.ConfigError{Reason: source + " のCSV形式が正しくありません", Err: err}
	}
	if len(rows) == 0 {
		return nil, &model.MissingColumnsError{Source: source, Columns: append([]string(nil), requiredColumns...)}
	}

	index := headerIndex(rows[0])
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &model.MissingColumnsError{Source: source, Columns: missing}
	}

	centers := make([]model.Center, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		cell := func(col string) string {
			idx, ok := index[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		lat, err := strconv.ParseFloat(cell("lat"), 64)
		if err != nil {
			return nil, &model.ConfigError{Reason: fmt.Sprintf("%s %d行目: lat を数値に変換できません (%q)", source, i+1, cell("lat"))}
		}
		lng, err := strconv.ParseFloat(cell("lng"), 64)
		if err != nil {
			return nil, &model.ConfigError{Reason: fmt.Sprintf("%s %d行目: lng を数値に変換できません (%q)", source, i+1, cell("lng"))}
		}

		centers = append(centers, model.Center{
			ID:         cell("id"),
			Name:       cell("name"),
			Lat:        lat,
			Lng:        lng,
			Feature:    cell("feature"),
			Events:     cell("events"),
			Programs:   cell("programs"),
			Categories: cell("categories"),
			Area:       cell("area"),
		})
	}
	return centers, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if alias, ok := columnAliases[name]; ok {
			name = alias
		}
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return index
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
