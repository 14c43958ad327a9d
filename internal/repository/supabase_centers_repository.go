package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"CareMap-App/internal/domain/model"
	"CareMap-App/internal/domain/repository"
	"CareMap-App/internal/infrastructure/database"
)

const centerColumns = "id,name,lat,lng,feature,events,programs,categories,area"

type SupabaseCentersRepository struct {
	client *database.SupabaseClient
	table  string
}

var _ repository.CentersRepository = (*SupabaseCentersRepository)(nil)

func NewSupabaseCentersRepository(client *database.SupabaseClient, table string) *SupabaseCentersRepository {
	return &SupabaseCentersRepository{
		client: client,
		table:  table,
	}
}

// Name ソース名
func (r *SupabaseCentersRepository) Name() string {
	return "supabase:" + r.table
}

// supabaseCenter PostgRESTのレスポンス（NULLはnilで返る）
// id は数値・文字列どちらのカラム型でも受け付ける
type supabaseCenter struct {
	ID         json.RawMessage `json:"id"`
	Name       string          `json:"name"`
	Lat        *float64        `json:"lat"`
	Lng        *float64        `json:"lng"`
	Feature    *string         `json:"feature"`
	Events     *string         `json:"events"`
	Programs   *string         `json:"programs"`
	Categories *string         `json:"categories"`
	Area       *string         `json:"area"`
}

func (r *SupabaseCentersRepository) LoadAll(ctx context.Context) ([]model.Center, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := r.client.SelectOrdered(r.table, centerColumns, "id")
	if err != nil {
		return nil, fmt.Errorf("センターデータの取得失敗: %w", err)
	}
	return decodeSupabaseCenters(data, r.Name())
}

// decodeSupabaseCenters PostgRESTのJSON配列をセンターに変換する
// lat / lng が NULL の行は設定エラーとする
func decodeSupabaseCenters(data []byte, source string) ([]model.Center, error) {
	var rows []supabaseCenter
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("センターデータのJSONアンマーシャル失敗: %w", err)
	}

	centers := make([]model.Center, 0, len(rows))
	for i := range rows {
		center, err := rows[i].toCenter()
		if err != nil {
			return nil, &model.ConfigError{Reason: fmt.Sprintf("%s %d件目", source, i+1), Err: err}
		}
		centers = append(centers, center)
	}
	return centers, nil
}

func (row *supabaseCenter) toCenter() (model.Center, error) {
	id, err := rawID(row.ID)
	if err != nil {
		return model.Center{}, err
	}
	if row.Lat == nil || row.Lng == nil {
		return model.Center{}, fmt.Errorf("センター %q の lat/lng がありません", row.Name)
	}
	return model.Center{
		ID:         id,
		Name:       row.Name,
		Lat:        *row.Lat,
		Lng:        *row.Lng,
		Feature:    deref(row.Feature),
		Events:     deref(row.Events),
		Programs:   deref(row.Programs),
		Categories: deref(row.Categories),
		Area:       deref(row.Area),
	}, nil
}

// rawID 数値・文字列のidを文字列に変換する（NULLは空文字で行番号が割り当てられる）
func rawID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("id の形式が正しくありません: %w", err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("id の形式が正しくありません: %w", err)
	}
	return n.String(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
