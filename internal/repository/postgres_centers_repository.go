package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"CareMap-App/internal/domain/model"
	"CareMap-App/internal/domain/repository"
	"CareMap-App/internal/infrastructure/database"
)

// PostgresCentersRepository PostGISテーブルからセンターを読み込む（SELECTのみ）
type PostgresCentersRepository struct {
	client *database.PostgreSQLClient
	table  string
}

var _ repository.CentersRepository = (*PostgresCentersRepository)(nil)

func NewPostgresCentersRepository(client *database.PostgreSQLClient, table string) *PostgresCentersRepository {
	return &PostgresCentersRepository{
		client: client,
		table:  table,
	}
}

// Name ソース名
func (r *PostgresCentersRepository) Name() string {
	return "postgres:" + r.table
}

// centerRow NULL許容カラムを受け取るための構造体
type centerRow struct {
	ID         string
	Name       string
	Location   string
	Feature    sql.NullString
	Events     sql.NullString
	Programs   sql.NullString
	Categories sql.NullString
	Area       sql.NullString
}

// ToCenter centerRowをmodel.Centerに変換
func (cr *centerRow) ToCenter() (model.Center, error) {
	pos, err := LatLngFromWKT(cr.Location)
	if err != nil {
		return model.Center{}, fmt.Errorf("センター %s の位置情報が不正です: %w", cr.ID, err)
	}
	return model.Center{
		ID:         cr.ID,
		Name:       cr.Name,
		Lat:        pos.Lat,
		Lng:        pos.Lng,
		Feature:    cr.Feature.String,
		Events:     cr.Events.String,
		Programs:   cr.Programs.String,
		Categories: cr.Categories.String,
		Area:       cr.Area.String,
	}, nil
}

func (r *PostgresCentersRepository) LoadAll(ctx context.Context) ([]model.Center, error) {
	query := fmt.Sprintf(`
		SELECT id::text, name, ST_AsText(location), feature, events, programs, categories, area
		FROM %s
		ORDER BY id`, pq.QuoteIdentifier(r.table))

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("センターデータ取得失敗: %w", err)
	}
	defer rows.Close()

	var centers []model.Center
	for rows.Next() {
		var row centerRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Location, &row.Feature,
			&row.Events, &row.Programs, &row.Categories, &row.Area); err != nil {
			return nil, fmt.Errorf("センターデータスキャンエラー: %w", err)
		}
		center, err := row.ToCenter()
		if err != nil {
			return nil, err
		}
		centers = append(centers, center)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("センターデータ取得失敗: %w", err)
	}
	return centers, nil
}
