package repository

import (
	"context"

	"CareMap-App/internal/domain/model"
)

// BoundaryProvider 行政洞境界の取得元
// 取得失敗はエラーで返し、呼び出し側はオーバーレイなしで描画を続ける
type BoundaryProvider interface {
	Fetch(ctx context.Context) (*model.BoundaryData, error)
}

// BoundaryCache 境界GeoJSONの生データキャッシュ
type BoundaryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
