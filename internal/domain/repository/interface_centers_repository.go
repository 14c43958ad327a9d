package repository

import (
	"context"

	"CareMap-App/internal/domain/model"
)

// CentersRepository センターデータの読み込み元（読み取り専用）
type CentersRepository interface {
	// LoadAll 全センターを元の並び順で取得する
	LoadAll(ctx context.Context) ([]model.Center, error)
	// Name ログ表示用のソース名
	Name() string
}
