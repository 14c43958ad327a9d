package application

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"CareMap-App/internal/domain/model"
	"CareMap-App/internal/domain/repository"
	"CareMap-App/internal/domain/service"
	"CareMap-App/internal/metrics"
)

// DashboardService センター検索ダッシュボードのビジネスロジックを提供するサービス
type DashboardService interface {
	// Search クエリでセンターを絞り込み、ビューポートとマーカーを返す
	Search(ctx context.Context, query model.Query) (*model.DashboardView, error)

	// Facets 指定フィールドのファセット一覧を返す
	Facets(field model.DelimitedField) ([]string, error)

	// Areas 行政洞の一覧を返す
	Areas() ([]string, error)

	// Programs 対象カテゴリで絞り込んだプログラム一覧を返す
	Programs(category string) ([]model.Program, error)

	// Boundaries 行政洞境界オーバーレイを返す（取得失敗は警告として返す）
	Boundaries(ctx context.Context, selectedArea string) *model.BoundaryOverlay

	// Reload データソースから再読み込みしてスナップショットを差し替える
	Reload(ctx context.Context) error

	// Snapshot 現在のスナップショット（未読み込みなら nil）
	Snapshot() *service.RecordStore
}

// dashboardServiceImpl DashboardServiceの実装
type dashboardServiceImpl struct {
	centersRepo repository.CentersRepository
	boundaries  repository.BoundaryProvider
	viewport    service.ViewportOptions
	snapshot    atomic.Pointer[service.RecordStore]
	log         *zap.Logger
}

// NewDashboardService DashboardServiceの新しいインスタンスを作成（boundaries は nil で無効）
func NewDashboardService(
	centersRepo repository.CentersRepository,
	boundaries repository.BoundaryProvider,
	viewport service.ViewportOptions,
	log *zap.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		centersRepo: centersRepo,
		boundaries:  boundaries,
		viewport:    viewport,
		log:         log,
	}
}

// Reload 新しいスナップショットを作成し、成功した場合のみ差し替える
func (s *dashboardServiceImpl) Reload(ctx context.Context) error {
	centers, err := s.centersRepo.LoadAll(ctx)
	if err != nil {
		metrics.ReloadsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("センターデータの読み込みに失敗 (%s): %w", s.centersRepo.Name(), err)
	}

	store, err := service.NewRecordStore(centers)
	if err != nil {
		metrics.ReloadsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("センターデータの検証に失敗 (%s): %w", s.centersRepo.Name(), err)
	}

	s.snapshot.Store(store)
	metrics.ReloadsTotal.WithLabelValues("ok").Inc()
	s.log.Info("center snapshot loaded",
		zap.String("source", s.centersRepo.Name()),
		zap.Int("centers", store.Len()),
		zap.Int("facets", len(store.Facets())),
		zap.Int("areas", len(store.Areas())),
	)
	return nil
}

func (s *dashboardServiceImpl) Snapshot() *service.RecordStore {
	return s.snapshot.Load()
}

func (s *dashboardServiceImpl) current() (*service.RecordStore, error) {
	store := s.snapshot.Load()
	if store == nil {
		return nil, model.ErrNoSnapshot
	}
	return store, nil
}

// Search フィルタ → ビューポート → マーカーの順に計算する
func (s *dashboardServiceImpl) Search(ctx context.Context, query model.Query) (*model.DashboardView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	store, err := s.current()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	query.FacetMode = model.ParseFacetMode(string(query.FacetMode))
	view := service.BuildFilteredView(store.Centers(), query, s.viewport)

	metrics.SearchesTotal.Inc()
	metrics.SearchDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000)
	if view.Empty {
		metrics.EmptyResultsTotal.Inc()
	}

	return &model.DashboardView{
		Query:    query,
		Count:    view.Count,
		Empty:    view.Empty,
		Viewport: view.Viewport,
		Bounds:   service.ComputeBounds(view.Centers),
		Markers:  service.BuildMarkers(view.Centers),
	}, nil
}

func (s *dashboardServiceImpl) Facets(field model.DelimitedField) ([]string, error) {
	store, err := s.current()
	if err != nil {
		return nil, err
	}
	return store.FacetsFor(field)
}

func (s *dashboardServiceImpl) Areas() ([]string, error) {
	store, err := s.current()
	if err != nil {
		return nil, err
	}
	return store.Areas(), nil
}

func (s *dashboardServiceImpl) Programs(category string) ([]model.Program, error) {
	store, err := s.current()
	if err != nil {
		return nil, err
	}
	return service.FilterProgramsByCategory(store.Programs(), category), nil
}

// Boundaries 境界取得の失敗はここで吸収し、警告付きの空オーバーレイを返す
func (s *dashboardServiceImpl) Boundaries(ctx context.Context, selectedArea string) *model.BoundaryOverlay {
	overlay := &model.BoundaryOverlay{
		SelectedArea: selectedArea,
		Features:     []model.StyledBoundary{},
	}
	if s.boundaries == nil {
		return overlay
	}

	data, err := s.boundaries.Fetch(ctx)
	if err != nil {
		s.log.Warn("boundary overlay unavailable", zap.Error(err))
		overlay.Warnings = append(overlay.Warnings, "행정동 경계 데이터를 불러오지 못했습니다: "+err.Error())
		return overlay
	}

	overlay.Features = service.StyleBoundaries(data, selectedArea)
	return overlay
}
