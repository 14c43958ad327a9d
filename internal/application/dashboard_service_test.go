package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"CareMap-App/internal/domain/model"
	"CareMap-App/internal/domain/service"
)

type fakeCentersRepository struct {
	mu      sync.Mutex
	centers []model.Center
	err     error
	calls   int
}

func (f *fakeCentersRepository) LoadAll(ctx context.Context) ([]model.Center, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.centers, nil
}

func (f *fakeCentersRepository) Name() string { return "fake" }

func (f *fakeCentersRepository) set(centers []model.Center, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.centers, f.err = centers, err
}

type fakeBoundaryProvider struct {
	data *model.BoundaryData
	err  error
}

func (f *fakeBoundaryProvider) Fetch(ctx context.Context) (*model.BoundaryData, error) {
	return f.data, f.err
}

func testCenters() []model.Center {
	return []model.Center{
		{ID: "a", Name: "A center", Categories: "노인", Programs: "우울증 상담", Area: "회기동", Lat: 37.58, Lng: 127.05},
		{ID: "b", Name: "B center", Categories: "청소년", Programs: "요가", Area: "전농1동", Lat: 37.60, Lng: 127.07},
	}
}

func newTestService(t *testing.T, boundaries *fakeBoundaryProvider) (DashboardService, *fakeCentersRepository) {
	t.Helper()
	repo := &fakeCentersRepository{centers: testCenters()}
	var svc DashboardService
	if boundaries == nil {
		svc = NewDashboardService(repo, nil, service.DefaultViewportOptions(), zap.NewNop())
	} else {
		svc = NewDashboardService(repo, boundaries, service.DefaultViewportOptions(), zap.NewNop())
	}
	return svc, repo
}

func TestDashboardService_NotLoaded(t *testing.T) {
	svc, _ := newTestService(t, nil)

	assert.Nil(t, svc.Snapshot())
	_, err := svc.Search(context.Background(), model.Query{})
	assert.ErrorIs(t, err, model.ErrNoSnapshot)
	_, err = svc.Areas()
	assert.ErrorIs(t, err, model.ErrNoSnapshot)
	_, err = svc.Facets(model.FieldCategories)
	assert.ErrorIs(t, err, model.ErrNoSnapshot)
	_, err = svc.Programs("")
	assert.ErrorIs(t, err, model.ErrNoSnapshot)
}

func TestDashboardService_Search(t *testing.T) {
	svc, _ := newTestService(t, nil)
	require.NoError(t, svc.Reload(context.Background()))

	t.Run("対象で絞り込み", func(t *testing.T) {
		view, err := svc.Search(context.Background(), model.Query{SelectedFacets: []string{"노인"}})
		require.NoError(t, err)

		assert.Equal(t, 1, view.Count)
		assert.False(t, view.Empty)
		require.Len(t, view.Markers, 1)
		assert.Equal(t, "a", view.Markers[0].ID)
		assert.InDelta(t, 37.58, view.Viewport.CenterLat, 1e-9)
		assert.InDelta(t, 127.05, view.Viewport.CenterLng, 1e-9)
		assert.Equal(t, model.FacetModeAny, view.Query.FacetMode)
		require.NotNil(t, view.Bounds)
	})

	t.Run("該当なし", func(t *testing.T) {
		view, err := svc.Search(context.Background(), model.Query{NameSubstring: "Z"})
		require.NoError(t, err)

		assert.True(t, view.Empty)
		assert.Empty(t, view.Markers)
		assert.Nil(t, view.Bounds)
		assert.Equal(t, model.Viewport{CenterLat: 37.574360, CenterLng: 127.039530, Zoom: 13}, view.Viewport)
	})

	t.Run("キャンセル済み", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.Search(ctx, model.Query{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDashboardService_Lists(t *testing.T) {
	svc, _ := newTestService(t, nil)
	require.NoError(t, svc.Reload(context.Background()))

	facets, err := svc.Facets(model.FieldCategories)
	require.NoError(t, err)
	assert.Equal(t, []string{"노인", "청소년"}, facets)

	_, err = svc.Facets("phone")
	assert.ErrorIs(t, err, model.ErrUnknownField)

	areas, err := svc.Areas()
	require.NoError(t, err)
	assert.Equal(t, []string{"전농1동", "회기동"}, areas)

	programs, err := svc.Programs("노인")
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, []string{"#노인", "#상담", "#정신건강"}, programs[0].Tags)
}

func TestDashboardService_ReloadKeepsPreviousSnapshot(t *testing.T) {
	svc, repo := newTestService(t, nil)
	require.NoError(t, svc.Reload(context.Background()))
	before := svc.Snapshot()

	repo.set(nil, &model.MissingColumnsError{Source: "centers.csv", Columns: []string{"lat"}})
	err := svc.Reload(context.Background())
	require.Error(t, err)
	assert.True(t, model.IsConfigError(err))
	assert.Same(t, before, svc.Snapshot())

	repo.set([]model.Center{{ID: "x", Name: "", Lat: 37.5, Lng: 127.0}}, nil)
	require.Error(t, svc.Reload(context.Background()))
	assert.Same(t, before, svc.Snapshot())

	repo.set(testCenters()[:1], nil)
	require.NoError(t, svc.Reload(context.Background()))
	assert.Equal(t, 1, svc.Snapshot().Len())
}

func TestDashboardService_Boundaries(t *testing.T) {
	t.Run("無効時は空", func(t *testing.T) {
		svc, _ := newTestService(t, nil)
		overlay := svc.Boundaries(context.Background(), "회기동")
		assert.Empty(t, overlay.Features)
		assert.Empty(t, overlay.Warnings)
	})

	t.Run("取得失敗は警告", func(t *testing.T) {
		svc, _ := newTestService(t, &fakeBoundaryProvider{err: errors.New("timeout")})
		overlay := svc.Boundaries(context.Background(), "회기동")

		assert.Equal(t, "회기동", overlay.SelectedArea)
		assert.NotNil(t, overlay.Features)
		assert.Empty(t, overlay.Features)
		require.Len(t, overlay.Warnings, 1)
		assert.Contains(t, overlay.Warnings[0], "timeout")
	})

	t.Run("成功時はスタイル付き", func(t *testing.T) {
		svc, _ := newTestService(t, &fakeBoundaryProvider{data: &model.BoundaryData{}})
		overlay := svc.Boundaries(context.Background(), "회기동")
		assert.Empty(t, overlay.Warnings)
	})
}

func TestDashboardService_ConcurrentSearchAndReload(t *testing.T) {
	svc, _ := newTestService(t, nil)
	require.NoError(t, svc.Reload(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.Search(context.Background(), model.Query{SelectedFacets: []string{"노인"}})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.Reload(context.Background()))
		}()
	}
	wg.Wait()
}
