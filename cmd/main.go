package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"CareMap-App/internal/application"
	"CareMap-App/internal/config"
	"CareMap-App/internal/domain/model"
	domainrepo "CareMap-App/internal/domain/repository"
	"CareMap-App/internal/domain/service"
	"CareMap-App/internal/handler"
	"CareMap-App/internal/infrastructure/cache"
	"CareMap-App/internal/infrastructure/database"
	"CareMap-App/internal/infrastructure/firestore"
	"CareMap-App/internal/infrastructure/geo"
	"CareMap-App/internal/logger"
	"CareMap-App/internal/repository"
	"CareMap-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❗ %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped with error", zap.Error(err))
	}
	log.Info("server exited")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	centersRepo, closeRepo, err := newCentersRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	boundaries, closeBoundaries := newBoundaryProvider(ctx, cfg, log)
	defer closeBoundaries()

	viewport := service.ViewportOptions{
		DefaultCenter:   model.LatLng{Lat: cfg.Map.DefaultLat, Lng: cfg.Map.DefaultLng},
		DefaultZoom:     cfg.Map.DefaultZoom,
		FocusedZoom:     cfg.Map.FocusedZoom,
		FocusThreshold:  cfg.Map.FocusThreshold,
		ClusterRadiusKm: cfg.Map.ClusterRadiusKm,
	}
	dashboard := application.NewDashboardService(centersRepo, boundaries, viewport, log)

	// 必須カラム欠落などの設定エラーはここで起動を止める
	if err := dashboard.Reload(ctx); err != nil {
		return err
	}

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := handler.NewRouter(dashboard, usecase.NewProgramSignupUseCase(), log)
	if err != nil {
		return fmt.Errorf("テンプレートの読み込みに失敗: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.Source.Kind == config.SourceCSV && cfg.Source.Watch {
		watcher, err := application.NewReloadWatcher(cfg.Source.CSVPath, dashboard, 500*time.Millisecond, log)
		if err != nil {
			log.Warn("hot reload disabled", zap.Error(err))
		} else {
			log.Info("watching centers file", zap.String("path", cfg.Source.CSVPath))
			g.Go(func() error { return watcher.Run(gctx) })
		}
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newCentersRepository は CENTERS_SOURCE に応じた読み込み元を作成する
func newCentersRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (domainrepo.CentersRepository, func(), error) {
	noop := func() {}
	switch cfg.Source.Kind {
	case config.SourcePostgres:
		client, err := database.NewPostgreSQLClient(ctx)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewPostgresCentersRepository(client, cfg.Source.Table), func() { client.Close() }, nil
	case config.SourceSupabase:
		client, err := database.NewSupabaseClient()
		if err != nil {
			return nil, noop, err
		}
		return repository.NewSupabaseCentersRepository(client, cfg.Source.Table), noop, nil
	case config.SourceFirestore:
		client, err := firestore.NewFirestoreClient(ctx, cfg.Source.ProjectID, log)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewFirestoreCentersRepository(client.GetClient(), cfg.Source.Collection), func() { client.Close() }, nil
	default:
		return repository.NewCSVCentersRepository(cfg.Source.CSVPath), noop, nil
	}
}

// newBoundaryProvider は境界オーバーレイの取得元を作成する
// Redis に接続できない場合はメモリキャッシュで続行する
func newBoundaryProvider(ctx context.Context, cfg *config.Config, log *zap.Logger) (domainrepo.BoundaryProvider, func()) {
	if !cfg.Boundary.Enabled {
		return nil, func() {}
	}

	var boundaryCache domainrepo.BoundaryCache = repository.NewMemoryBoundaryCache(cfg.Boundary.CacheTTL)
	closeFn := func() {}
	if cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("redis unavailable, using in-memory boundary cache", zap.Error(err))
		} else {
			boundaryCache = repository.NewRedisBoundaryCache(client, cfg.Boundary.CacheTTL)
			closeFn = func() { client.Close() }
		}
	}

	return geo.NewHTTPBoundaryProvider(cfg.Boundary.URL, cfg.Boundary.Timeout, boundaryCache, log), closeFn
}
