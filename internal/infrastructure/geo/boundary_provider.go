package geo

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"CareMap-App/internal/domain/model"
	"CareMap-App/internal/domain/repository"
	"CareMap-App/internal/metrics"
)

// 境界GeoJSONの最大サイズ
const maxBoundaryBytes = 64 << 20

// HTTPBoundaryProvider はリモートのGeoJSONから行政洞境界を取得する
// リトライは行わず、1回のリクエストをタイムアウト付きで実行する
type HTTPBoundaryProvider struct {
	url        string
	httpClient *http.Client
	cache      repository.BoundaryCache
	log        *zap.Logger
}

// NewHTTPBoundaryProvider は新しいプロバイダを生成する（cache は nil でもよい）
func NewHTTPBoundaryProvider(url string, timeout time.Duration, cache repository.BoundaryCache, log *zap.Logger) *HTTPBoundaryProvider {
	return &HTTPBoundaryProvider{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		log:        log,
	}
}

// Fetch は境界データを取得する（キャッシュがあればそれを優先）
func (p *HTTPBoundaryProvider) Fetch(ctx context.Context) (*model.BoundaryData, error) {
	key := cacheKey(p.url)
	if p.cache != nil {
		raw, ok, err := p.cache.Get(ctx, key)
		if err != nil {
			p.log.Warn("boundary cache read failed", zap.Error(err))
		} else if ok {
			if data, err := decodeBoundary(raw); err == nil {
				metrics.BoundaryCacheHitsTotal.Inc()
				return data, nil
			}
		}
	}

	raw, err := p.download(ctx)
	if err != nil {
		metrics.BoundaryFetchFailTotal.Inc()
		return nil, err
	}

	data, err := decodeBoundary(raw)
	if err != nil {
		metrics.BoundaryFetchFailTotal.Inc()
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, key, raw); err != nil {
			p.log.Warn("boundary cache write failed", zap.Error(err))
		}
	}
	return data, nil
}

func (p *HTTPBoundaryProvider) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("境界データの取得に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("境界データの取得でエラーステータスが返されました: %s", resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBoundaryBytes))
	if err != nil {
		return nil, fmt.Errorf("境界データの読み込みに失敗: %w", err)
	}
	return raw, nil
}

func decodeBoundary(raw []byte) (*model.BoundaryData, error) {
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("境界GeoJSONのパースに失敗: %w", err)
	}
	return &model.BoundaryData{Collection: fc}, nil
}

func cacheKey(url string) string {
	sum := sha1.Sum([]byte(url))
	return "caremap:boundary:" + hex.EncodeToString(sum[:])
}
