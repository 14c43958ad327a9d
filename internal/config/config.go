package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"CareMap-App/internal/domain/helper"
	"CareMap-App/internal/domain/model"
)

// センターデータの読み込み元
const (
	SourceCSV       = "csv"
	SourcePostgres  = "postgres"
	SourceSupabase  = "supabase"
	SourceFirestore = "firestore"
)

// 既定の行政洞境界GeoJSON（서울특별시）
const DefaultBoundaryURL = "https://raw.githubusercontent.com/vuski/admdongkor/main/geojson/행정동_시군구별/서울특별시.geojson"

// Config アプリケーション設定
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Source   SourceConfig   `yaml:"source"`
	Map      MapConfig      `yaml:"map"`
	Boundary BoundaryConfig `yaml:"boundary"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig HTTPサーバー設定
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// SourceConfig センターデータ読み込み設定
type SourceConfig struct {
	Kind       string `yaml:"kind"`
	CSVPath    string `yaml:"csv_path"`
	Watch      bool   `yaml:"watch"`
	Table      string `yaml:"table"`
	ProjectID  string `yaml:"project_id"`
	Collection string `yaml:"collection"`
}

// MapConfig 地図ビューポート設定
type MapConfig struct {
	DefaultLat      float64 `yaml:"default_lat"`
	DefaultLng      float64 `yaml:"default_lng"`
	DefaultZoom     int     `yaml:"default_zoom"`
	FocusedZoom     int     `yaml:"focused_zoom"`
	FocusThreshold  int     `yaml:"focus_threshold"`
	ClusterRadiusKm float64 `yaml:"cluster_radius_km"`
}

// BoundaryConfig 行政洞境界オーバーレイ設定
type BoundaryConfig struct {
	Enabled  bool          `yaml:"enabled"`
	URL      string        `yaml:"url"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// RedisConfig 境界キャッシュ用Redis設定（Addrが空ならメモリキャッシュ）
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LogConfig ログ設定
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load 設定を読み込む（.env → 環境変数 → CONFIG_FILE の順で上書き）
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnv("SERVER_ADDR", ":8080"),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Source: SourceConfig{
			Kind:       strings.ToLower(getEnv("CENTERS_SOURCE", SourceCSV)),
			CSVPath:    getEnv("CENTERS_CSV", "centers.csv"),
			Watch:      getEnvBool("CENTERS_WATCH", false),
			Table:      getEnv("CENTERS_TABLE", "centers"),
			ProjectID:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
			Collection: getEnv("CENTERS_COLLECTION", "centers"),
		},
		Map: MapConfig{
			DefaultLat:      getEnvFloat("MAP_DEFAULT_LAT", model.DefaultCenterLat),
			DefaultLng:      getEnvFloat("MAP_DEFAULT_LNG", model.DefaultCenterLng),
			DefaultZoom:     getEnvInt("MAP_DEFAULT_ZOOM", model.DefaultZoom),
			FocusedZoom:     getEnvInt("MAP_FOCUSED_ZOOM", model.DefaultFocusedZoom),
			FocusThreshold:  getEnvInt("MAP_FOCUS_THRESHOLD", model.DefaultFocusThreshold),
			ClusterRadiusKm: getEnvFloat("MAP_CLUSTER_RADIUS_KM", model.DefaultClusterRadiusKm),
		},
		Boundary: BoundaryConfig{
			Enabled:  getEnvBool("BOUNDARY_ENABLED", true),
			URL:      getEnv("BOUNDARY_URL", DefaultBoundaryURL),
			Timeout:  getEnvDuration("BOUNDARY_TIMEOUT", 5*time.Second),
			CacheTTL: getEnvDuration("BOUNDARY_CACHE_TTL", 6*time.Hour),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile YAMLファイルの値で上書きする（ファイルに書かれた項目のみ）
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &model.ConfigError{Reason: "設定ファイルを読み込めません: " + path, Err: err}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &model.ConfigError{Reason: "設定ファイルの形式が正しくありません: " + path, Err: err}
	}
	c.Source.Kind = strings.ToLower(c.Source.Kind)
	return nil
}

// Validate 起動前に致命的な設定不備を検出する
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceCSV:
		if c.Source.CSVPath == "" {
			return &model.ConfigError{Reason: "CENTERS_CSV が設定されていません"}
		}
	case SourcePostgres, SourceSupabase:
		if c.Source.Table == "" {
			return &model.ConfigError{Reason: "CENTERS_TABLE が設定されていません"}
		}
	case SourceFirestore:
		if c.Source.ProjectID == "" {
			return &model.ConfigError{Reason: "GOOGLE_CLOUD_PROJECT が設定されていません"}
		}
	default:
		return &model.ConfigError{Reason: fmt.Sprintf("不明な CENTERS_SOURCE です: %q", c.Source.Kind)}
	}
	if !helper.IsValidCoordinate(c.Map.DefaultLat, c.Map.DefaultLng) {
		return &model.ConfigError{Reason: fmt.Sprintf("MAP_DEFAULT_LAT / MAP_DEFAULT_LNG が不正です (%v, %v)", c.Map.DefaultLat, c.Map.DefaultLng)}
	}
	if c.Map.FocusedZoom < c.Map.DefaultZoom {
		return &model.ConfigError{Reason: "MAP_FOCUSED_ZOOM は MAP_DEFAULT_ZOOM 以上である必要があります"}
	}
	if c.Boundary.Enabled && c.Boundary.Timeout <= 0 {
		return &model.ConfigError{Reason: "BOUNDARY_TIMEOUT は正の値である必要があります"}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}
