package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownField ファセット抽出の対象外フィールド
	ErrUnknownField = errors.New("unknown delimited field")
	// ErrNoSnapshot センターデータが未読み込み
	ErrNoSnapshot = errors.New("center snapshot is not loaded")
	// ErrInvalidSignup 申込フォームの入力不備
	ErrInvalidSignup = errors.New("invalid signup request")
)

// MissingColumnsError 必須カラムが欠けているデータソース（設定エラー）
type MissingColumnsError struct {
	Source  string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s に必須カラムがありません: %s", e.Source, strings.Join(e.Columns, ", "))
}

// ConfigError セッションを継続できない設定エラー
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("設定エラー: %s: %v", e.Reason, e.Err)
	}
	return "設定エラー: " + e.Reason
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError 設定エラー（致命的）かどうか
func IsConfigError(err error) bool {
	var missing *MissingColumnsError
	var cfg *ConfigError
	return errors.As(err, &missing) || errors.As(err, &cfg)
}
