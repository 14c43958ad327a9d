package application

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadWatcher はCSVファイルの変更を監視し、デバウンス後にスナップショットを再読み込みする
// 再読み込みに失敗した場合は直前のスナップショットを維持する
type ReloadWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	reloader interface{ Reload(ctx context.Context) error }
	debounce time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	reloads int
}

// NewReloadWatcher はファイルを含むディレクトリを監視する（エディタの rename 保存に対応するため）
func NewReloadWatcher(path string, reloader interface{ Reload(ctx context.Context) error }, debounce time.Duration, log *zap.Logger) (*ReloadWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("ファイル監視の初期化に失敗: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("パスの解決に失敗: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("ディレクトリの監視に失敗 (%s): %w", filepath.Dir(abs), err)
	}
	return &ReloadWatcher{
		watcher:  watcher,
		path:     abs,
		reloader: reloader,
		debounce: debounce,
		log:      log,
	}, nil
}

// Run は ctx がキャンセルされるまでイベントを処理する（ブロッキング）
func (w *ReloadWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("centers file changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watcher error", zap.Error(err))

		case <-timer.C:
			if err := w.reloader.Reload(ctx); err != nil {
				w.log.Warn("reload failed, keeping previous snapshot", zap.Error(err))
				continue
			}
			w.mu.Lock()
			w.reloads++
			w.mu.Unlock()
		}
	}
}

// Reloads 成功した再読み込み回数
func (w *ReloadWatcher) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}
