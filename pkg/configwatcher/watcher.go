package configwatcher

import (
	"context"
	"course_builder_backend/pkg/logger"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDebounce = time.Second

// Reloader 在被监视的文件变化后调用
type Reloader func() error

// Watch 监视文件或目录，写入/创建/重命名事件经防抖后触发 reload。
// 阻塞直到 ctx 取消或 watcher 关闭。
func Watch(ctx context.Context, path string, debounce time.Duration, reload Reloader) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if err := watcher.Add(absPath); err != nil {
		return err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&relevant != 0 {
				// 防抖处理
				timer.Reset(debounce)
			}
		case <-timer.C:
			if err := reload(); err != nil {
				logger.Log.Error("Failed to reload watched files", zap.String("path", absPath), zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("File watcher error", zap.Error(err))
		}
	}
}
