package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher 监听配置文件变化，变化后重新加载并回调
// 监听的是配置目录而不是文件本身：编辑器保存时往往用
// 临时文件替换原文件，直接监听文件会丢失后续事件。
type Watcher struct {
	watcher       *fsnotify.Watcher
	configPath    string
	debounceDelay time.Duration
	onChange      func(*Config)
	onError       func(error)
	done          chan struct{}
}

// NewWatcher 创建配置监听器，回调在监听 goroutine 中执行
func NewWatcher(onChange func(*Config), onError func(error)) (*Watcher, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:       fsw,
		configPath:    configPath,
		debounceDelay: 250 * time.Millisecond,
		onChange:      onChange,
		onError:       onError,
		done:          make(chan struct{}),
	}, nil
}

// Start 开始监听，立即返回
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.configPath)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop 停止监听并释放资源
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(w.configPath) {
				continue
			}

			// 防抖：编辑器一次保存可能触发多个事件
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounceDelay, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadConfig()
	if err != nil {
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	w.onChange(cfg)
}
