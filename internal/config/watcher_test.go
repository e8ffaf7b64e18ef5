package config

import (
	"testing"
	"time"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	setTempConfigHome(t)

	if err := SaveConfig(DefaultConfig()); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// 修改配置文件，应在防抖后触发重新加载
	changed := DefaultConfig()
	changed.Theme.ErrorFg = "196"
	changed.HideKeypad = true
	if err := SaveConfig(changed); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Theme.ErrorFg != "196" {
			t.Errorf("Reloaded config should carry new color, got %q", cfg.Theme.ErrorFg)
		}
		if !cfg.HideKeypad {
			t.Error("Reloaded config should carry hide_keypad")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for config reload")
	}
}

func TestWatcherStop(t *testing.T) {
	setTempConfigHome(t)

	w, err := NewWatcher(func(*Config) {}, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := w.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}
