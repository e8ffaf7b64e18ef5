package utils

import (
	"path/filepath"
	"testing"
)

func TestGetConfigDirCustomHome(t *testing.T) {
	// 自定义配置目录优先级最高
	t.Setenv("TERMCALC_CONFIG_HOME", "/tmp/custom-termcalc")
	t.Setenv("APPDATA", "/tmp/appdata")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir failed: %v", err)
	}
	if dir != "/tmp/custom-termcalc" {
		t.Errorf("Expected custom config home, got %q", dir)
	}
}

func TestGetConfigDirAppData(t *testing.T) {
	t.Setenv("TERMCALC_CONFIG_HOME", "")
	t.Setenv("APPDATA", "/tmp/appdata")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir failed: %v", err)
	}
	if dir != filepath.Join("/tmp/appdata", "termcalc") {
		t.Errorf("Expected APPDATA based dir, got %q", dir)
	}
}

func TestGetConfigDirXDG(t *testing.T) {
	t.Setenv("TERMCALC_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir failed: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "termcalc") {
		t.Errorf("Expected XDG based dir, got %q", dir)
	}
}

func TestGetConfigDirHomeFallback(t *testing.T) {
	t.Setenv("TERMCALC_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir failed: %v", err)
	}
	if dir != filepath.Join(tmp, ".config", "termcalc") {
		t.Errorf("Expected home based dir, got %q", dir)
	}
}
