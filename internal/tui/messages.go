package tui

import "github.com/Zacy-Sokach/TermCalc/internal/config"

// Message types for tea.Model

// KeyFlashExpiredMsg 键盘面板高亮超时
type KeyFlashExpiredMsg struct{}

// ConfigReloadedMsg 配置文件变化后重新加载完成
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigWatchErrMsg 配置监听出错
type ConfigWatchErrMsg struct {
	Err error
}
