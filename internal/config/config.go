package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Zacy-Sokach/TermCalc/internal/utils"
	"gopkg.in/yaml.v3"
)

// Theme 界面配色，值为 lipgloss 颜色（ANSI 编号或十六进制）
type Theme struct {
	DisplayFg string `yaml:"display_fg"`
	FrameFg   string `yaml:"frame_fg"`
	AccentFg  string `yaml:"accent_fg"`
	ErrorFg   string `yaml:"error_fg"`
	MutedFg   string `yaml:"muted_fg"`
}

type Config struct {
	Theme      Theme `yaml:"theme"`
	HideKeypad bool  `yaml:"hide_keypad"`
}

func DefaultTheme() Theme {
	return Theme{
		DisplayFg: "15",
		FrameFg:   "8",
		AccentFg:  "12",
		ErrorFg:   "9",
		MutedFg:   "8",
	}
}

func DefaultConfig() *Config {
	return &Config{Theme: DefaultTheme()}
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 补齐缺省的配色项
	def := DefaultTheme()
	if config.Theme.DisplayFg == "" {
		config.Theme.DisplayFg = def.DisplayFg
	}
	if config.Theme.FrameFg == "" {
		config.Theme.FrameFg = def.FrameFg
	}
	if config.Theme.AccentFg == "" {
		config.Theme.AccentFg = def.AccentFg
	}
	if config.Theme.ErrorFg == "" {
		config.Theme.ErrorFg = def.ErrorFg
	}
	if config.Theme.MutedFg == "" {
		config.Theme.MutedFg = def.MutedFg
	}

	return &config, nil
}

func SaveConfig(config *Config) error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}

// ConfigPath 配置文件的完整路径，供监听器使用
func ConfigPath() (string, error) {
	return getConfigPath()
}

func getConfigPath() (string, error) {
	configDir, err := utils.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("获取配置目录失败: %w", err)
	}
	return filepath.Join(configDir, "config.yaml"), nil
}
