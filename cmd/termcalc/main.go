package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/Zacy-Sokach/TermCalc/internal/config"
	"github.com/Zacy-Sokach/TermCalc/internal/tui"
	"github.com/Zacy-Sokach/TermCalc/internal/utils"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	Version = "dev"
)

func main() {
	// 处理命令行参数
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-v", "--version":
			fmt.Printf("TermCalc %s\n", Version)
			os.Exit(0)
		case "-h", "--help":
			fmt.Println("TermCalc - 终端计算器")
			fmt.Println()
			fmt.Println("Usage:")
			fmt.Println("  termcalc                 Start the calculator TUI")
			fmt.Println("  termcalc -v, --version   Show version information")
			fmt.Println("  termcalc -h, --help      Show help information")
			fmt.Println()
			fmt.Println("Keys in TUI:")
			fmt.Println("  0-9 .                  输入数字")
			fmt.Println("  + - * /                选择运算")
			fmt.Println("  Enter 或 =             计算结果")
			fmt.Println("  Esc 或 c               清除")
			fmt.Println("  ?                      帮助")
			fmt.Println()
			fmt.Printf("配置文件: %s\n", utils.GetConfigPathForDisplay())
			os.Exit(0)
		}
	}

	// 添加panic恢复
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("程序发生panic: %v\n", r)
			fmt.Println("堆栈跟踪:")
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	// 检查是否在交互式终端中
	if !isTerminal() {
		fmt.Println("TermCalc 运行在非交互式模式")
		fmt.Println("请在交互式终端中运行以使用计算器界面")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		// 配置有问题不阻止启动，退回默认配置
		fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render(
			fmt.Sprintf("加载配置失败，使用默认配置: %v", err)))
		cfg = config.DefaultConfig()
	}

	model := tui.InitialModel(cfg)
	p := tea.NewProgram(&model, tea.WithAltScreen())

	// 配置热加载：文件变化后把新配置发给正在运行的程序
	watcher, err := config.NewWatcher(func(c *config.Config) {
		p.Send(tui.ConfigReloadedMsg{Config: c})
	}, func(err error) {
		p.Send(tui.ConfigWatchErrMsg{Err: err})
	})
	if err == nil {
		if err := watcher.Start(); err != nil {
			// 配置目录还不存在等情况，放弃热加载即可
			watcher.Stop()
		} else {
			defer watcher.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("程序运行错误: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
