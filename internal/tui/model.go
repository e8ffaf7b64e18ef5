package tui

import (
	"time"

	"github.com/Zacy-Sokach/TermCalc/internal/calc"
	"github.com/Zacy-Sokach/TermCalc/internal/config"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// 键盘面板按键高亮的持续时间
const keyFlashDuration = 150 * time.Millisecond

// 键盘面板布局
var keypadRows = [][]string{
	{"7", "8", "9", "÷"},
	{"4", "5", "6", "×"},
	{"1", "2", "3", "-"},
	{"0", ".", "=", "+"},
	{"C"},
}

type Model struct {
	machine  *calc.Machine
	keys     KeyMap
	help     help.Model
	styles   Styles
	cfg      *config.Config
	helpText string
	width    int
	height   int
	ready    bool
	showHelp bool
	flashKey string // 最近按下的键，用于键盘面板高亮
}

func InitialModel(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Model{
		machine:  calc.New(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   NewStyles(cfg.Theme),
		cfg:      cfg,
		helpText: GetMarkdownRenderer().Render(usageMarkdown),
	}
}

// Machine 暴露状态机，供入口和测试检查可观察状态
func (m Model) Machine() *calc.Machine {
	return m.machine
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case KeyFlashExpiredMsg:
		m.flashKey = ""
		return m, nil

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.styles = NewStyles(msg.Config.Theme)
		return m, nil

	case ConfigWatchErrMsg:
		// 配置监听出错不影响计算，忽略
		return m, nil
	}

	return m, nil
}

// handleKey 把按键映射为状态机的一次原子状态转移
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	// 帮助页打开时任意其他按键关闭帮助
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Digits):
		d := msg.String()[0]
		m.machine.InputDigit(d)
		return m.flash(string(d))
	case key.Matches(msg, m.keys.Decimal):
		m.machine.InputDecimal()
		return m.flash(".")
	case key.Matches(msg, m.keys.Add):
		m.machine.SelectOp(calc.OpAdd)
		return m.flash("+")
	case key.Matches(msg, m.keys.Sub):
		m.machine.SelectOp(calc.OpSub)
		return m.flash("-")
	case key.Matches(msg, m.keys.Mul):
		m.machine.SelectOp(calc.OpMul)
		return m.flash(calc.OpMul.Symbol())
	case key.Matches(msg, m.keys.Div):
		m.machine.SelectOp(calc.OpDiv)
		return m.flash(calc.OpDiv.Symbol())
	case key.Matches(msg, m.keys.Equals):
		m.machine.Calculate()
		return m.flash("=")
	case key.Matches(msg, m.keys.Clear):
		m.machine.Clear()
		return m.flash("C")
	}

	return m, nil
}

// flash 高亮键盘面板上最近按下的键，定时恢复
func (m Model) flash(label string) (tea.Model, tea.Cmd) {
	m.flashKey = label
	return m, tea.Tick(keyFlashDuration, func(time.Time) tea.Msg {
		return KeyFlashExpiredMsg{}
	})
}

func (m Model) View() string {
	var content string
	if m.showHelp {
		content = lipgloss.JoinVertical(lipgloss.Center,
			m.styles.HelpPane.Render(m.helpText),
			m.help.View(m.keys),
		)
	} else {
		sections := []string{m.displayView()}
		if !m.cfg.HideKeypad {
			sections = append(sections, m.keypadView())
		}
		sections = append(sections, m.help.View(m.keys))
		content = lipgloss.JoinVertical(lipgloss.Center, sections...)
	}

	if m.ready && m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// displayView 渲染显示区：预览行 + 当前值或错误消息
func (m Model) displayView() string {
	preview := m.styles.Preview.Render(m.machine.Preview())

	line := m.styles.Display.Render(m.machine.Display())
	if err := m.machine.Err(); err != nil {
		line = m.styles.Error.Render(err.Error())
	}

	return m.styles.Frame.Render(preview + "\n" + line)
}

// keypadView 渲染键盘面板，最近按下的键用高亮样式
func (m Model) keypadView() string {
	rendered := make([]string, 0, len(keypadRows))
	for _, row := range keypadRows {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			style := m.styles.Key
			if label != "" && label == m.flashKey {
				style = m.styles.KeyActive
			}
			cells = append(cells, style.Render(label))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rendered...)
}
