package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap 计算器的全部按键绑定
type KeyMap struct {
	Digits  key.Binding
	Decimal key.Binding
	Add     key.Binding
	Sub     key.Binding
	Mul     key.Binding
	Div     key.Binding
	Equals  key.Binding
	Clear   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "输入数字"),
		),
		Decimal: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "小数点"),
		),
		Add: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "加"),
		),
		Sub: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "减"),
		),
		Mul: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "乘"),
		),
		Div: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "除"),
		),
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("=", "计算"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "c", "C"),
			key.WithHelp("esc/c", "清除"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "帮助"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "退出"),
		),
	}
}

// ShortHelp 实现 help.KeyMap 接口
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Equals, k.Clear, k.Help, k.Quit}
}

// FullHelp 实现 help.KeyMap 接口
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Decimal},
		{k.Add, k.Sub, k.Mul, k.Div},
		{k.Equals, k.Clear, k.Help, k.Quit},
	}
}
