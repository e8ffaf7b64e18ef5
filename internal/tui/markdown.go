package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/russross/blackfriday/v2"
)

// 全局Markdown渲染器单例
var (
	globalMarkdownRenderer *MarkdownRenderer
	rendererOnce           sync.Once
)

// GetMarkdownRenderer 获取Markdown渲染器单例
func GetMarkdownRenderer() *MarkdownRenderer {
	rendererOnce.Do(func() {
		globalMarkdownRenderer = NewMarkdownRenderer()
	})
	return globalMarkdownRenderer
}

// MarkdownRenderer 把 Markdown 渲染为带 ANSI 样式的终端文本
type MarkdownRenderer struct {
	styles map[string]lipgloss.Style
}

// NewMarkdownRenderer 创建新的 Markdown 渲染器
func NewMarkdownRenderer() *MarkdownRenderer {
	r := &MarkdownRenderer{}
	r.initStyles()
	return r
}

// initStyles 初始化样式配置
func (r *MarkdownRenderer) initStyles() {
	r.styles = map[string]lipgloss.Style{
		"heading": lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		"strong":  lipgloss.NewStyle().Bold(true),
		"emph":    lipgloss.NewStyle().Italic(true),
		"code":    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		"bullet":  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

// Render 渲染 Markdown 文本为 ANSI 格式
func (r *MarkdownRenderer) Render(markdown string) string {
	if markdown == "" {
		return ""
	}

	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	root := md.Parse([]byte(markdown))

	var (
		sb     strings.Builder
		strong bool
		emph   bool
	)

	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		switch node.Type {
		case blackfriday.Heading:
			if entering {
				sb.WriteString(r.styles["heading"].Render(strings.Repeat("#", node.Level) + " "))
			} else {
				sb.WriteString("\n\n")
			}
		case blackfriday.Paragraph:
			if !entering {
				// 列表项内的段落只换一行，避免列表被拉开
				if node.Parent != nil && node.Parent.Type == blackfriday.Item {
					sb.WriteString("\n")
				} else {
					sb.WriteString("\n\n")
				}
			}
		case blackfriday.Item:
			if entering {
				sb.WriteString(r.styles["bullet"].Render("• "))
			}
		case blackfriday.List:
			if !entering && (node.Parent == nil || node.Parent.Type != blackfriday.Item) {
				sb.WriteString("\n")
			}
		case blackfriday.Strong:
			strong = entering
		case blackfriday.Emph:
			emph = entering
		case blackfriday.Code:
			if entering {
				sb.WriteString(r.styles["code"].Render(string(node.Literal)))
			}
		case blackfriday.CodeBlock:
			if entering {
				for _, line := range strings.Split(strings.TrimRight(string(node.Literal), "\n"), "\n") {
					sb.WriteString("  ")
					sb.WriteString(r.styles["code"].Render(line))
					sb.WriteString("\n")
				}
				sb.WriteString("\n")
			}
		case blackfriday.Text:
			if entering {
				text := string(node.Literal)
				switch {
				case strong:
					sb.WriteString(r.styles["strong"].Render(text))
				case emph:
					sb.WriteString(r.styles["emph"].Render(text))
				default:
					sb.WriteString(text)
				}
			}
		case blackfriday.Softbreak, blackfriday.Hardbreak:
			if entering {
				sb.WriteString("\n")
			}
		}
		return blackfriday.GoToNext
	})

	return strings.TrimRight(sb.String(), "\n") + "\n"
}
