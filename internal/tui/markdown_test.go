package tui

import (
	"strings"
	"testing"
)

func TestRenderEmpty(t *testing.T) {
	r := NewMarkdownRenderer()
	if got := r.Render(""); got != "" {
		t.Errorf("Empty input should render empty, got %q", got)
	}
}

func TestRenderHeadingAndText(t *testing.T) {
	r := NewMarkdownRenderer()
	out := r.Render("# 标题\n\n正文内容")

	if !strings.Contains(out, "标题") {
		t.Errorf("Output should contain heading text: %q", out)
	}
	if !strings.Contains(out, "正文内容") {
		t.Errorf("Output should contain paragraph text: %q", out)
	}
}

func TestRenderList(t *testing.T) {
	r := NewMarkdownRenderer()
	out := r.Render("- 第一项\n- 第二项\n")

	if strings.Count(out, "•") != 2 {
		t.Errorf("Each list item should get a bullet: %q", out)
	}
	if !strings.Contains(out, "第一项") || !strings.Contains(out, "第二项") {
		t.Errorf("Output should contain item text: %q", out)
	}
}

func TestRenderEmphasis(t *testing.T) {
	r := NewMarkdownRenderer()
	out := r.Render("**加粗** 和 *斜体* 和 `代码`")

	for _, want := range []string{"加粗", "斜体", "代码"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output should contain %q: %q", want, out)
		}
	}
}

func TestRenderCodeBlock(t *testing.T) {
	r := NewMarkdownRenderer()
	out := r.Render("```\nline one\nline two\n```\n")

	if !strings.Contains(out, "line one") || !strings.Contains(out, "line two") {
		t.Errorf("Code block lines should survive rendering: %q", out)
	}
}

func TestRenderUsageMarkdown(t *testing.T) {
	// 内置帮助文本必须可渲染且关键内容齐全
	out := GetMarkdownRenderer().Render(usageMarkdown)

	for _, want := range []string{"TermCalc", "0-9", "config.yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("Rendered help should contain %q", want)
		}
	}
}

func TestRendererSingleton(t *testing.T) {
	if GetMarkdownRenderer() != GetMarkdownRenderer() {
		t.Error("GetMarkdownRenderer should return the same instance")
	}
}
