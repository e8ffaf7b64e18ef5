package tui

// usageMarkdown 帮助页内容，按 ? 打开
const usageMarkdown = `# TermCalc

终端四则运算计算器。

## 按键

- **0-9** 输入数字
- **.** 小数点
- **+ - * /** 选择运算
- **Enter / =** 计算结果
- **Esc / c** 清除
- **?** 打开或关闭本帮助
- **q / Ctrl+C** 退出

## 说明

- 一次只做一种二元运算，选下一个运算符时先结算上一个
- 除以零、溢出和无效输入会在显示区提示，按任意数字即可恢复
- 配色和键盘面板开关在配置文件中调整，保存后立即生效：

` + "```" + `
~/.config/termcalc/config.yaml
` + "```" + `
`
