package calc

import (
	"math"
	"strconv"
	"strings"
)

// Op 表示一种二元算术运算
type Op int

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Symbol 返回运算符的显示符号
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return ""
	}
}

// ErrorKind 错误类别
type ErrorKind int

const (
	KindInvalidInput ErrorKind = iota + 1
	KindDivideByZero
	KindOverflow
)

// CalcError 计算错误，带有可直接展示给用户的消息
type CalcError struct {
	Kind    ErrorKind
	Message string
}

func (e *CalcError) Error() string {
	return e.Message
}

// Machine 计算器状态机
// 持有全部计算状态：当前显示值、累加值、挂起的运算符、
// 新操作数标志和错误状态。由表现层独占驱动，非并发安全。
type Machine struct {
	display string
	acc     float64
	hasAcc  bool
	pending Op
	fresh   bool // 下一次数字输入开始新的操作数
	err     *CalcError
}

// New 创建初始状态的计算器
func New() *Machine {
	return &Machine{display: "0"}
}

// Display 当前显示值（始终是合法的十进制数字串）
func (m *Machine) Display() string {
	return m.display
}

// Err 当前错误状态，无错误时返回 nil
func (m *Machine) Err() *CalcError {
	return m.err
}

// Preview 返回 "累加值 运算符" 形式的预览文本，没有挂起运算时为空
func (m *Machine) Preview() string {
	if !m.hasAcc || m.pending == OpNone {
		return ""
	}
	return formatValue(m.acc) + " " + m.pending.Symbol()
}

// Pending 当前挂起的运算符
func (m *Machine) Pending() Op {
	return m.pending
}

// HasAccumulator 是否持有累加值
func (m *Machine) HasAccumulator() bool {
	return m.hasAcc
}

// InputDigit 输入一个数字字符
// 新操作数标志置位（或处于错误状态）时替换显示值并清除错误，
// 否则追加到显示值末尾；单独的 "0" 会被替换。
func (m *Machine) InputDigit(d byte) {
	if d < '0' || d > '9' {
		return
	}
	if m.fresh || m.err != nil {
		m.display = string(d)
		m.fresh = false
		m.err = nil
		return
	}
	if m.display == "0" {
		m.display = string(d)
		return
	}
	m.display += string(d)
}

// InputDecimal 输入小数点
// 新操作数标志置位时显示值从 "0." 开始；已有小数点时忽略。
func (m *Machine) InputDecimal() {
	if m.fresh || m.err != nil {
		m.display = "0."
		m.fresh = false
		m.err = nil
		return
	}
	if !strings.Contains(m.display, ".") {
		m.display += "."
	}
}

// SelectOp 选择运算符（OpNone 表示只结算不挂起新运算）
// 解析当前显示值；没有累加值时将其存为累加值，否则用挂起的
// 运算符结算。出错时除错误状态外不修改任何状态。
func (m *Machine) SelectOp(op Op) {
	v, err := strconv.ParseFloat(m.display, 64)
	if err != nil {
		m.err = &CalcError{Kind: KindInvalidInput, Message: "无效输入: " + m.display}
		return
	}

	switch {
	case !m.hasAcc:
		m.acc = v
		m.hasAcc = true
	case m.fresh:
		// 还没有输入新的操作数，只替换挂起的运算符
	case m.pending == OpNone:
		m.acc = v
	default:
		res, cerr := apply(m.pending, m.acc, v)
		if cerr != nil {
			m.err = cerr
			return
		}
		res = roundResult(res)
		m.display = formatValue(res)
		m.acc = res
	}

	m.fresh = true
	m.pending = op
}

// Calculate 结算当前运算并为下一次独立计算复位
// 结果保留在显示值中；出错时保持原状态以便恢复。
func (m *Machine) Calculate() {
	m.SelectOp(OpNone)
	if m.err != nil {
		return
	}
	m.hasAcc = false
	m.pending = OpNone
	m.fresh = true
}

// Clear 从任意状态回到初始状态
func (m *Machine) Clear() {
	m.display = "0"
	m.acc = 0
	m.hasAcc = false
	m.pending = OpNone
	m.fresh = false
	m.err = nil
}

func apply(op Op, a, b float64) (float64, *CalcError) {
	var res float64
	switch op {
	case OpAdd:
		res = a + b
	case OpSub:
		res = a - b
	case OpMul:
		res = a * b
	case OpDiv:
		if b == 0 {
			return 0, &CalcError{Kind: KindDivideByZero, Message: "除数不能为零"}
		}
		res = a / b
	default:
		return b, nil
	}
	if math.IsInf(res, 0) || math.IsNaN(res) {
		return 0, &CalcError{Kind: KindOverflow, Message: "结果溢出"}
	}
	return res, nil
}

// roundResult 四舍五入到 9 位小数，消除二进制浮点噪声
// 幅值太大时跳过（放大会溢出，且该量级本来没有小数噪声）。
func roundResult(v float64) float64 {
	if math.Abs(v) >= 1e15 {
		return v
	}
	return math.Round(v*1e9) / 1e9
}

// formatValue 格式化为十进制数字串，去掉多余的尾零
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
