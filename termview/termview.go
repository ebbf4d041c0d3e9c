// Package termview is the terminal rendering backend: an sdui.Platform that
// builds styled text blocks with lipgloss and glamour. Views render eagerly
// to strings; interactive nodes additionally surface Control handles so a
// host program can drive focus, editing, and activation over the static
// output.
//
// Animation and transition descriptors are accepted and dropped: a string
// snapshot has no motion. The fyneview backend honors them.
package termview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	sdui "github.com/jbriggs-source/PestGenie-sub002"
)

// Platform renders sdui views as terminal strings. Construct with New,
// adjust with the chainable With methods, then hand to sdui.New.
type Platform struct {
	width    int
	markdown *glamour.TermRenderer
}

const defaultWidth = 72

// New creates a terminal platform rendering at the default width.
func New() *Platform {
	p := &Platform{width: defaultWidth}
	p.markdown, _ = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(defaultWidth),
	)
	return p
}

// WithWidth sets the rendering width and rewraps markdown to match.
func (p *Platform) WithWidth(w int) *Platform {
	if w > 0 {
		p.width = w
		p.markdown, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(w),
		)
	}
	return p
}

// Width returns the configured rendering width.
func (p *Platform) Width() int { return p.width }

// node is the View value this platform produces: a rendered block plus the
// interactive controls found in it, in render order.
type node struct {
	block    string
	controls []Control
}

// Render returns the rendered text of a view built by this platform.
func Render(v sdui.View) string {
	if n, ok := v.(*node); ok {
		return n.block
	}
	return ""
}

// ControlsOf returns the interactive controls of a view in render order.
// Hosts use them to build their focus ring.
func ControlsOf(v sdui.View) []Control {
	if n, ok := v.(*node); ok {
		return n.controls
	}
	return nil
}

func leaf(block string) *node { return &node{block: block} }

func (p *Platform) merge(blocks []string, views []sdui.View, join func([]string) string) *node {
	n := &node{block: join(blocks)}
	for _, v := range views {
		if child, ok := v.(*node); ok {
			n.controls = append(n.controls, child.controls...)
		}
	}
	return n
}

func blocksOf(children []sdui.View) []string {
	blocks := make([]string, 0, len(children))
	for _, v := range children {
		if n, ok := v.(*node); ok {
			blocks = append(blocks, n.block)
		}
	}
	return blocks
}

// Stack joins children vertically or horizontally. Depth has no terminal
// analogue and collapses to source order, back to front.
func (p *Platform) Stack(axis sdui.Axis, spacing float64, children []sdui.View) sdui.View {
	blocks := blocksOf(children)
	if axis == sdui.AxisHorizontal {
		return p.merge(blocks, children, func(bs []string) string {
			return joinRow(bs, int(spacing))
		})
	}
	return p.merge(blocks, children, func(bs []string) string {
		return joinColumn(bs, int(spacing))
	})
}

// Grid lays children out row by row, cells padded to the widest in their
// column.
func (p *Platform) Grid(columns int, spacing float64, children []sdui.View) sdui.View {
	if columns < 1 {
		columns = 1
	}
	blocks := blocksOf(children)

	widths := make([]int, columns)
	for i, b := range blocks {
		if w := lipgloss.Width(b); w > widths[i%columns] {
			widths[i%columns] = w
		}
	}

	var rows []string
	for start := 0; start < len(blocks); start += columns {
		end := start + columns
		if end > len(blocks) {
			end = len(blocks)
		}
		cells := make([]string, end-start)
		for i, b := range blocks[start:end] {
			cells[i] = lipgloss.NewStyle().Width(widths[i]).Render(b)
		}
		rows = append(rows, joinRow(cells, int(spacing)))
	}
	return p.merge(blocks, children, func([]string) string {
		return joinColumn(rows, 0)
	})
}

// Scroll is a no-op wrapper; the host's viewport does the scrolling.
func (p *Platform) Scroll(child sdui.View) sdui.View {
	return p.merge(blocksOf([]sdui.View{child}), []sdui.View{child}, func(bs []string) string {
		return strings.Join(bs, "")
	})
}

func (p *Platform) Spacer() sdui.View { return leaf("") }

func (p *Platform) Divider() sdui.View {
	rule := strings.Repeat("─", p.width)
	return leaf(mutedStyle.Render(rule))
}

func (p *Platform) List(rows []sdui.View, onReorder func(from, to int)) sdui.View {
	// Reordering is a host keybinding concern; the handler is not part of
	// the static output.
	_ = onReorder
	return p.merge(blocksOf(rows), rows, func(bs []string) string {
		return joinColumn(bs, 0)
	})
}

func (p *Platform) Group(children []sdui.View) sdui.View {
	return p.merge(blocksOf(children), children, func(bs []string) string {
		return joinColumn(bs, 0)
	})
}

func (p *Platform) Text(content string, style sdui.TextStyle) sdui.View {
	return leaf(textStyle(style).Render(content))
}

// Image renders as a named placeholder; terminals have no inline bitmaps.
func (p *Platform) Image(name string) sdui.View {
	return leaf(mutedStyle.Render("[image: " + name + "]"))
}

func (p *Platform) Icon(name string) sdui.View {
	if glyph, ok := iconGlyphs[name]; ok {
		return leaf(glyph)
	}
	return leaf("•")
}

var iconGlyphs = map[string]string{
	"warning":   "⚠",
	"alert":     "‼",
	"check":     "✓",
	"checkmark": "✓",
	"clock":     "◷",
	"info":      "ℹ",
	"signature": "✎",
}

// Markdown renders through glamour, falling back to the raw source when the
// renderer is unavailable or errors out.
func (p *Platform) Markdown(source string) sdui.View {
	return leaf(p.renderMarkdown(source))
}

func (p *Platform) renderMarkdown(source string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = source
		}
	}()
	if p.markdown == nil || source == "" {
		return source
	}
	rendered, err := p.markdown.Render(source)
	if err != nil {
		return source
	}
	return strings.Trim(rendered, "\n")
}

func (p *Platform) Progress(fraction float64, label string) sdui.View {
	return leaf(p.bar(fraction, 0, 1, label, fmt.Sprintf("%d%%", int(clamp01(fraction)*100))))
}

func (p *Platform) Gauge(value, min, max float64, label string) sdui.View {
	span := max - min
	fraction := 0.0
	if span > 0 {
		fraction = (value - min) / span
	}
	return leaf(p.bar(fraction, min, max, label, trimFloat(value)))
}

func (p *Platform) bar(fraction, min, max float64, label, caption string) string {
	const barWidth = 20
	filled := int(clamp01(fraction)*barWidth + 0.5)
	bar := accentStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", barWidth-filled))
	parts := []string{}
	if label != "" {
		parts = append(parts, label)
	}
	parts = append(parts, bar, caption)
	return strings.Join(parts, " ")
}

func (p *Platform) Badge(text string, style sdui.TextStyle) sdui.View {
	s := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	if !style.Foreground.IsZero() {
		s = s.Background(lipColor(style.Foreground)).Foreground(lipgloss.Color("#ffffff"))
	} else {
		s = s.Reverse(true)
	}
	return leaf(s.Render(text))
}

func (p *Platform) Button(label string, style sdui.TextStyle, trigger func()) sdui.View {
	s := lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	if !style.Foreground.IsZero() {
		s = s.Reverse(false).Background(lipColor(style.Foreground)).Foreground(lipgloss.Color("#ffffff"))
	}
	n := leaf(s.Render("[ " + label + " ]"))
	n.controls = []Control{{Kind: ControlButton, Label: label, Trigger: trigger}}
	return n
}

func (p *Platform) Link(label string, style sdui.TextStyle, trigger func()) sdui.View {
	s := lipgloss.NewStyle().Underline(true)
	if !style.Foreground.IsZero() {
		s = s.Foreground(lipColor(style.Foreground))
	} else {
		s = s.Foreground(accentColor)
	}
	n := leaf(s.Render(label))
	n.controls = []Control{{Kind: ControlLink, Label: label, Trigger: trigger}}
	return n
}

func (p *Platform) TextField(label string, binding sdui.TextBinding) sdui.View {
	value := binding.Get()
	if value == "" {
		value = mutedStyle.Render("(empty)")
	}
	n := leaf(fieldLabel(label) + value)
	n.controls = []Control{{Kind: ControlTextField, Label: label, Text: binding}}
	return n
}

func (p *Platform) TextArea(label string, binding sdui.TextBinding) sdui.View {
	value := binding.Get()
	if value == "" {
		value = mutedStyle.Render("(empty)")
	}
	block := fieldLabel(label) + "\n" + lipgloss.NewStyle().PaddingLeft(2).Render(value)
	n := leaf(block)
	n.controls = []Control{{Kind: ControlTextArea, Label: label, Text: binding}}
	return n
}

func (p *Platform) Toggle(label string, binding sdui.BoolBinding) sdui.View {
	box := "[ ]"
	if binding.Get() {
		box = accentStyle.Render("[x]")
	}
	n := leaf(box + " " + label)
	n.controls = []Control{{Kind: ControlToggle, Label: label, Bool: binding}}
	return n
}

func (p *Platform) Slider(label string, min, max, step float64, binding sdui.FloatBinding) sdui.View {
	value := binding.Get()
	span := max - min
	fraction := 0.0
	if span > 0 {
		fraction = (value - min) / span
	}
	n := leaf(p.bar(fraction, min, max, label, trimFloat(value)))
	n.controls = []Control{{Kind: ControlSlider, Label: label, Float: binding, Min: min, Max: max, Step: step}}
	return n
}

func (p *Platform) Stepper(label string, min, max, step float64, binding sdui.IntBinding) sdui.View {
	n := leaf(fmt.Sprintf("%s − %d +", fieldLabel(label), binding.Get()))
	n.controls = []Control{{Kind: ControlStepper, Label: label, Int: binding, Min: min, Max: max, Step: step}}
	return n
}

func (p *Platform) Picker(label string, options []string, binding sdui.SelectionBinding) sdui.View {
	selected := "(none)"
	if i := binding.Get(); i >= 0 && i < len(options) {
		selected = options[i]
	}
	n := leaf(fieldLabel(label) + selected + " ▾")
	n.controls = []Control{{Kind: ControlPicker, Label: label, Options: options, Selection: binding}}
	return n
}

func (p *Platform) Segmented(label string, options []string, binding sdui.SelectionBinding) sdui.View {
	selected := binding.Get()
	parts := make([]string, len(options))
	for i, opt := range options {
		if i == selected {
			parts[i] = lipgloss.NewStyle().Reverse(true).Padding(0, 1).Render(opt)
		} else {
			parts[i] = lipgloss.NewStyle().Padding(0, 1).Render(opt)
		}
	}
	n := leaf(fieldLabel(label) + strings.Join(parts, "│"))
	n.controls = []Control{{Kind: ControlSegmented, Label: label, Options: options, Selection: binding}}
	return n
}

func (p *Platform) DatePicker(label string, binding sdui.DateBinding) sdui.View {
	value := binding.Get()
	display := mutedStyle.Render("(unset)")
	if !value.IsZero() {
		display = value.Format("Jan 2, 2006 3:04 PM")
	}
	n := leaf(fieldLabel(label) + display)
	n.controls = []Control{{Kind: ControlDate, Label: label, Date: binding}}
	return n
}

func (p *Platform) SignatureBox(label string, trigger func()) sdui.View {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Render("✎ " + label)
	n := leaf(box)
	n.controls = []Control{{Kind: ControlSignature, Label: label, Trigger: trigger}}
	return n
}

func (p *Platform) Pad(v sdui.View, insets sdui.Insets) sdui.View {
	child, ok := v.(*node)
	if !ok {
		return v
	}
	s := lipgloss.NewStyle().Padding(
		int(insets.Top), int(insets.Right), int(insets.Bottom), int(insets.Left))
	return &node{block: s.Render(child.block), controls: child.controls}
}

// Background fills the block. A corner radius maps onto a rounded border,
// the closest a cell grid gets to a clipped corner.
func (p *Platform) Background(v sdui.View, c sdui.Color, cornerRadius float64) sdui.View {
	child, ok := v.(*node)
	if !ok {
		return v
	}
	s := lipgloss.NewStyle()
	if cornerRadius > 0 {
		s = s.Border(lipgloss.RoundedBorder())
		if !c.IsZero() {
			s = s.BorderForeground(lipColor(c))
		}
	} else if !c.IsZero() {
		s = s.Background(lipColor(c))
	}
	return &node{block: s.Render(child.block), controls: child.controls}
}

func (p *Platform) Animate(v sdui.View, spec sdui.AnimationSpec) sdui.View {
	return v
}

func (p *Platform) Transition(v sdui.View, spec sdui.TransitionSpec) sdui.View {
	return v
}

func (p *Platform) Fallback(title, message string) sdui.View {
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render(title),
		"",
		lipgloss.NewStyle().Width(min(p.width-8, 48)).Align(lipgloss.Center).Render(message),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 3).
		Render(body)
	return leaf(lipgloss.Place(p.width, lipgloss.Height(box)+2, lipgloss.Center, lipgloss.Center, box))
}

var (
	accentColor = lipgloss.Color("#2b6cb0")
	accentStyle = lipgloss.NewStyle().Foreground(accentColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#718096"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#718096")).Bold(true)
)

func fieldLabel(label string) string {
	if label == "" {
		return ""
	}
	return labelStyle.Render(label+":") + " "
}

func textStyle(style sdui.TextStyle) lipgloss.Style {
	s := lipgloss.NewStyle()
	if !style.Foreground.IsZero() {
		s = s.Foreground(lipColor(style.Foreground))
	}
	switch style.Font {
	case sdui.FontCaption:
		s = s.Faint(true)
	case sdui.FontHeadline, sdui.FontTitle:
		s = s.Bold(true)
	}
	if style.Weight >= sdui.WeightSemibold {
		s = s.Bold(true)
	}
	return s
}

func lipColor(c sdui.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func joinColumn(blocks []string, spacing int) string {
	if len(blocks) == 0 {
		return ""
	}
	gap := strings.Repeat("\n", spacing)
	parts := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 && gap != "" {
			parts = append(parts, gap)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func joinRow(blocks []string, spacing int) string {
	if len(blocks) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", spacing)
	parts := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 && gap != "" {
			parts = append(parts, gap)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.1f", f)
	return strings.TrimSuffix(s, ".0")
}

var _ sdui.Platform = (*Platform)(nil)

// Control is one interactive element surfaced by a rendered view: the host's
// focus ring entry. Exactly one of the binding fields is meaningful,
// determined by Kind; Trigger is set for button-like kinds.
type Control struct {
	Kind    ControlKind
	Label   string
	Trigger func()

	Text      sdui.TextBinding
	Bool      sdui.BoolBinding
	Float     sdui.FloatBinding
	Int       sdui.IntBinding
	Date      sdui.DateBinding
	Selection sdui.SelectionBinding

	Options        []string
	Min, Max, Step float64
}

// ControlKind discriminates what a Control carries.
type ControlKind int

const (
	ControlButton ControlKind = iota
	ControlLink
	ControlSignature
	ControlTextField
	ControlTextArea
	ControlToggle
	ControlSlider
	ControlStepper
	ControlPicker
	ControlSegmented
	ControlDate
)

var controlNames = [...]string{
	"button", "link", "signature", "textField", "textArea",
	"toggle", "slider", "stepper", "picker", "segmented", "date",
}

func (k ControlKind) String() string {
	if int(k) < len(controlNames) {
		return controlNames[k]
	}
	return "unknown"
}

// Activate performs the control's primary action: triggering button-like
// kinds and flipping toggles. Editable kinds return false; the host opens
// its editor instead.
func (c Control) Activate() bool {
	switch c.Kind {
	case ControlButton, ControlLink, ControlSignature:
		if c.Trigger != nil {
			c.Trigger()
		}
		return true
	case ControlToggle:
		c.Bool.Set(!c.Bool.Get())
		return true
	}
	return false
}

// Adjust moves sliders, steppers, and selections by the given number of
// steps, clamped to their bounds. Returns false for kinds that do not
// adjust.
func (c Control) Adjust(steps int) bool {
	switch c.Kind {
	case ControlSlider:
		v := c.Float.Get() + float64(steps)*c.Step
		if v < c.Min {
			v = c.Min
		}
		if v > c.Max {
			v = c.Max
		}
		c.Float.Set(v)
		return true
	case ControlStepper:
		v := c.Int.Get() + steps*int(c.Step)
		if v < int(c.Min) {
			v = int(c.Min)
		}
		if v > int(c.Max) {
			v = int(c.Max)
		}
		c.Int.Set(v)
		return true
	case ControlPicker, ControlSegmented:
		if len(c.Options) == 0 {
			return false
		}
		v := c.Selection.Get() + steps
		if v < 0 {
			v = 0
		}
		if v >= len(c.Options) {
			v = len(c.Options) - 1
		}
		c.Selection.Set(v)
		return true
	case ControlDate:
		base := c.Date.Get()
		if base.IsZero() {
			// Adjusting an unset date starts from today.
			base = time.Now()
		}
		c.Date.Set(base.AddDate(0, 0, steps))
		return true
	}
	return false
}
