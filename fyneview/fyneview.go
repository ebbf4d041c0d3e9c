// Package fyneview is the desktop rendering backend: an sdui.Platform that
// builds fyne widgets and containers. Animation and transition descriptors
// map onto fyne.Animation entrance effects with matching curves.
package fyneview

import (
	"image/color"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	sdui "github.com/jbriggs-source/PestGenie-sub002"
)

// Platform renders sdui views as fyne canvas objects.
type Platform struct{}

// New creates a desktop platform.
func New() *Platform { return &Platform{} }

// Object unwraps a view built by this platform to its fyne canvas object.
// Hosts call it once on the screen's root to set the window content.
func Object(v sdui.View) fyne.CanvasObject {
	if obj, ok := v.(fyne.CanvasObject); ok {
		return obj
	}
	return container.NewVBox()
}

// pxPerUnit converts the schema's abstract spacing/inset units to pixels.
const pxPerUnit float32 = 4

func px(units float64) float32 { return float32(units) * pxPerUnit }

func objects(children []sdui.View) []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(children))
	for _, v := range children {
		objs = append(objs, Object(v))
	}
	return objs
}

// gap is a transparent rectangle used to widen box spacing beyond the theme
// default.
func gap(w, h float32) fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(w, h))
	return r
}

func interleave(objs []fyne.CanvasObject, spacer func() fyne.CanvasObject) []fyne.CanvasObject {
	if spacer == nil || len(objs) < 2 {
		return objs
	}
	out := make([]fyne.CanvasObject, 0, len(objs)*2-1)
	for i, o := range objs {
		if i > 0 {
			out = append(out, spacer())
		}
		out = append(out, o)
	}
	return out
}

func (p *Platform) Stack(axis sdui.Axis, spacing float64, children []sdui.View) sdui.View {
	objs := objects(children)
	switch axis {
	case sdui.AxisHorizontal:
		if spacing > 0 {
			objs = interleave(objs, func() fyne.CanvasObject { return gap(px(spacing), 0) })
		}
		return container.NewHBox(objs...)
	case sdui.AxisDepth:
		return container.NewStack(objs...)
	default:
		if spacing > 0 {
			objs = interleave(objs, func() fyne.CanvasObject { return gap(0, px(spacing)) })
		}
		return container.NewVBox(objs...)
	}
}

func (p *Platform) Grid(columns int, spacing float64, children []sdui.View) sdui.View {
	if columns < 1 {
		columns = 1
	}
	return container.NewGridWithColumns(columns, objects(children)...)
}

func (p *Platform) Scroll(child sdui.View) sdui.View {
	return container.NewVScroll(Object(child))
}

func (p *Platform) Spacer() sdui.View { return layout.NewSpacer() }

func (p *Platform) Divider() sdui.View { return widget.NewSeparator() }

// List stacks prebuilt rows. Drag reordering is not wired; desktop hosts
// expose reordering through actions instead.
func (p *Platform) List(rows []sdui.View, onReorder func(from, to int)) sdui.View {
	_ = onReorder
	return container.NewVBox(objects(rows)...)
}

func (p *Platform) Group(children []sdui.View) sdui.View {
	return container.NewVBox(objects(children)...)
}

func (p *Platform) Text(content string, style sdui.TextStyle) sdui.View {
	if style.Foreground.IsZero() && style.Font == sdui.FontBody {
		label := widget.NewLabel(content)
		label.Wrapping = fyne.TextWrapWord
		if style.Weight >= sdui.WeightSemibold {
			label.TextStyle = fyne.TextStyle{Bold: true}
		}
		return label
	}

	fg := color.Color(theme.Color(theme.ColorNameForeground))
	if !style.Foreground.IsZero() {
		fg = nrgba(style.Foreground)
	}
	text := canvas.NewText(content, fg)
	text.TextSize = fontSize(style.Font)
	text.TextStyle = fyne.TextStyle{
		Bold:      style.Weight >= sdui.WeightSemibold || style.Font == sdui.FontHeadline || style.Font == sdui.FontTitle,
		Monospace: style.Font == sdui.FontMono,
	}
	return text
}

func fontSize(f sdui.Font) float32 {
	switch f {
	case sdui.FontCaption:
		return theme.CaptionTextSize()
	case sdui.FontHeadline:
		return theme.TextSize() * 1.3
	case sdui.FontTitle:
		return theme.TextHeadingSize()
	default:
		return theme.TextSize()
	}
}

func (p *Platform) Image(name string) sdui.View {
	img := canvas.NewImageFromFile(name)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(48, 48))
	return img
}

func (p *Platform) Icon(name string) sdui.View {
	return widget.NewIcon(iconResource(name))
}

func iconResource(name string) fyne.Resource {
	switch name {
	case "warning":
		return theme.WarningIcon()
	case "alert":
		return theme.ErrorIcon()
	case "check", "checkmark":
		return theme.ConfirmIcon()
	case "info":
		return theme.InfoIcon()
	case "signature":
		return theme.DocumentCreateIcon()
	default:
		return theme.HelpIcon()
	}
}

func (p *Platform) Markdown(source string) sdui.View {
	rich := widget.NewRichTextFromMarkdown(source)
	rich.Wrapping = fyne.TextWrapWord
	return rich
}

func (p *Platform) Progress(fraction float64, label string) sdui.View {
	bar := widget.NewProgressBar()
	bar.SetValue(clamp01(fraction))
	if label == "" {
		return bar
	}
	return container.NewVBox(widget.NewLabel(label), bar)
}

func (p *Platform) Gauge(value, min, max float64, label string) sdui.View {
	bar := widget.NewProgressBar()
	bar.Min = min
	bar.Max = max
	bar.SetValue(value)
	caption := value
	bar.TextFormatter = func() string {
		return strconv.FormatFloat(caption, 'f', -1, 64)
	}
	if label == "" {
		return bar
	}
	return container.NewVBox(widget.NewLabel(label), bar)
}

func (p *Platform) Badge(text string, style sdui.TextStyle) sdui.View {
	fill := color.Color(theme.Color(theme.ColorNamePrimary))
	if !style.Foreground.IsZero() {
		fill = nrgba(style.Foreground)
	}
	pill := canvas.NewRectangle(fill)
	pill.CornerRadius = 8
	label := canvas.NewText(text, color.White)
	label.TextSize = theme.CaptionTextSize()
	label.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewStack(pill, container.NewPadded(label))
}

func (p *Platform) Button(label string, style sdui.TextStyle, trigger func()) sdui.View {
	btn := widget.NewButton(label, trigger)
	if style.Weight >= sdui.WeightSemibold {
		btn.Importance = widget.HighImportance
	}
	return btn
}

func (p *Platform) Link(label string, style sdui.TextStyle, trigger func()) sdui.View {
	btn := widget.NewButton(label, trigger)
	btn.Importance = widget.LowImportance
	return btn
}

func (p *Platform) TextField(label string, binding sdui.TextBinding) sdui.View {
	entry := widget.NewEntry()
	entry.SetText(binding.Get())
	entry.OnChanged = binding.Set
	return labeled(label, entry)
}

func (p *Platform) TextArea(label string, binding sdui.TextBinding) sdui.View {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord
	entry.SetText(binding.Get())
	entry.OnChanged = binding.Set
	return labeled(label, entry)
}

func (p *Platform) Toggle(label string, binding sdui.BoolBinding) sdui.View {
	check := widget.NewCheck(label, binding.Set)
	check.SetChecked(binding.Get())
	return check
}

func (p *Platform) Slider(label string, min, max, step float64, binding sdui.FloatBinding) sdui.View {
	slider := widget.NewSlider(min, max)
	slider.Step = step
	slider.SetValue(binding.Get())
	slider.OnChanged = binding.Set
	return labeled(label, slider)
}

func (p *Platform) Stepper(label string, min, max, step float64, binding sdui.IntBinding) sdui.View {
	value := widget.NewLabel(strconv.Itoa(binding.Get()))
	stepBy := int(step)
	if stepBy < 1 {
		stepBy = 1
	}
	set := func(v int) {
		if v < int(min) {
			v = int(min)
		}
		if v > int(max) {
			v = int(max)
		}
		binding.Set(v)
		value.SetText(strconv.Itoa(v))
	}
	minus := widget.NewButton("−", func() { set(binding.Get() - stepBy) })
	plus := widget.NewButton("+", func() { set(binding.Get() + stepBy) })
	row := container.NewHBox(minus, value, plus)
	if label == "" {
		return row
	}
	return container.NewHBox(widget.NewLabel(label), layout.NewSpacer(), row)
}

func (p *Platform) Picker(label string, options []string, binding sdui.SelectionBinding) sdui.View {
	sel := widget.NewSelect(options, nil)
	sel.SetSelectedIndex(binding.Get())
	sel.OnChanged = func(string) { binding.Set(sel.SelectedIndex()) }
	return labeled(label, sel)
}

func (p *Platform) Segmented(label string, options []string, binding sdui.SelectionBinding) sdui.View {
	group := widget.NewRadioGroup(options, nil)
	group.Horizontal = true
	if i := binding.Get(); i >= 0 && i < len(options) {
		group.SetSelected(options[i])
	}
	group.OnChanged = func(selected string) {
		for i, opt := range options {
			if opt == selected {
				binding.Set(i)
				return
			}
		}
	}
	return labeled(label, group)
}

const dateLayout = "2006-01-02"

func (p *Platform) DatePicker(label string, binding sdui.DateBinding) sdui.View {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(dateLayout)
	if v := binding.Get(); !v.IsZero() {
		entry.SetText(v.Format(dateLayout))
	}
	entry.OnChanged = func(s string) {
		if t, err := time.Parse(dateLayout, s); err == nil {
			binding.Set(t)
		}
	}
	return labeled(label, entry)
}

func (p *Platform) SignatureBox(label string, trigger func()) sdui.View {
	return widget.NewButtonWithIcon(label, theme.DocumentCreateIcon(), trigger)
}

func (p *Platform) Pad(v sdui.View, insets sdui.Insets) sdui.View {
	return container.New(insetLayout{
		top:    px(insets.Top),
		right:  px(insets.Right),
		bottom: px(insets.Bottom),
		left:   px(insets.Left),
	}, Object(v))
}

// insetLayout offsets its single child by fixed edge insets. Fyne's padded
// container only knows the theme padding, so asymmetric insets need a layout.
type insetLayout struct {
	top, right, bottom, left float32
}

func (l insetLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var inner fyne.Size
	for _, o := range objects {
		inner = inner.Max(o.MinSize())
	}
	return fyne.NewSize(inner.Width+l.left+l.right, inner.Height+l.top+l.bottom)
}

func (l insetLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	inner := fyne.NewSize(size.Width-l.left-l.right, size.Height-l.top-l.bottom)
	for _, o := range objects {
		o.Resize(inner)
		o.Move(fyne.NewPos(l.left, l.top))
	}
}

func (p *Platform) Background(v sdui.View, c sdui.Color, cornerRadius float64) sdui.View {
	rect := canvas.NewRectangle(nrgba(c))
	rect.CornerRadius = px(cornerRadius) / 2
	return container.NewStack(rect, Object(v))
}

func (p *Platform) Animate(v sdui.View, spec sdui.AnimationSpec) sdui.View {
	return newAnimated(Object(v), &spec, nil)
}

func (p *Platform) Transition(v sdui.View, spec sdui.TransitionSpec) sdui.View {
	return newAnimated(Object(v), nil, &spec)
}

func (p *Platform) Fallback(title, message string) sdui.View {
	heading := canvas.NewText(title, theme.Color(theme.ColorNameForeground))
	heading.TextSize = theme.TextHeadingSize()
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	body := widget.NewLabel(message)
	body.Wrapping = fyne.TextWrapWord
	body.Alignment = fyne.TextAlignCenter

	return container.NewCenter(container.NewVBox(heading, body))
}

func labeled(label string, field fyne.CanvasObject) fyne.CanvasObject {
	if label == "" {
		return field
	}
	return container.NewBorder(nil, nil, widget.NewLabel(label), nil, field)
}

func nrgba(c sdui.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
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

var _ sdui.Platform = (*Platform)(nil)
