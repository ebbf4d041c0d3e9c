package sdui

import "time"

// View is an opaque platform widget handle. The engine never looks inside a
// View; it builds them through a Platform, groups them, and hands them back.
type View interface{}

// Axis selects the layout direction of a Stack.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
	AxisDepth // stacked on top of each other, last child on top
)

// Insets are the padding applied around a view, in platform points.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// UniformInsets returns equal padding on all four sides.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// IsZero reports whether the insets add no padding at all.
func (i Insets) IsZero() bool {
	return i == Insets{}
}

// Color is a resolved sRGB color. The zero value (fully transparent) means
// "unset": resolvers return it when a token does not resolve, and platforms
// fall back to their defaults when they see it.
type Color struct {
	R, G, B, A uint8
}

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool { return c.A == 0 }

// RGBA implements image/color.Color so platforms that speak stdlib colors
// can use a Color directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return
}

// Hex returns the color as "#rrggbb" for platforms that speak hex strings.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	b := [7]byte{'#'}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0xf]
	}
	return string(b[:])
}

// Font is the closed typographic role vocabulary schemas can name.
type Font int

const (
	FontBody Font = iota // default
	FontCaption
	FontHeadline
	FontTitle
	FontMono
)

// FontWeight is the closed weight vocabulary schemas can name.
type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightMedium
	WeightSemibold
	WeightBold
)

// TextStyle is the resolved appearance for a text-bearing primitive. Zero
// values mean platform defaults.
type TextStyle struct {
	Foreground Color
	Font       Font
	Weight     FontWeight
}

// Typed two-way binding handles. Platforms read the current value with Get
// and push edits with Set; they never see the store behind the funcs.
type (
	TextBinding      struct{ Get func() string; Set func(string) }
	BoolBinding      struct{ Get func() bool; Set func(bool) }
	FloatBinding     struct{ Get func() float64; Set func(float64) }
	IntBinding       struct{ Get func() int; Set func(int) }
	DateBinding      struct{ Get func() time.Time; Set func(time.Time) }
	SelectionBinding struct{ Get func() int; Set func(int) } // index into options
)

// Platform constructs concrete views for one rendering backend. The engine
// drives it one call per node, children already built, and decorates results
// with Pad/Background/Animate/Transition in that fixed order. Implementations
// must not retain the children slices.
//
// Trigger funcs may be nil (nothing registered); platforms render the control
// normally and treat activation as a no-op. Reorder may likewise be nil, in
// which case the list is fixed-order.
type Platform interface {
	// Containers.
	Stack(axis Axis, spacing float64, children []View) View
	Grid(columns int, spacing float64, children []View) View
	Scroll(child View) View
	Spacer() View
	Divider() View
	List(rows []View, onReorder func(from, to int)) View
	Group(children []View) View

	// Content.
	Text(content string, style TextStyle) View
	Image(name string) View
	Icon(name string) View
	Markdown(source string) View
	Progress(fraction float64, label string) View
	Gauge(value, min, max float64, label string) View
	Badge(text string, style TextStyle) View

	// Interactive.
	Button(label string, style TextStyle, trigger func()) View
	Link(label string, style TextStyle, trigger func()) View

	// Inputs, bound two-way through the handles.
	TextField(label string, binding TextBinding) View
	TextArea(label string, binding TextBinding) View
	Toggle(label string, binding BoolBinding) View
	Slider(label string, min, max, step float64, binding FloatBinding) View
	Stepper(label string, min, max, step float64, binding IntBinding) View
	Picker(label string, options []string, binding SelectionBinding) View
	Segmented(label string, options []string, binding SelectionBinding) View
	DatePicker(label string, binding DateBinding) View
	SignatureBox(label string, trigger func()) View

	// Decorators, applied by the engine after a view is built.
	Pad(v View, insets Insets) View
	Background(v View, c Color, cornerRadius float64) View
	Animate(v View, spec AnimationSpec) View
	Transition(v View, spec TransitionSpec) View

	// Fallback is the whole-screen replacement view (version gate).
	Fallback(title, message string) View
}
