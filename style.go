package sdui

import (
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// namedColors is the closed literal vocabulary schemas can use in color
// attributes alongside hex strings and palette tokens.
var namedColors = map[string]Color{
	"black":  rgb(0x00, 0x00, 0x00),
	"white":  rgb(0xff, 0xff, 0xff),
	"red":    rgb(0xe5, 0x3e, 0x3e),
	"green":  rgb(0x38, 0xa1, 0x69),
	"blue":   rgb(0x31, 0x82, 0xce),
	"yellow": rgb(0xd6, 0x9e, 0x2e),
	"orange": rgb(0xdd, 0x6b, 0x20),
	"purple": rgb(0x80, 0x5a, 0xd5),
	"gray":   rgb(0x71, 0x80, 0x96),
	"grey":   rgb(0x71, 0x80, 0x96),
	"clear":  {},
}

// ResolveColor resolves a schema color token: "#rrggbb"/"#rrggbbaa" hex, a
// literal name, a palette slot, or a record field whose value maps through
// the palette's state table. Anything that fails to resolve is the unset
// color, which platforms render as their default.
func ResolveColor(token string, ctx Context) Color {
	if token == "" {
		return Color{}
	}
	if token[0] == '#' {
		c, _ := parseHexColor(token)
		return c
	}
	if c, ok := namedColors[token]; ok {
		return c
	}
	p := ctx.palette()
	switch token {
	case "primary":
		return p.Primary
	case "accent":
		return p.Accent
	case "success":
		return p.Success
	case "warning":
		return p.Warning
	case "danger":
		return p.Danger
	case "muted":
		return p.Muted
	case "surface":
		return p.Surface
	}
	return p.StateColor(stringify(ctx.accessorValue(token)))
}

// parseHexColor parses "#rgb", "#rrggbb", and "#rrggbbaa" forms.
func parseHexColor(s string) (Color, bool) {
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, false
		}
		alpha = uint8(a)
		s = s[:7]
	}
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	r, g, b := cc.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, true
}

// ResolveFont maps a schema font name onto the closed platform vocabulary,
// body when absent or unknown.
func ResolveFont(name string) Font {
	switch name {
	case "caption", "footnote":
		return FontCaption
	case "headline", "subheadline":
		return FontHeadline
	case "title", "largeTitle":
		return FontTitle
	case "mono", "code":
		return FontMono
	}
	return FontBody
}

// ResolveFontWeight maps a schema weight name, regular when absent or
// unknown.
func ResolveFontWeight(name string) FontWeight {
	switch name {
	case "medium":
		return WeightMedium
	case "semibold":
		return WeightSemibold
	case "bold", "heavy":
		return WeightBold
	}
	return WeightRegular
}

// textStyleFor resolves the full text appearance for a node.
func textStyleFor(c *Component, ctx Context) TextStyle {
	return TextStyle{
		Foreground: ResolveColor(c.ForegroundColor, ctx),
		Font:       ResolveFont(c.Font),
		Weight:     ResolveFontWeight(c.FontWeight),
	}
}

// ApplyStyling decorates a built view with the node's optional style
// attributes, padding first, then background, flat or corner-radius-clipped.
// The order is fixed regardless of which attributes are present so the same
// schema always produces the same visual nesting. The input view is never
// mutated; decorators wrap.
func ApplyStyling(p Platform, v View, c *Component, ctx Context) View {
	if c.Padding > 0 {
		v = p.Pad(v, UniformInsets(c.Padding))
	}
	if bg := ResolveColor(c.BackgroundColor, ctx); !bg.IsZero() {
		v = p.Background(v, bg, c.CornerRadius)
	}
	return v
}
