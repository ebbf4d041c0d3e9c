package sdui

// Palette provides the semantic color vocabulary schemas can name instead of
// raw hex values. Slot names (primary, accent, ...) resolve directly; any
// other token is treated as a record field whose value maps through States,
// so one schema can color a row by its job's status.
type Palette struct {
	Name    string
	Primary Color // brand color, headers and primary buttons
	Accent  Color // secondary emphasis, links
	Success Color
	Warning Color
	Danger  Color
	Muted   Color // de-emphasized text, disabled controls
	Surface Color // card and section backgrounds

	// States maps record field values to colors for state-driven tokens.
	States map[string]Color
}

// StateColor resolves a record-state value, unset when the palette has no
// mapping for it.
func (p *Palette) StateColor(state string) Color {
	return p.States[state]
}

func rgb(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Pre-defined palettes

// PaletteDefault is the standard route-screen palette: green brand color,
// amber/blue/green/red job states.
var PaletteDefault = &Palette{
	Name:    "default",
	Primary: rgb(0x2f, 0x85, 0x5a),
	Accent:  rgb(0x2b, 0x6c, 0xb0),
	Success: rgb(0x2f, 0x85, 0x5a),
	Warning: rgb(0xb7, 0x79, 0x1f),
	Danger:  rgb(0xc5, 0x30, 0x30),
	Muted:   rgb(0x71, 0x80, 0x96),
	Surface: rgb(0xf7, 0xfa, 0xfc),
	States: map[string]Color{
		"pending":    rgb(0xb7, 0x79, 0x1f),
		"inProgress": rgb(0x2b, 0x6c, 0xb0),
		"completed":  rgb(0x2f, 0x85, 0x5a),
		"skipped":    rgb(0x71, 0x80, 0x96),
		"urgent":     rgb(0xc5, 0x30, 0x30),
	},
}

// PaletteHighContrast trades the brand colors for maximum legibility in
// direct sunlight.
var PaletteHighContrast = &Palette{
	Name:    "highContrast",
	Primary: rgb(0x00, 0x00, 0x00),
	Accent:  rgb(0x00, 0x00, 0xcc),
	Success: rgb(0x00, 0x66, 0x00),
	Warning: rgb(0x99, 0x4d, 0x00),
	Danger:  rgb(0xcc, 0x00, 0x00),
	Muted:   rgb(0x33, 0x33, 0x33),
	Surface: rgb(0xff, 0xff, 0xff),
	States: map[string]Color{
		"pending":    rgb(0x99, 0x4d, 0x00),
		"inProgress": rgb(0x00, 0x00, 0xcc),
		"completed":  rgb(0x00, 0x66, 0x00),
		"skipped":    rgb(0x33, 0x33, 0x33),
		"urgent":     rgb(0xcc, 0x00, 0x00),
	},
}

// PaletteByName returns a built-in palette, nil when the name is unknown.
// Hosts with custom palettes construct a Palette and set it on the Context
// directly.
func PaletteByName(name string) *Palette {
	switch name {
	case "", "default":
		return PaletteDefault
	case "highContrast":
		return PaletteHighContrast
	}
	return nil
}
