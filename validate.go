package sdui

// ValidateComponent checks that a node carries the attributes its kind
// requires, nil when it does. One failed node never fails a screen; the
// renderer swaps it for an inline error view and carries on with siblings.
func ValidateComponent(c *Component) *NodeValidationError {
	fail := func(msg string) *NodeValidationError {
		return &NodeValidationError{NodeID: c.ID, Kind: c.Kind, Message: msg}
	}
	if c.Kind.IsInput() && c.ValueKey == "" {
		return fail(c.Kind.String() + " requires a valueKey")
	}
	switch c.Kind {
	case KindList:
		if c.ItemView == nil {
			return fail("list requires an itemView template")
		}
	case KindGrid:
		if c.Columns < 1 {
			return fail("grid requires at least 1 column")
		}
	case KindConditional:
		if c.ConditionKey == "" {
			return fail("conditional requires a conditionKey")
		}
	case KindImage, KindIcon:
		if c.Text == "" && c.ValueKey == "" {
			return fail(c.Kind.String() + " requires a text or valueKey source")
		}
	case KindGauge:
		if c.ValueKey == "" {
			return fail("gauge requires a valueKey")
		}
	case KindMarkdown:
		if c.Text == "" && c.ValueKey == "" {
			return fail("markdown requires a text or valueKey source")
		}
	}
	return nil
}

// Inline error views use fixed colors rather than the palette so a broken
// node looks the same on every screen and every platform.
var (
	errorText = rgb(0x9b, 0x2c, 0x2c)
	errorFill = rgb(0xfe, 0xd7, 0xd7)
)

// ErrorView synthesizes the bounded inline view shown in place of a node
// that failed validation: a warning icon and the message, on a soft red
// fill. It is built from platform primitives so platforms need no dedicated
// error widget.
func ErrorView(p Platform, message string) View {
	row := p.Stack(AxisHorizontal, 1, []View{
		p.Icon("warning"),
		p.Text(message, TextStyle{Foreground: errorText, Font: FontCaption}),
	})
	return p.Background(p.Pad(row, UniformInsets(1)), errorFill, 2)
}

// Lint walks a screen and reports every node that would render as an inline
// error, in render order, without building any views. The validate command
// uses it to vet schemas before they ship.
func Lint(screen *Screen) []*NodeValidationError {
	var errs []*NodeValidationError
	if screen == nil || screen.Component == nil {
		return nil
	}
	screen.Component.Walk(func(c *Component) {
		if err := ValidateComponent(c); err != nil {
			errs = append(errs, err)
		}
	})
	return errs
}
