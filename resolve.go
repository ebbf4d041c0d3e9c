package sdui

import (
	"fmt"
	"strconv"
	"time"
)

// displayTime is how bound time values read for display, not for editing.
const displayTime = "Jan 2, 2006 3:04 PM"

// ResolveText resolves the display text for a node: static text if present,
// else the bound record field through the accessor table, else empty. Total;
// a missing record, accessor, or field is just the next fallback.
func ResolveText(c *Component, ctx Context) string {
	if c.Text != "" {
		return c.Text
	}
	if c.ValueKey != "" {
		return stringify(ctx.accessorValue(c.ValueKey))
	}
	return ""
}

// ResolveLabel resolves a node's label: the bound record field when it
// yields something, else the static label, else empty.
func ResolveLabel(c *Component, ctx Context) string {
	if c.ValueKey != "" {
		if s := stringify(ctx.accessorValue(c.ValueKey)); s != "" {
			return s
		}
	}
	return c.Label
}

// stringify renders an accessor value for display. nil means absent.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format(displayTime)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// truthy is the visibility test for condition values: non-empty strings,
// true bools, non-zero numbers, and non-zero times count as present.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case time.Time:
		return !t.IsZero()
	default:
		return true
	}
}

// resolveCondition evaluates a condition key for the current record. Bound
// state wins over record data so a toggle can drive visibility live.
func resolveCondition(key string, ctx Context) bool {
	if v, ok := ctx.Bindings.Bool(key, ctx.Current); ok {
		return v
	}
	if v, ok := ctx.Bindings.Text(key, ctx.Current); ok {
		return v != ""
	}
	return truthy(ctx.accessorValue(key))
}

// resolveNumber reads a numeric value for gauges and progress bars, bound
// state first, then the record field, zero when nothing resolves.
func resolveNumber(key string, ctx Context) float64 {
	if key == "" {
		return 0
	}
	if v, ok := ctx.Bindings.Double(key, ctx.Current); ok {
		return v
	}
	if v, ok := ctx.Bindings.Int(key, ctx.Current); ok {
		return float64(v)
	}
	switch t := ctx.accessorValue(key).(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
	}
	return 0
}

// The bound* helpers are the read side of two-way input binding: the store
// value when the key was ever written, else the record field coerced to the
// input's type, else zero. Only user edits write the store, so record data
// shows through until the first edit and never after.

func boundText(key string, ctx Context) string {
	if v, ok := ctx.Bindings.Text(key, ctx.Current); ok {
		return v
	}
	return stringify(ctx.accessorValue(key))
}

func boundBool(key string, ctx Context) bool {
	if v, ok := ctx.Bindings.Bool(key, ctx.Current); ok {
		return v
	}
	b, _ := ctx.accessorValue(key).(bool)
	return b
}

func boundFloat(key string, ctx Context) float64 {
	if v, ok := ctx.Bindings.Double(key, ctx.Current); ok {
		return v
	}
	switch t := ctx.accessorValue(key).(type) {
	case float64:
		return t
	case int:
		return float64(t)
	}
	return 0
}

func boundInt(key string, ctx Context) int {
	if v, ok := ctx.Bindings.Int(key, ctx.Current); ok {
		return v
	}
	switch t := ctx.accessorValue(key).(type) {
	case int:
		return t
	case float64:
		return int(t)
	}
	return 0
}

func boundDate(key string, ctx Context) time.Time {
	if v, ok := ctx.Bindings.Date(key, ctx.Current); ok {
		return v
	}
	t, _ := ctx.accessorValue(key).(time.Time)
	return t
}

// boundSelection also accepts a record field holding the option text itself,
// mapping it to its index.
func boundSelection(key string, options []string, ctx Context) int {
	if v, ok := ctx.Bindings.Selection(key, ctx.Current); ok {
		return v
	}
	switch t := ctx.accessorValue(key).(type) {
	case int:
		return t
	case string:
		for i, o := range options {
			if o == t {
				return i
			}
		}
	}
	return 0
}
