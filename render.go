package sdui

import (
	"time"

	"go.uber.org/zap"
)

// RenderScreen renders a whole screen against a context. It is total: an
// unsupported version yields the fallback view, an invalid node yields an
// inline error view in its place, and everything else renders around it.
// Re-rendering with an unchanged screen and context is idempotent apart
// from cache recency bookkeeping.
func (e *Engine) RenderScreen(screen *Screen, ctx Context) View {
	if screen == nil || screen.Component == nil {
		return e.platform.Fallback("Nothing to show", "The screen failed to load. Pull to refresh or contact support.")
	}
	if ctx.Bindings == nil {
		ctx.Bindings = NewBindingStore()
	}
	if !IsVersionSupported(screen.Version) {
		e.log.Warn("unsupported schema version",
			zap.Int("version", screen.Version),
			zap.Int("max", MaxSchemaVersion))
		return versionFallback(e.platform, screen.Version)
	}
	return e.renderNode(screen.Component, ctx)
}

// RenderComponent renders one subtree against a context, the same way a
// screen render would reach it. Hosts use it for partial refreshes.
func (e *Engine) RenderComponent(c *Component, ctx Context) View {
	if c == nil {
		return e.platform.Group(nil)
	}
	if ctx.Bindings == nil {
		ctx.Bindings = NewBindingStore()
	}
	return e.renderNode(c, ctx)
}

func (e *Engine) renderNode(c *Component, ctx Context) View {
	return e.render(c, ctx, c.Kind.memoizable())
}

// render is the per-node pipeline: validate, dispatch, style, motion, in
// that order, with the cache wrapped around the whole of it for memoizable
// subtrees. memo widens the candidate set for list rows, which are cached
// whatever their root kind.
func (e *Engine) render(c *Component, ctx Context, memo bool) View {
	if err := ValidateComponent(c); err != nil {
		e.log.Warn("invalid node",
			zap.String("id", err.NodeID),
			zap.String("kind", err.Kind.String()),
			zap.String("path", c.path),
			zap.String("reason", err.Message))
		return ErrorView(e.platform, err.Message)
	}

	// Subtrees containing inputs read the mutable binding store, and subtrees
	// containing lists read the record collection; neither is in the
	// signature, so both render fresh every pass. List rows themselves are
	// fine: their entries carry the row's record id, which InvalidateRecord
	// keys on.
	cacheable := e.cache != nil && memo && !c.hasInput && !c.hasList
	var sig uint64
	if cacheable {
		sig = CacheSignature(c.path, c, ctx)
		if v, ok := e.cache.Get(sig); ok {
			return v
		}
	}

	v := e.dispatch(c, ctx)
	v = ApplyStyling(e.platform, v, c, ctx)
	v = ApplyMotion(e.platform, v, c)

	if cacheable {
		e.cache.Put(sig, scopeID(ctx.Current), v)
	}
	return v
}

func scopeID(r Record) string {
	if r == nil {
		return GlobalScope
	}
	return r.RecordID()
}

// dispatch is the one exhaustive switch over component kinds. New kinds are
// added here and only here.
func (e *Engine) dispatch(c *Component, ctx Context) View {
	p := e.platform
	switch c.Kind {

	// Layout.
	case KindVStack:
		return p.Stack(AxisVertical, c.Spacing, e.renderChildren(c, ctx))
	case KindHStack:
		return p.Stack(AxisHorizontal, c.Spacing, e.renderChildren(c, ctx))
	case KindZStack:
		return p.Stack(AxisDepth, c.Spacing, e.renderChildren(c, ctx))
	case KindScroll:
		return p.Scroll(p.Stack(AxisVertical, c.Spacing, e.renderChildren(c, ctx)))
	case KindGrid:
		return p.Grid(c.Columns, c.Spacing, e.renderChildren(c, ctx))
	case KindSection:
		return p.Stack(AxisVertical, c.Spacing, e.sectionChildren(c, ctx))
	case KindCard:
		return e.renderCard(c, ctx)
	case KindSpacer:
		return p.Spacer()
	case KindDivider:
		return p.Divider()

	// Collection and visibility.
	case KindList:
		return e.renderList(c, ctx)
	case KindConditional:
		if resolveCondition(c.ConditionKey, ctx) {
			return p.Group(e.renderChildren(c, ctx))
		}
		return p.Group(nil)

	// Content.
	case KindText:
		return p.Text(ResolveText(c, ctx), textStyleFor(c, ctx))
	case KindImage:
		return p.Image(ResolveText(c, ctx))
	case KindIcon:
		return p.Icon(ResolveText(c, ctx))
	case KindMarkdown:
		return p.Markdown(ResolveText(c, ctx))
	case KindProgress:
		return p.Progress(resolveNumber(c.ValueKey, ctx), ResolveLabel(c, ctx))
	case KindGauge:
		min, max, _ := numericBounds(c, 0, 100, 0)
		return p.Gauge(resolveNumber(c.ValueKey, ctx), min, max, ResolveLabel(c, ctx))
	case KindBadge:
		text := ResolveText(c, ctx)
		if text == "" {
			text = c.Label
		}
		return p.Badge(text, textStyleFor(c, ctx))
	case KindAlertBanner:
		return e.renderAlertBanner(c, ctx)
	case KindStatusChip:
		return e.renderStatusChip(c, ctx)

	// Interactive.
	case KindButton:
		return p.Button(buttonLabel(c), textStyleFor(c, ctx), e.trigger(c.ActionID, ctx))
	case KindLink:
		return p.Link(buttonLabel(c), textStyleFor(c, ctx), e.trigger(c.ActionID, ctx))
	case KindSignatureBox:
		return p.SignatureBox(buttonLabel(c), e.trigger(c.ActionID, ctx))

	// Inputs.
	case KindTextField, KindTextArea, KindToggle, KindSlider, KindStepper,
		KindPicker, KindSegmented, KindDatePicker, KindChecklistRow:
		return e.renderInput(c, ctx)
	}
	return ErrorView(p, "unrenderable component kind")
}

func (e *Engine) renderChildren(c *Component, ctx Context) []View {
	views := make([]View, 0, len(c.Children))
	for _, child := range c.Children {
		views = append(views, e.renderNode(child, ctx))
	}
	return views
}

// sectionChildren prepends the section header when the node carries a label.
func (e *Engine) sectionChildren(c *Component, ctx Context) []View {
	children := e.renderChildren(c, ctx)
	if c.Label == "" {
		return children
	}
	header := e.platform.Text(c.Label, TextStyle{
		Font:       FontCaption,
		Weight:     WeightSemibold,
		Foreground: ctx.palette().Muted,
	})
	return append([]View{header}, children...)
}

const defaultCardRadius = 2

// renderCard stacks the children on the palette surface. An explicit
// backgroundColor opts out of the default surface; ApplyStyling applies it
// afterwards like any other node's.
func (e *Engine) renderCard(c *Component, ctx Context) View {
	p := e.platform
	children := e.renderChildren(c, ctx)
	if c.Label != "" {
		title := p.Text(c.Label, TextStyle{Font: FontHeadline, Weight: WeightSemibold})
		children = append([]View{title}, children...)
	}
	inner := p.Stack(AxisVertical, c.Spacing, children)
	if c.BackgroundColor != "" {
		return inner
	}
	radius := c.CornerRadius
	if radius <= 0 {
		radius = defaultCardRadius
	}
	return p.Background(p.Pad(inner, UniformInsets(1)), ctx.palette().Surface, radius)
}

// renderList iterates the record collection, derives one context per row
// with WithCurrentRecord, and renders the shared item template against
// each. Rows are memoized per record; the template tree is shared, so the
// record identity in the signature is what keeps rows distinct. Reorder is
// wired through to the platform when the action table carries a handler.
func (e *Engine) renderList(c *Component, ctx Context) View {
	var rows []View
	if ctx.Records != nil {
		rows = make([]View, 0, ctx.Records.Len())
		for _, r := range ctx.Records.Records() {
			rowCtx := ctx.WithCurrentRecord(r)
			rows = append(rows, e.render(c.ItemView, rowCtx, true))
		}
	}
	var reorder func(from, to int)
	if ctx.Actions != nil {
		reorder = ctx.Actions.Reorder
	}
	return e.platform.List(rows, reorder)
}

func (e *Engine) renderAlertBanner(c *Component, ctx Context) View {
	p := e.platform
	fill := ResolveColor(c.BackgroundColor, ctx)
	if fill.IsZero() {
		fill = ctx.palette().Warning
	}
	row := p.Stack(AxisHorizontal, 1, []View{
		p.Icon("alert"),
		p.Text(ResolveText(c, ctx), TextStyle{Foreground: namedColors["white"], Weight: WeightSemibold}),
	})
	return p.Background(p.Pad(row, UniformInsets(1)), fill, defaultCardRadius)
}

// renderStatusChip shows the bound state value as a small pill colored by
// the palette's state table.
func (e *Engine) renderStatusChip(c *Component, ctx Context) View {
	p := e.platform
	text := ResolveLabel(c, ctx)
	fill := ctx.palette().StateColor(stringify(ctx.accessorValue(c.ValueKey)))
	if fill.IsZero() {
		fill = ctx.palette().Muted
	}
	chip := p.Text(text, TextStyle{Foreground: namedColors["white"], Font: FontCaption, Weight: WeightSemibold})
	return p.Background(p.Pad(chip, UniformInsets(1)), fill, 8)
}

// renderInput is the sub-dispatcher for stateful kinds. Each binds two-way:
// reads come from the binding store with the record field showing through
// until the first edit, writes land in the store scoped to the record in
// scope at render time.
func (e *Engine) renderInput(c *Component, ctx Context) View {
	p := e.platform
	key := c.ValueKey
	switch c.Kind {
	case KindTextField:
		return p.TextField(c.Label, textBinding(key, ctx))
	case KindTextArea:
		return p.TextArea(c.Label, textBinding(key, ctx))
	case KindToggle:
		return p.Toggle(c.Label, boolBinding(key, ctx))
	case KindSlider:
		min, max, step := numericBounds(c, 0, 100, 1)
		return p.Slider(c.Label, min, max, step, floatBinding(key, ctx))
	case KindStepper:
		min, max, step := numericBounds(c, 0, 100, 1)
		return p.Stepper(c.Label, min, max, step, intBinding(key, ctx))
	case KindPicker:
		return p.Picker(c.Label, c.Options, selectionBinding(key, c.Options, ctx))
	case KindSegmented:
		return p.Segmented(c.Label, c.Options, selectionBinding(key, c.Options, ctx))
	case KindDatePicker:
		return p.DatePicker(c.Label, dateBinding(key, ctx))
	case KindChecklistRow:
		label := c.Label
		if label == "" {
			label = c.Text
		}
		return p.Toggle(label, boolBinding(key, ctx))
	}
	return ErrorView(p, "unrenderable input kind")
}

// trigger builds the activation closure for an interactive node. The action
// is looked up at trigger time, not render time, so schemas can name actions
// the running binary has not registered: the control renders normally and
// activating it does nothing.
func (e *Engine) trigger(actionID string, ctx Context) func() {
	if actionID == "" {
		return nil
	}
	current := ctx.Current
	actions := ctx.Actions
	return func() {
		if actions == nil {
			return
		}
		fn, ok := actions.Lookup(actionID)
		if !ok {
			e.log.Debug("unregistered action", zap.String("actionId", actionID))
			return
		}
		fn(current)
	}
}

func buttonLabel(c *Component) string {
	if c.Label != "" {
		return c.Label
	}
	return c.Text
}

// numericBounds resolves min/max/step with per-kind defaults.
func numericBounds(c *Component, defMin, defMax, defStep float64) (min, max, step float64) {
	min, max, step = defMin, defMax, defStep
	if c.MinValue != nil {
		min = *c.MinValue
	}
	if c.MaxValue != nil {
		max = *c.MaxValue
	}
	if c.Step != nil {
		step = *c.Step
	}
	return min, max, step
}

// Binding handle constructors, closing over the key and the context's
// record scope.

func textBinding(key string, ctx Context) TextBinding {
	return TextBinding{
		Get: func() string { return boundText(key, ctx) },
		Set: func(v string) { ctx.Bindings.SetText(key, ctx.Current, v) },
	}
}

func boolBinding(key string, ctx Context) BoolBinding {
	return BoolBinding{
		Get: func() bool { return boundBool(key, ctx) },
		Set: func(v bool) { ctx.Bindings.SetBool(key, ctx.Current, v) },
	}
}

func floatBinding(key string, ctx Context) FloatBinding {
	return FloatBinding{
		Get: func() float64 { return boundFloat(key, ctx) },
		Set: func(v float64) { ctx.Bindings.SetDouble(key, ctx.Current, v) },
	}
}

func intBinding(key string, ctx Context) IntBinding {
	return IntBinding{
		Get: func() int { return boundInt(key, ctx) },
		Set: func(v int) { ctx.Bindings.SetInt(key, ctx.Current, v) },
	}
}

func dateBinding(key string, ctx Context) DateBinding {
	return DateBinding{
		Get: func() time.Time { return boundDate(key, ctx) },
		Set: func(v time.Time) { ctx.Bindings.SetDate(key, ctx.Current, v) },
	}
}

func selectionBinding(key string, options []string, ctx Context) SelectionBinding {
	return SelectionBinding{
		Get: func() int { return boundSelection(key, options, ctx) },
		Set: func(v int) { ctx.Bindings.SetSelection(key, ctx.Current, v) },
	}
}
