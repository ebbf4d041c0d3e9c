package fyneview

import (
	"os"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	sdui "github.com/jbriggs-source/PestGenie-sub002"
)

func TestMain(m *testing.M) {
	test.NewApp()
	os.Exit(m.Run())
}

func TestScreenBuildsWidgetTree(t *testing.T) {
	screen, err := sdui.DecodeScreen([]byte(`{
		"version": 1,
		"component": {"id": "root", "type": "vstack", "children": [
			{"id": "t1", "type": "text", "text": "Hello"},
			{"id": "b1", "type": "button", "label": "Go", "actionId": "missing"}
		]}
	}`))
	if err != nil {
		t.Fatal(err)
	}

	view := sdui.New(New()).RenderScreen(screen, sdui.NewContext())

	box, ok := Object(view).(*fyne.Container)
	if !ok {
		t.Fatalf("expected container root, got %T", Object(view))
	}
	if len(box.Objects) != 2 {
		t.Fatalf("expected 2 children, got %d", len(box.Objects))
	}

	label, ok := box.Objects[0].(*widget.Label)
	if !ok || label.Text != "Hello" {
		t.Errorf("expected Hello label, got %T", box.Objects[0])
	}
	btn, ok := box.Objects[1].(*widget.Button)
	if !ok || btn.Text != "Go" {
		t.Fatalf("expected Go button, got %T", box.Objects[1])
	}
	test.Tap(btn) // unregistered action, must not panic
}

func TestToggleRoundTrip(t *testing.T) {
	on := true
	binding := sdui.BoolBinding{
		Get: func() bool { return on },
		Set: func(v bool) { on = v },
	}

	check, ok := New().Toggle("Done", binding).(*widget.Check)
	if !ok {
		t.Fatalf("expected check widget")
	}
	if !check.Checked {
		t.Errorf("check should seed from the binding")
	}
	check.SetChecked(false)
	if on {
		t.Errorf("unchecking should write through")
	}
}

func TestEntryWritesThrough(t *testing.T) {
	var stored string
	binding := sdui.TextBinding{
		Get: func() string { return "seed" },
		Set: func(v string) { stored = v },
	}

	entry, ok := New().TextField("", binding).(*widget.Entry)
	if !ok {
		t.Fatalf("expected entry widget")
	}
	if entry.Text != "seed" {
		t.Errorf("entry should seed from the binding, got %q", entry.Text)
	}
	entry.SetText("edited")
	if stored != "edited" {
		t.Errorf("edit should write through, got %q", stored)
	}
}

func TestPickerSelection(t *testing.T) {
	selected := 0
	binding := sdui.SelectionBinding{
		Get: func() int { return selected },
		Set: func(v int) { selected = v },
	}

	sel, ok := New().Picker("", []string{"pending", "inProgress", "completed"}, binding).(*widget.Select)
	if !ok {
		t.Fatalf("expected select widget")
	}
	if sel.SelectedIndex() != 0 {
		t.Errorf("select should seed from the binding, got %d", sel.SelectedIndex())
	}
	sel.SetSelected("completed")
	if selected != 2 {
		t.Errorf("selection should write through, got %d", selected)
	}
}

func TestDateEntryParses(t *testing.T) {
	var stored time.Time
	binding := sdui.DateBinding{
		Get: func() time.Time { return time.Time{} },
		Set: func(v time.Time) { stored = v },
	}

	entry, ok := New().DatePicker("", binding).(*widget.Entry)
	if !ok {
		t.Fatalf("expected entry widget")
	}
	entry.SetText("2026-08-23")
	if stored.Year() != 2026 || stored.Month() != time.August || stored.Day() != 23 {
		t.Errorf("date should parse and write through, got %v", stored)
	}

	entry.SetText("not a date")
	if stored.Year() != 2026 {
		t.Errorf("invalid input should leave the binding untouched, got %v", stored)
	}
}

func TestGaugeBounds(t *testing.T) {
	bar, ok := New().Gauge(30, 0, 60, "").(*widget.ProgressBar)
	if !ok {
		t.Fatalf("expected progress bar")
	}
	if bar.Min != 0 || bar.Max != 60 || bar.Value != 30 {
		t.Errorf("unexpected gauge: min %v max %v value %v", bar.Min, bar.Max, bar.Value)
	}
}

func TestIconMapping(t *testing.T) {
	cases := map[string]fyne.Resource{
		"warning": theme.WarningIcon(),
		"alert":   theme.ErrorIcon(),
		"check":   theme.ConfirmIcon(),
		"unknown": theme.HelpIcon(),
	}
	for name, want := range cases {
		if got := iconResource(name); got.Name() != want.Name() {
			t.Errorf("%s: expected %s, got %s", name, want.Name(), got.Name())
		}
	}
}

func TestStackDepthOverlays(t *testing.T) {
	p := New()
	v := p.Stack(sdui.AxisDepth, 0, []sdui.View{
		p.Divider(),
		p.Text("on top", sdui.TextStyle{}),
	})
	box, ok := Object(v).(*fyne.Container)
	if !ok || len(box.Objects) != 2 {
		t.Fatalf("expected stack container with 2 layers")
	}
}

func TestStackSpacingInsertsGaps(t *testing.T) {
	p := New()
	v := p.Stack(sdui.AxisVertical, 2, []sdui.View{
		p.Text("a", sdui.TextStyle{}),
		p.Text("b", sdui.TextStyle{}),
	})
	box := Object(v).(*fyne.Container)
	if len(box.Objects) != 3 {
		t.Errorf("expected gap between children, got %d objects", len(box.Objects))
	}
}

func TestAnimatedWrapsContent(t *testing.T) {
	label := widget.NewLabel("moving")
	spec := sdui.AnimationSpec{Type: sdui.AnimationEaseIn, Duration: 0.1}
	a, ok := New().Animate(label, spec).(*animated)
	if !ok {
		t.Fatalf("expected animated wrapper")
	}

	r := test.WidgetRenderer(a)
	if len(r.Objects()) != 1 || r.Objects()[0] != label {
		t.Errorf("wrapper should expose its content")
	}
	r.Layout(fyne.NewSize(120, 40))
	if label.Size().Width != 120 {
		t.Errorf("content should fill the wrapper, got %v", label.Size())
	}
}

func TestCurveMapping(t *testing.T) {
	types := []sdui.AnimationType{
		sdui.AnimationLinear, sdui.AnimationEaseIn, sdui.AnimationEaseOut,
		sdui.AnimationEaseInOut, sdui.AnimationSpring, sdui.AnimationNone,
	}
	for _, at := range types {
		if curveFor(at) == nil {
			t.Errorf("nil curve for %v", at)
		}
	}
}
