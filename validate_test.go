package sdui

import (
	"strings"
	"testing"
)

func TestValidateComponent(t *testing.T) {
	t.Run("InputsRequireValueKey", func(t *testing.T) {
		inputs := []Kind{
			KindTextField, KindTextArea, KindToggle, KindSlider, KindStepper,
			KindPicker, KindSegmented, KindDatePicker, KindChecklistRow,
		}
		for _, kind := range inputs {
			t.Run(kind.String(), func(t *testing.T) {
				err := ValidateComponent(&Component{ID: "x", Kind: kind})
				if err == nil {
					t.Fatalf("expected validation failure")
				}
				if !strings.Contains(err.Message, "valueKey") {
					t.Errorf("message should mention valueKey: %q", err.Message)
				}
				if err.NodeID != "x" {
					t.Errorf("expected node id x, got %q", err.NodeID)
				}

				if got := ValidateComponent(&Component{ID: "x", Kind: kind, ValueKey: "f"}); got != nil {
					t.Errorf("valid input rejected: %v", got)
				}
			})
		}
	})

	t.Run("List", func(t *testing.T) {
		if err := ValidateComponent(&Component{ID: "l", Kind: KindList}); err == nil {
			t.Errorf("list without itemView should fail")
		}
		ok := &Component{ID: "l", Kind: KindList, ItemView: &Component{ID: "r", Kind: KindText, Text: "x"}}
		if err := ValidateComponent(ok); err != nil {
			t.Errorf("valid list rejected: %v", err)
		}
	})

	t.Run("Grid", func(t *testing.T) {
		if err := ValidateComponent(&Component{ID: "g", Kind: KindGrid}); err == nil {
			t.Errorf("grid without columns should fail")
		}
		if err := ValidateComponent(&Component{ID: "g", Kind: KindGrid, Columns: 2}); err != nil {
			t.Errorf("valid grid rejected: %v", err)
		}
	})

	t.Run("Conditional", func(t *testing.T) {
		if err := ValidateComponent(&Component{ID: "c", Kind: KindConditional}); err == nil {
			t.Errorf("conditional without conditionKey should fail")
		}
		if err := ValidateComponent(&Component{ID: "c", Kind: KindConditional, ConditionKey: "k"}); err != nil {
			t.Errorf("valid conditional rejected: %v", err)
		}
	})

	t.Run("MediaNeedsSource", func(t *testing.T) {
		for _, kind := range []Kind{KindImage, KindIcon, KindMarkdown} {
			if err := ValidateComponent(&Component{ID: "m", Kind: kind}); err == nil {
				t.Errorf("%s without source should fail", kind)
			}
			if err := ValidateComponent(&Component{ID: "m", Kind: kind, Text: "x"}); err != nil {
				t.Errorf("%s with text rejected: %v", kind, err)
			}
			if err := ValidateComponent(&Component{ID: "m", Kind: kind, ValueKey: "f"}); err != nil {
				t.Errorf("%s with valueKey rejected: %v", kind, err)
			}
		}
	})

	t.Run("Gauge", func(t *testing.T) {
		if err := ValidateComponent(&Component{ID: "g", Kind: KindGauge}); err == nil {
			t.Errorf("gauge without valueKey should fail")
		}
		if err := ValidateComponent(&Component{ID: "g", Kind: KindGauge, ValueKey: "progress"}); err != nil {
			t.Errorf("valid gauge rejected: %v", err)
		}
	})

	t.Run("UnconstrainedKindsPass", func(t *testing.T) {
		for _, kind := range []Kind{KindVStack, KindText, KindButton, KindSpacer, KindDivider, KindBadge} {
			if err := ValidateComponent(&Component{ID: "n", Kind: kind}); err != nil {
				t.Errorf("%s should validate bare: %v", kind, err)
			}
		}
	})
}

func TestErrorView(t *testing.T) {
	v := ErrorView(testPlatform{}, "textField requires a valueKey")

	outer := undecorate(v)
	if outer.op != "stack" || outer.axis != AxisHorizontal {
		t.Fatalf("expected horizontal stack, got %+v", outer)
	}
	icons := collect(v, "icon")
	if len(icons) != 1 || icons[0].text != "warning" {
		t.Errorf("expected a warning icon, got %+v", icons)
	}
	texts := collect(v, "text")
	if len(texts) != 1 || !strings.Contains(texts[0].text, "valueKey") {
		t.Errorf("expected message text, got %+v", texts)
	}
	bg := asNode(t, v)
	if bg.op != "background" || bg.fill.IsZero() {
		t.Errorf("expected bounded fill, got %+v", bg)
	}
}

func TestLint(t *testing.T) {
	screen, err := DecodeScreen([]byte(`{
		"version": 1,
		"component": {"id": "root", "type": "vstack", "children": [
			{"id": "ok", "type": "text", "text": "fine"},
			{"id": "bad1", "type": "textField", "label": "Notes"},
			{"id": "jobs", "type": "list", "itemView": {"id": "bad2", "type": "gauge"}}
		]}
	}`))
	if err != nil {
		t.Fatal(err)
	}

	errs := Lint(screen)
	if len(errs) != 2 {
		t.Fatalf("expected 2 lint errors, got %d: %v", len(errs), errs)
	}
	if errs[0].NodeID != "bad1" || errs[1].NodeID != "bad2" {
		t.Errorf("unexpected order: %s, %s", errs[0].NodeID, errs[1].NodeID)
	}

	if got := Lint(nil); got != nil {
		t.Errorf("nil screen should lint clean")
	}
}
