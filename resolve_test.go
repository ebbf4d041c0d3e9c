package sdui

import (
	"testing"
	"time"
)

func TestResolveText(t *testing.T) {
	ctx := testContext().WithCurrentRecord(&testJob{id: "a", customer: "Acme Labs"})

	t.Run("StaticWins", func(t *testing.T) {
		c := &Component{Kind: KindText, Text: "Route 12", ValueKey: "customer"}
		if got := ResolveText(c, ctx); got != "Route 12" {
			t.Errorf("expected static text, got %q", got)
		}
	})

	t.Run("BoundField", func(t *testing.T) {
		c := &Component{Kind: KindText, ValueKey: "customer"}
		if got := ResolveText(c, ctx); got != "Acme Labs" {
			t.Errorf("expected Acme Labs, got %q", got)
		}
	})

	t.Run("NothingResolves", func(t *testing.T) {
		c := &Component{Kind: KindText}
		if got := ResolveText(c, ctx); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})

	t.Run("NoRecord", func(t *testing.T) {
		c := &Component{Kind: KindText, ValueKey: "customer"}
		if got := ResolveText(c, testContext()); got != "" {
			t.Errorf("expected empty without record, got %q", got)
		}
	})

	t.Run("UnknownAccessor", func(t *testing.T) {
		c := &Component{Kind: KindText, ValueKey: "nope"}
		if got := ResolveText(c, ctx); got != "" {
			t.Errorf("expected empty for unknown accessor, got %q", got)
		}
	})
}

func TestResolveLabel(t *testing.T) {
	ctx := testContext().WithCurrentRecord(&testJob{id: "a", status: "pending"})

	t.Run("RecordFieldWins", func(t *testing.T) {
		c := &Component{Kind: KindStatusChip, ValueKey: "status", Label: "Unknown"}
		if got := ResolveLabel(c, ctx); got != "pending" {
			t.Errorf("expected pending, got %q", got)
		}
	})

	t.Run("FallsBackToStatic", func(t *testing.T) {
		c := &Component{Kind: KindStatusChip, ValueKey: "notes", Label: "No notes"}
		if got := ResolveLabel(c, ctx); got != "No notes" {
			t.Errorf("expected static label, got %q", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		c := &Component{Kind: KindBadge}
		if got := ResolveLabel(c, ctx); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})
}

func TestStringify(t *testing.T) {
	when := time.Date(2026, 8, 14, 15, 4, 0, 0, time.UTC)
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "hello", "hello"},
		{"True", true, "true"},
		{"False", false, "false"},
		{"Int", 42, "42"},
		{"Float", 2.5, "2.5"},
		{"Time", when, "Aug 14, 2026 3:04 PM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stringify(tc.in); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"Nil", nil, false},
		{"EmptyString", "", false},
		{"String", "x", true},
		{"False", false, false},
		{"True", true, true},
		{"Zero", 0, false},
		{"Int", 3, true},
		{"ZeroFloat", 0.0, false},
		{"Float", 0.1, true},
		{"ZeroTime", time.Time{}, false},
		{"Time", time.Now(), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truthy(tc.in); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestResolveCondition(t *testing.T) {
	t.Run("AccessorValue", func(t *testing.T) {
		ctx := testContext().WithCurrentRecord(&testJob{id: "a", notes: "check attic"})
		if !resolveCondition("notes", ctx) {
			t.Errorf("non-empty field should be visible")
		}
		if resolveCondition("customer", ctx) {
			t.Errorf("empty field should be hidden")
		}
	})

	t.Run("StoreBoolWins", func(t *testing.T) {
		ctx := testContext().WithCurrentRecord(&testJob{id: "a", notes: "check attic"})
		ctx.Bindings.SetBool("notes", ctx.Current, false)
		if resolveCondition("notes", ctx) {
			t.Errorf("bound false should hide despite record data")
		}
		ctx.Bindings.SetBool("notes", ctx.Current, true)
		if !resolveCondition("notes", ctx) {
			t.Errorf("bound true should show")
		}
	})

	t.Run("StoreText", func(t *testing.T) {
		ctx := testContext().WithCurrentRecord(&testJob{id: "a"})
		ctx.Bindings.SetText("extra", ctx.Current, "")
		if resolveCondition("extra", ctx) {
			t.Errorf("bound empty text should hide")
		}
		ctx.Bindings.SetText("extra", ctx.Current, "yes")
		if !resolveCondition("extra", ctx) {
			t.Errorf("bound non-empty text should show")
		}
	})
}

func TestResolveNumber(t *testing.T) {
	ctx := testContext().WithCurrentRecord(&testJob{id: "a", progress: 0.6, priority: 2})

	if got := resolveNumber("progress", ctx); got != 0.6 {
		t.Errorf("expected 0.6, got %v", got)
	}
	if got := resolveNumber("priority", ctx); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
	if got := resolveNumber("", ctx); got != 0 {
		t.Errorf("expected 0 for empty key, got %v", got)
	}

	ctx.Bindings.SetDouble("progress", ctx.Current, 0.9)
	if got := resolveNumber("progress", ctx); got != 0.9 {
		t.Errorf("bound value should win, got %v", got)
	}
}

func TestBoundReadThrough(t *testing.T) {
	when := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	jobA := &testJob{id: "a", notes: "wasp nest", done: true, progress: 0.25, priority: 3, scheduled: when, status: "inProgress"}
	ctx := testContext().WithCurrentRecord(jobA)

	t.Run("RecordShowsThrough", func(t *testing.T) {
		if got := boundText("notes", ctx); got != "wasp nest" {
			t.Errorf("expected record notes, got %q", got)
		}
		if !boundBool("done", ctx) {
			t.Errorf("expected record bool")
		}
		if got := boundFloat("progress", ctx); got != 0.25 {
			t.Errorf("expected 0.25, got %v", got)
		}
		if got := boundInt("priority", ctx); got != 3 {
			t.Errorf("expected 3, got %v", got)
		}
		if got := boundDate("scheduled", ctx); !got.Equal(when) {
			t.Errorf("expected scheduled date, got %v", got)
		}
		opts := []string{"pending", "inProgress", "completed"}
		if got := boundSelection("status", opts, ctx); got != 1 {
			t.Errorf("expected option index 1, got %d", got)
		}
	})

	t.Run("EditWins", func(t *testing.T) {
		ctx.Bindings.SetText("notes", ctx.Current, "resolved")
		if got := boundText("notes", ctx); got != "resolved" {
			t.Errorf("edit should win, got %q", got)
		}
		// Even an empty edit wins over record data.
		ctx.Bindings.SetText("notes", ctx.Current, "")
		if got := boundText("notes", ctx); got != "" {
			t.Errorf("empty edit should win, got %q", got)
		}
	})

	t.Run("TypeMismatchIsZero", func(t *testing.T) {
		if boundBool("notes", ctx.WithCurrentRecord(&testJob{id: "b", notes: "text"})) {
			t.Errorf("string field read as bool should be false")
		}
	})

	t.Run("NothingResolves", func(t *testing.T) {
		bare := testContext()
		if got := boundText("notes", bare); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
		if got := boundInt("priority", bare); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}
