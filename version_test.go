package sdui

import (
	"errors"
	"strings"
	"testing"
)

func TestIsVersionSupported(t *testing.T) {
	cases := []struct {
		version int
		want    bool
	}{
		{0, false},
		{-1, false},
		{1, true},
		{2, true},
		{MaxSchemaVersion, true},
		{MaxSchemaVersion + 1, false},
	}
	for _, tc := range cases {
		if got := IsVersionSupported(tc.version); got != tc.want {
			t.Errorf("IsVersionSupported(%d): expected %v, got %v", tc.version, tc.want, got)
		}
	}
}

func TestCheckVersion(t *testing.T) {
	if err := CheckVersion(&Screen{Version: 1}); err != nil {
		t.Errorf("version 1 should pass: %v", err)
	}
	err := CheckVersion(&Screen{Version: MaxSchemaVersion + 1})
	var verr *UnsupportedVersionError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *UnsupportedVersionError, got %v", err)
	}
	if verr.Version != MaxSchemaVersion+1 {
		t.Errorf("expected version %d, got %d", MaxSchemaVersion+1, verr.Version)
	}
}

// A too-new screen renders as exactly one fallback view with zero node-level
// error views, even when the tree is full of nodes that would fail
// validation.
func TestVersionGateFallback(t *testing.T) {
	screen, err := DecodeScreen([]byte(`{
		"version": 4,
		"component": {"id": "root", "type": "vstack", "children": [
			{"id": "broken", "type": "textField", "label": "no key"},
			{"id": "t", "type": "text", "text": "hello"}
		]}
	}`))
	if err != nil {
		t.Fatal(err)
	}

	v := newTestEngine().RenderScreen(screen, testContext())

	fb := asNode(t, v)
	if fb.op != "fallback" {
		t.Fatalf("expected fallback view, got %s", fb.op)
	}
	if !strings.Contains(fb.message, "4") {
		t.Errorf("fallback should name the schema version: %q", fb.message)
	}
	if icons := collect(v, "icon"); len(icons) != 0 {
		t.Errorf("expected zero inline error views, found %d", len(icons))
	}
	if texts := collect(v, "text"); len(texts) != 0 {
		t.Errorf("no component should have rendered, found %d texts", len(texts))
	}
}
