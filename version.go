package sdui

import "fmt"

// MaxSchemaVersion is the newest schema version this build can render.
// Backends may serve older documents indefinitely; they may not serve newer
// ones to an app that has not caught up.
const MaxSchemaVersion = 3

// IsVersionSupported reports whether a screen version is renderable,
// 1 through MaxSchemaVersion inclusive.
func IsVersionSupported(v int) bool {
	return v >= 1 && v <= MaxSchemaVersion
}

// CheckVersion returns an *UnsupportedVersionError when the screen's version
// is out of range. Rendering never needs this, since the renderer substitutes
// the fallback view on its own, but schema vetting wants the hard error.
func CheckVersion(screen *Screen) error {
	if !IsVersionSupported(screen.Version) {
		return &UnsupportedVersionError{Version: screen.Version}
	}
	return nil
}

// versionFallback is the whole-screen replacement for an unsupported
// version. Version skew means the tree may be structurally unreadable, so
// no attempt is made to render any of it; one centered message replaces
// everything.
func versionFallback(p Platform, version int) View {
	return p.Fallback(
		"Update required",
		fmt.Sprintf("This screen needs schema version %d support; this app renders up to version %d. Update the app to continue.", version, MaxSchemaVersion),
	)
}
