package sdui

import "fmt"

// SchemaDecodeError reports a malformed schema document. Decode errors are
// hard failures: the loader surfaces them and no screen is produced. Path
// identifies the offending node in the JSON document, e.g.
// "component.children[2].itemView".
type SchemaDecodeError struct {
	Path string
	Err  error
}

func (e *SchemaDecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema decode: %v", e.Err)
	}
	return fmt.Sprintf("schema decode at %s: %v", e.Path, e.Err)
}

func (e *SchemaDecodeError) Unwrap() error { return e.Err }

// NodeValidationError reports a node missing an attribute its kind requires.
// Validation errors are contained: the renderer converts them to inline
// error views and siblings render unaffected.
type NodeValidationError struct {
	NodeID  string
	Kind    Kind
	Message string
}

func (e *NodeValidationError) Error() string {
	return fmt.Sprintf("node %q (%s): %s", e.NodeID, e.Kind, e.Message)
}

// UnsupportedVersionError reports a screen whose version is outside the
// supported range. The render still succeeds, producing a single
// whole-screen fallback view instead of the component tree.
type UnsupportedVersionError struct {
	Version int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("screen version %d unsupported (max %d)", e.Version, MaxSchemaVersion)
}
