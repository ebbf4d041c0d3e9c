package sdui

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
)

// Screen is one decoded schema document: a version and the root of an owned
// component tree. Screens are decoded once per session and never mutated
// afterwards; everything derived from the tree is computed at decode time.
type Screen struct {
	Version   int
	Component *Component
}

// Component is one node of the schema tree. Attributes are sparse: a kind
// uses the handful that apply to it and ignores the rest. Children order is
// render order and is preserved end to end.
type Component struct {
	ID   string
	Kind Kind

	Children []*Component
	ItemView *Component // list row template

	// Data binding.
	Text         string
	Label        string
	ValueKey     string
	ConditionKey string
	ActionID     string

	// Style.
	Spacing         float64
	Padding         float64
	BackgroundColor string
	ForegroundColor string
	Font            string
	FontWeight      string
	CornerRadius    float64

	// Layout hints.
	Columns  int
	Options  []string
	MinValue *float64
	MaxValue *float64
	Step     *float64

	Animation  *AnimationSpec
	Transition *TransitionSpec

	// Derived at decode time, immutable afterwards.
	path        string   // JSON path from the document root
	fingerprint uint64   // structural hash over kind, attributes, children
	refKeys     []string // sorted value/condition keys referenced in subtree
	hasInput    bool     // subtree contains a stateful input kind
	hasList     bool     // subtree contains a list kind
}

// rawComponent mirrors the wire format exactly. Unknown attributes are
// tolerated for forward compatibility; unknown type tags are not.
type rawComponent struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Children        []rawComponent  `json:"children,omitempty"`
	ItemView        *rawComponent   `json:"itemView,omitempty"`
	Text            string          `json:"text,omitempty"`
	Label           string          `json:"label,omitempty"`
	ValueKey        string          `json:"valueKey,omitempty"`
	ConditionKey    string          `json:"conditionKey,omitempty"`
	ActionID        string          `json:"actionId,omitempty"`
	Spacing         float64         `json:"spacing,omitempty"`
	Padding         float64         `json:"padding,omitempty"`
	BackgroundColor string          `json:"backgroundColor,omitempty"`
	ForegroundColor string          `json:"foregroundColor,omitempty"`
	Font            string          `json:"font,omitempty"`
	FontWeight      string          `json:"fontWeight,omitempty"`
	CornerRadius    float64         `json:"cornerRadius,omitempty"`
	Columns         int             `json:"columns,omitempty"`
	Options         []string        `json:"options,omitempty"`
	MinValue        *float64        `json:"minValue,omitempty"`
	MaxValue        *float64        `json:"maxValue,omitempty"`
	Step            *float64        `json:"step,omitempty"`
	Animation       *rawAnimation   `json:"animation,omitempty"`
	Transition      *rawTransition  `json:"transition,omitempty"`
}

type rawAnimation struct {
	Type     string  `json:"type"`
	Duration float64 `json:"duration,omitempty"`
}

type rawTransition struct {
	Type string `json:"type"`
}

type rawScreen struct {
	Version   int           `json:"version"`
	Component *rawComponent `json:"component"`
}

// DecodeScreen decodes a schema document. It fails with a *SchemaDecodeError
// naming the offending node path on malformed JSON, an unknown type tag, or
// a missing structurally required field (id, type). Per-kind required
// attributes are deliberately not checked here; ValidateComponent handles
// those at render time so one bad node cannot fail a whole screen load.
func DecodeScreen(data []byte) (*Screen, error) {
	var raw rawScreen
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &SchemaDecodeError{Err: err}
	}
	if raw.Component == nil {
		return nil, &SchemaDecodeError{Path: "component", Err: fmt.Errorf("missing root component")}
	}
	root, err := convertComponent(raw.Component, "component")
	if err != nil {
		return nil, err
	}
	return &Screen{Version: raw.Version, Component: root}, nil
}

func convertComponent(raw *rawComponent, path string) (*Component, error) {
	if raw.Type == "" {
		return nil, &SchemaDecodeError{Path: path, Err: fmt.Errorf("missing type")}
	}
	kind, ok := ParseKind(raw.Type)
	if !ok {
		return nil, &SchemaDecodeError{Path: path, Err: fmt.Errorf("unknown component type %q", raw.Type)}
	}
	if raw.ID == "" {
		return nil, &SchemaDecodeError{Path: path, Err: fmt.Errorf("missing id")}
	}

	c := &Component{
		ID:              raw.ID,
		Kind:            kind,
		path:            path,
		Text:            raw.Text,
		Label:           raw.Label,
		ValueKey:        raw.ValueKey,
		ConditionKey:    raw.ConditionKey,
		ActionID:        raw.ActionID,
		Spacing:         raw.Spacing,
		Padding:         raw.Padding,
		BackgroundColor: raw.BackgroundColor,
		ForegroundColor: raw.ForegroundColor,
		Font:            raw.Font,
		FontWeight:      raw.FontWeight,
		CornerRadius:    raw.CornerRadius,
		Columns:         raw.Columns,
		Options:         raw.Options,
		MinValue:        raw.MinValue,
		MaxValue:        raw.MaxValue,
		Step:            raw.Step,
	}
	if raw.Animation != nil {
		c.Animation = &AnimationSpec{Type: ParseAnimationType(raw.Animation.Type), Duration: raw.Animation.Duration}
	}
	if raw.Transition != nil {
		c.Transition = &TransitionSpec{Type: ParseTransitionType(raw.Transition.Type)}
	}

	for i := range raw.Children {
		child, err := convertComponent(&raw.Children[i], fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		c.Children = append(c.Children, child)
	}
	if raw.ItemView != nil {
		item, err := convertComponent(raw.ItemView, path+".itemView")
		if err != nil {
			return nil, err
		}
		c.ItemView = item
	}

	c.finalize()
	return c, nil
}

// finalize computes the derived metadata for a node whose subtrees are
// already finalized: the structural fingerprint, the set of binding keys the
// subtree references, and the stateful-subtree flags.
func (c *Component) finalize() {
	keys := make(map[string]struct{})
	if c.ValueKey != "" {
		keys[c.ValueKey] = struct{}{}
	}
	if c.ConditionKey != "" {
		keys[c.ConditionKey] = struct{}{}
	}
	c.hasInput = c.Kind.IsInput()
	c.hasList = c.Kind == KindList

	h := fnv.New64a()
	hashString := func(s string) { h.Write([]byte(s)); h.Write([]byte{0}) }
	hashFloat := func(f float64) { hashString(strconv.FormatFloat(f, 'g', -1, 64)) }

	hashString(c.Kind.String())
	hashString(c.ID)
	hashString(c.Text)
	hashString(c.Label)
	hashString(c.ValueKey)
	hashString(c.ConditionKey)
	hashString(c.ActionID)
	hashString(c.BackgroundColor)
	hashString(c.ForegroundColor)
	hashString(c.Font)
	hashString(c.FontWeight)
	hashFloat(c.Spacing)
	hashFloat(c.Padding)
	hashFloat(c.CornerRadius)
	hashString(strconv.Itoa(c.Columns))
	for _, o := range c.Options {
		hashString(o)
	}
	if c.MinValue != nil {
		hashFloat(*c.MinValue)
	}
	if c.MaxValue != nil {
		hashFloat(*c.MaxValue)
	}
	if c.Step != nil {
		hashFloat(*c.Step)
	}
	if c.Animation != nil {
		hashString(c.Animation.Type.String())
		hashFloat(c.Animation.Duration)
	}
	if c.Transition != nil {
		hashString(c.Transition.Type.String())
	}

	sub := append([]*Component(nil), c.Children...)
	if c.ItemView != nil {
		sub = append(sub, c.ItemView)
	}
	for _, s := range sub {
		hashString(strconv.FormatUint(s.fingerprint, 16))
		for _, k := range s.refKeys {
			keys[k] = struct{}{}
		}
		if s.hasInput {
			c.hasInput = true
		}
		if s.hasList {
			c.hasList = true
		}
	}

	c.refKeys = make([]string, 0, len(keys))
	for k := range keys {
		c.refKeys = append(c.refKeys, k)
	}
	sort.Strings(c.refKeys)
	for _, k := range c.refKeys {
		hashString(k)
	}
	c.fingerprint = h.Sum64()
}

// Path returns the node's JSON path from the document root, as decode error
// messages would spell it ("component.children[2]"). Empty for components
// built by hand rather than decoded.
func (c *Component) Path() string { return c.path }

// Fingerprint returns the structural hash computed at decode time. Equal
// fingerprints mean structurally identical subtrees (same kinds, attributes,
// and child order); it feeds the cache signature.
func (c *Component) Fingerprint() uint64 { return c.fingerprint }

// ReferencedKeys returns the sorted value/condition keys the subtree reads.
func (c *Component) ReferencedKeys() []string { return c.refKeys }

// ContainsInput reports whether any node in the subtree is an input kind.
func (c *Component) ContainsInput() bool { return c.hasInput }

// ContainsList reports whether any node in the subtree is a list kind.
func (c *Component) ContainsList() bool { return c.hasList }

// Walk visits the component and its subtree in render order, item templates
// last within each node.
func (c *Component) Walk(fn func(*Component)) {
	fn(c)
	for _, child := range c.Children {
		child.Walk(fn)
	}
	if c.ItemView != nil {
		c.ItemView.Walk(fn)
	}
}
