package sdui

import "fmt"

// Kind identifies a component node type. The set is closed: every kind the
// engine understands is declared here, and the renderer dispatches over all
// of them in one switch. Adding a kind means adding it here, to the kind
// name table, and to that switch.
type Kind int

const (
	KindUnknown Kind = iota

	// Layout kinds compose children into containers.
	KindVStack
	KindHStack
	KindZStack
	KindScroll
	KindGrid
	KindSection
	KindCard
	KindSpacer
	KindDivider

	// Collection and logic kinds.
	KindList
	KindConditional

	// Content kinds resolve data and style only.
	KindText
	KindImage
	KindIcon
	KindMarkdown
	KindProgress
	KindGauge
	KindBadge

	// Interactive kinds fire actions through the action table.
	KindButton
	KindLink

	// Input kinds bind a value two-way through the BindingStore.
	KindTextField
	KindTextArea
	KindToggle
	KindSlider
	KindStepper
	KindPicker
	KindSegmented
	KindDatePicker

	// Domain widget kinds. Rendering stays generic: all domain meaning
	// arrives through accessors and semantic color tokens.
	KindAlertBanner
	KindStatusChip
	KindChecklistRow
	KindSignatureBox
)

// kindNames maps wire-format type tags to kinds. The tags are the schema
// contract and never change meaning between versions.
var kindNames = map[string]Kind{
	"vstack":       KindVStack,
	"hstack":       KindHStack,
	"zstack":       KindZStack,
	"scroll":       KindScroll,
	"grid":         KindGrid,
	"section":      KindSection,
	"card":         KindCard,
	"spacer":       KindSpacer,
	"divider":      KindDivider,
	"list":         KindList,
	"conditional":  KindConditional,
	"text":         KindText,
	"image":        KindImage,
	"icon":         KindIcon,
	"markdown":     KindMarkdown,
	"progress":     KindProgress,
	"gauge":        KindGauge,
	"badge":        KindBadge,
	"button":       KindButton,
	"link":         KindLink,
	"textField":    KindTextField,
	"textArea":     KindTextArea,
	"toggle":       KindToggle,
	"slider":       KindSlider,
	"stepper":      KindStepper,
	"picker":       KindPicker,
	"segmented":    KindSegmented,
	"datePicker":   KindDatePicker,
	"alertBanner":  KindAlertBanner,
	"statusChip":   KindStatusChip,
	"checklistRow": KindChecklistRow,
	"signatureBox": KindSignatureBox,
}

// kindTags is the reverse of kindNames, built once at init.
var kindTags = func() map[Kind]string {
	m := make(map[Kind]string, len(kindNames))
	for tag, k := range kindNames {
		m[k] = tag
	}
	return m
}()

// ParseKind returns the kind for a wire-format type tag.
func ParseKind(tag string) (Kind, bool) {
	k, ok := kindNames[tag]
	return k, ok
}

// String returns the wire-format tag for the kind.
func (k Kind) String() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsLayout reports whether the kind composes children into a container.
func (k Kind) IsLayout() bool {
	switch k {
	case KindVStack, KindHStack, KindZStack, KindScroll, KindGrid, KindSection, KindCard:
		return true
	}
	return false
}

// IsInput reports whether the kind binds a value through the BindingStore.
// Input kinds are stateful: their rendered output depends on the mutable
// store, so subtrees containing them are never memoized.
func (k Kind) IsInput() bool {
	switch k {
	case KindTextField, KindTextArea, KindToggle, KindSlider, KindStepper,
		KindPicker, KindSegmented, KindDatePicker, KindChecklistRow:
		return true
	}
	return false
}

// IsInteractive reports whether the kind can carry an actionId trigger.
func (k Kind) IsInteractive() bool {
	switch k {
	case KindButton, KindLink, KindSignatureBox, KindAlertBanner:
		return true
	}
	return false
}

// memoizable reports whether a node of this kind is a candidate root for
// subtree memoization. Only composite kinds are worth the signature cost;
// the renderer additionally refuses subtrees that contain inputs or lists.
func (k Kind) memoizable() bool {
	switch k {
	case KindCard, KindSection, KindGrid:
		return true
	}
	return false
}
