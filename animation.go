package sdui

import "time"

// AnimationType is the closed animation curve vocabulary. Unknown schema
// values parse to AnimationNone; motion is always safe to skip.
type AnimationType int

const (
	AnimationNone AnimationType = iota
	AnimationLinear
	AnimationEaseIn
	AnimationEaseOut
	AnimationEaseInOut
	AnimationSpring
)

var animationNames = [...]string{"none", "linear", "easeIn", "easeOut", "easeInOut", "spring"}

func (t AnimationType) String() string {
	if t < 0 || int(t) >= len(animationNames) {
		return "none"
	}
	return animationNames[t]
}

// ParseAnimationType maps a schema animation type tag, AnimationNone for
// anything it does not recognize.
func ParseAnimationType(s string) AnimationType {
	switch s {
	case "linear":
		return AnimationLinear
	case "easeIn":
		return AnimationEaseIn
	case "easeOut":
		return AnimationEaseOut
	case "easeInOut":
		return AnimationEaseInOut
	case "spring":
		return AnimationSpring
	}
	return AnimationNone
}

// DefaultAnimationDuration applies when a descriptor gives no duration.
const DefaultAnimationDuration = 250 * time.Millisecond

// AnimationSpec describes how a subtree animates when it appears or
// changes. Duration is in seconds, schema-side; zero means the default.
type AnimationSpec struct {
	Type     AnimationType
	Duration float64
}

// TimeDuration returns the descriptor's duration for platforms that speak
// time.Duration.
func (s AnimationSpec) TimeDuration() time.Duration {
	if s.Duration <= 0 {
		return DefaultAnimationDuration
	}
	return time.Duration(s.Duration * float64(time.Second))
}

// TransitionType is the closed insertion/removal transition vocabulary.
type TransitionType int

const (
	TransitionNone TransitionType = iota
	TransitionSlide
	TransitionOpacity
	TransitionScale
	TransitionMoveIn
	TransitionMoveOut
)

var transitionNames = [...]string{"none", "slide", "opacity", "scale", "moveIn", "moveOut"}

func (t TransitionType) String() string {
	if t < 0 || int(t) >= len(transitionNames) {
		return "none"
	}
	return transitionNames[t]
}

// ParseTransitionType maps a schema transition type tag, TransitionNone for
// anything it does not recognize.
func ParseTransitionType(s string) TransitionType {
	switch s {
	case "slide":
		return TransitionSlide
	case "opacity":
		return TransitionOpacity
	case "scale":
		return TransitionScale
	case "moveIn":
		return TransitionMoveIn
	case "moveOut":
		return TransitionMoveOut
	}
	return TransitionNone
}

// TransitionSpec describes how a subtree enters or leaves the screen.
type TransitionSpec struct {
	Type TransitionType
}

// ApplyMotion decorates a styled view with the node's animation and
// transition, in that order. A node with neither, or with descriptors that
// parsed to none, passes through untouched.
func ApplyMotion(p Platform, v View, c *Component) View {
	if c.Animation != nil && c.Animation.Type != AnimationNone {
		v = p.Animate(v, *c.Animation)
	}
	if c.Transition != nil && c.Transition.Type != TransitionNone {
		v = p.Transition(v, *c.Transition)
	}
	return v
}
