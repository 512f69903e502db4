package core

// AnimationMetadata is the step-level animation node: one of style,
// keyframes, animate, group or sequence.
type AnimationMetadata interface {
	isAnimationMetadata()
}

// AnimationStateMetadata is the state-level animation node: a state
// declaration or a transition.
type AnimationStateMetadata interface {
	isAnimationStateMetadata()
}

// AnimationEntryMetadata is a named animation trigger with its state definitions
type AnimationEntryMetadata struct {
	Name        string
	Definitions []AnimationStateMetadata
}

// AnimationStateDeclarationMetadata declares the styles of a named state
type AnimationStateDeclarationMetadata struct {
	StateNameExpr string
	Styles        *AnimationStyleMetadata
}

// AnimationStateTransitionMetadata declares the steps played on a state change
type AnimationStateTransitionMetadata struct {
	StateChangeExpr string
	Steps           AnimationMetadata
}

// AnimationStyleMetadata is a style map, optionally pinned to a keyframe offset.
// Style entries are string shorthands or map[string]interface{} style maps.
type AnimationStyleMetadata struct {
	Offset *float64
	Styles []interface{}
}

// AnimationKeyframesSequenceMetadata is an ordered list of keyframe styles
type AnimationKeyframesSequenceMetadata struct {
	Steps []*AnimationStyleMetadata
}

// AnimationAnimateMetadata plays styles or keyframes under a timing expression
type AnimationAnimateMetadata struct {
	Timings interface{}
	Styles  AnimationMetadata
}

// AnimationGroupMetadata plays its steps in parallel
type AnimationGroupMetadata struct {
	Steps []AnimationMetadata
}

// AnimationSequenceMetadata plays its steps in order
type AnimationSequenceMetadata struct {
	Steps []AnimationMetadata
}

func (*AnimationStyleMetadata) isAnimationMetadata()              {}
func (*AnimationKeyframesSequenceMetadata) isAnimationMetadata()  {}
func (*AnimationAnimateMetadata) isAnimationMetadata()            {}
func (*AnimationGroupMetadata) isAnimationMetadata()              {}
func (*AnimationSequenceMetadata) isAnimationMetadata()           {}
func (*AnimationStateDeclarationMetadata) isAnimationStateMetadata() {}
func (*AnimationStateTransitionMetadata) isAnimationStateMetadata() {}

// Trigger declares a named animation trigger
func Trigger(name string, definitions ...AnimationStateMetadata) *AnimationEntryMetadata {
	return &AnimationEntryMetadata{Name: name, Definitions: definitions}
}

// State declares the styles of a named animation state
func State(stateNameExpr string, styles *AnimationStyleMetadata) *AnimationStateDeclarationMetadata {
	return &AnimationStateDeclarationMetadata{StateNameExpr: stateNameExpr, Styles: styles}
}

// Transition declares the steps played on a state-change expression
func Transition(stateChangeExpr string, steps AnimationMetadata) *AnimationStateTransitionMetadata {
	return &AnimationStateTransitionMetadata{StateChangeExpr: stateChangeExpr, Steps: steps}
}

// Style declares a style map step
func Style(tokens ...interface{}) *AnimationStyleMetadata {
	return &AnimationStyleMetadata{Styles: tokens}
}

// StyleAtOffset declares a keyframe style pinned to an offset in [0, 1]
func StyleAtOffset(offset float64, tokens ...interface{}) *AnimationStyleMetadata {
	return &AnimationStyleMetadata{Offset: &offset, Styles: tokens}
}

// Keyframes declares an ordered keyframe sequence
func Keyframes(steps ...*AnimationStyleMetadata) *AnimationKeyframesSequenceMetadata {
	return &AnimationKeyframesSequenceMetadata{Steps: steps}
}

// Animate plays styles or keyframes under a timing expression
func Animate(timings interface{}, styles AnimationMetadata) *AnimationAnimateMetadata {
	return &AnimationAnimateMetadata{Timings: timings, Styles: styles}
}

// Group plays steps in parallel
func Group(steps ...AnimationMetadata) *AnimationGroupMetadata {
	return &AnimationGroupMetadata{Steps: steps}
}

// Sequence plays steps in order
func Sequence(steps ...AnimationMetadata) *AnimationSequenceMetadata {
	return &AnimationSequenceMetadata{Steps: steps}
}
