package compile_metadata

// CompileAnimationMetadata is the resolved step-level animation node.
type CompileAnimationMetadata interface {
	isCompileAnimationMetadata()
}

// CompileAnimationStateMetadata is the resolved state-level animation node.
type CompileAnimationStateMetadata interface {
	isCompileAnimationStateMetadata()
}

// CompileAnimationEntryMetadata is a resolved animation trigger
type CompileAnimationEntryMetadata struct {
	Name        string                          `json:"name"`
	Definitions []CompileAnimationStateMetadata `json:"definitions"`
}

// CompileAnimationStateDeclarationMetadata is a resolved state declaration
type CompileAnimationStateDeclarationMetadata struct {
	StateNameExpr string                         `json:"stateNameExpr"`
	Styles        *CompileAnimationStyleMetadata `json:"styles"`
}

// CompileAnimationStateTransitionMetadata is a resolved state transition
type CompileAnimationStateTransitionMetadata struct {
	StateChangeExpr string                   `json:"stateChangeExpr"`
	Steps           CompileAnimationMetadata `json:"steps"`
}

// CompileAnimationStyleMetadata is a resolved style step
type CompileAnimationStyleMetadata struct {
	Offset *float64      `json:"offset,omitempty"`
	Styles []interface{} `json:"styles"`
}

// CompileAnimationKeyframesSequenceMetadata is a resolved keyframe sequence
type CompileAnimationKeyframesSequenceMetadata struct {
	Steps []*CompileAnimationStyleMetadata `json:"steps"`
}

// CompileAnimationAnimateMetadata is a resolved animate step
type CompileAnimationAnimateMetadata struct {
	Timings interface{}              `json:"timings"`
	Styles  CompileAnimationMetadata `json:"styles"`
}

// CompileAnimationGroupMetadata is a resolved parallel group
type CompileAnimationGroupMetadata struct {
	Steps []CompileAnimationMetadata `json:"steps"`
}

// CompileAnimationSequenceMetadata is a resolved ordered sequence
type CompileAnimationSequenceMetadata struct {
	Steps []CompileAnimationMetadata `json:"steps"`
}

func (*CompileAnimationStyleMetadata) isCompileAnimationMetadata()             {}
func (*CompileAnimationKeyframesSequenceMetadata) isCompileAnimationMetadata() {}
func (*CompileAnimationAnimateMetadata) isCompileAnimationMetadata()           {}
func (*CompileAnimationGroupMetadata) isCompileAnimationMetadata()             {}
func (*CompileAnimationSequenceMetadata) isCompileAnimationMetadata()          {}

func (*CompileAnimationStateDeclarationMetadata) isCompileAnimationStateMetadata() {}
func (*CompileAnimationStateTransitionMetadata) isCompileAnimationStateMetadata()  {}
