package metadata_resolver

import (
	cpl "ngmeta-go/packages/compiler/compile_metadata"
	"ngmeta-go/packages/compiler/core"
)

// Animation resolution is a pure recursive tree transform: no caching, and
// lenient by design — unrecognized node shapes yield nil instead of failing.

// ResolveAnimationEntry resolves a named animation trigger. Definitions with
// unrecognized shapes are dropped.
func (r *CompileMetadataResolver) ResolveAnimationEntry(entry *core.AnimationEntryMetadata) *cpl.CompileAnimationEntryMetadata {
	if entry == nil {
		return nil
	}
	definitions := []cpl.CompileAnimationStateMetadata{}
	for _, def := range entry.Definitions {
		if resolved := r.ResolveAnimationStateMetadata(def); resolved != nil {
			definitions = append(definitions, resolved)
		}
	}
	return &cpl.CompileAnimationEntryMetadata{Name: entry.Name, Definitions: definitions}
}

// ResolveAnimationStateMetadata resolves a state declaration or transition;
// nil for anything else.
func (r *CompileMetadataResolver) ResolveAnimationStateMetadata(value core.AnimationStateMetadata) cpl.CompileAnimationStateMetadata {
	switch state := value.(type) {
	case *core.AnimationStateDeclarationMetadata:
		return &cpl.CompileAnimationStateDeclarationMetadata{
			StateNameExpr: state.StateNameExpr,
			Styles:        r.resolveAnimationStyle(state.Styles),
		}
	case *core.AnimationStateTransitionMetadata:
		return &cpl.CompileAnimationStateTransitionMetadata{
			StateChangeExpr: state.StateChangeExpr,
			Steps:           r.ResolveAnimationMetadata(state.Steps),
		}
	}
	return nil
}

// ResolveAnimationMetadata resolves a step-level animation node by shape;
// nil for unrecognized shapes.
func (r *CompileMetadataResolver) ResolveAnimationMetadata(value core.AnimationMetadata) cpl.CompileAnimationMetadata {
	switch node := value.(type) {
	case *core.AnimationStyleMetadata:
		return r.resolveAnimationStyle(node)
	case *core.AnimationKeyframesSequenceMetadata:
		steps := make([]*cpl.CompileAnimationStyleMetadata, 0, len(node.Steps))
		for _, step := range node.Steps {
			steps = append(steps, r.resolveAnimationStyle(step))
		}
		return &cpl.CompileAnimationKeyframesSequenceMetadata{Steps: steps}
	case *core.AnimationAnimateMetadata:
		return &cpl.CompileAnimationAnimateMetadata{
			Timings: node.Timings,
			Styles:  r.ResolveAnimationMetadata(node.Styles),
		}
	case *core.AnimationGroupMetadata:
		return &cpl.CompileAnimationGroupMetadata{Steps: r.resolveAnimationSteps(node.Steps)}
	case *core.AnimationSequenceMetadata:
		return &cpl.CompileAnimationSequenceMetadata{Steps: r.resolveAnimationSteps(node.Steps)}
	}
	return nil
}

func (r *CompileMetadataResolver) resolveAnimationSteps(steps []core.AnimationMetadata) []cpl.CompileAnimationMetadata {
	resolved := []cpl.CompileAnimationMetadata{}
	for _, step := range steps {
		if node := r.ResolveAnimationMetadata(step); node != nil {
			resolved = append(resolved, node)
		}
	}
	return resolved
}

func (r *CompileMetadataResolver) resolveAnimationStyle(style *core.AnimationStyleMetadata) *cpl.CompileAnimationStyleMetadata {
	if style == nil {
		return nil
	}
	return &cpl.CompileAnimationStyleMetadata{Offset: style.Offset, Styles: style.Styles}
}
