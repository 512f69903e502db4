package metadata_resolver

import (
	"ngmeta-go/packages/compiler/core"
	"ngmeta-go/packages/compiler/reflection"
	"ngmeta-go/packages/compiler/util"
)

// DirectiveAnnotationResolver yields the raw directive or component
// annotation of a type. The returned annotation is a *core.Directive or a
// *core.Component.
type DirectiveAnnotationResolver interface {
	Resolve(typ interface{}) (interface{}, error)
}

// PipeAnnotationResolver yields the raw pipe annotation of a type.
type PipeAnnotationResolver interface {
	Resolve(typ interface{}) (*core.Pipe, error)
}

// ViewAnnotationResolver yields the raw view descriptor of a component type.
type ViewAnnotationResolver interface {
	Resolve(typ interface{}) (*core.View, error)
}

// NgModuleAnnotationResolver yields the raw module annotation of a type.
type NgModuleAnnotationResolver interface {
	Resolve(typ interface{}) (*core.NgModule, error)
}

// LifecycleReflector tests whether a type implements a lifecycle hook.
type LifecycleReflector interface {
	HasLifecycleHook(hook core.LifecycleHooks, typ interface{}) bool
}

// SchemeDetector yields the URL scheme of a declared module id, "" for bare ids.
type SchemeDetector interface {
	SchemeOf(moduleID string) string
}

// DirectiveResolver is the annotation-scanning DirectiveAnnotationResolver.
type DirectiveResolver struct {
	reflector reflection.ReflectorReader
}

// NewDirectiveResolver creates a directive resolver over a reflector
func NewDirectiveResolver(reflector reflection.ReflectorReader) *DirectiveResolver {
	return &DirectiveResolver{reflector: reflector}
}

// Resolve returns the directive or component annotation of a type. Component
// annotations win over plain directive annotations.
func (r *DirectiveResolver) Resolve(typ interface{}) (interface{}, error) {
	var directive *core.Directive
	for _, annotation := range r.reflector.Annotations(typ) {
		switch a := annotation.(type) {
		case *core.Component:
			return a, nil
		case *core.Directive:
			directive = a
		}
	}
	if directive != nil {
		return directive, nil
	}
	return nil, resolutionErrorf("%w on %s", ErrNoDirectiveAnnotation, util.Stringify(typ))
}

// PipeResolver is the annotation-scanning PipeAnnotationResolver.
type PipeResolver struct {
	reflector reflection.ReflectorReader
}

// NewPipeResolver creates a pipe resolver over a reflector
func NewPipeResolver(reflector reflection.ReflectorReader) *PipeResolver {
	return &PipeResolver{reflector: reflector}
}

// Resolve returns the pipe annotation of a type.
func (r *PipeResolver) Resolve(typ interface{}) (*core.Pipe, error) {
	for _, annotation := range r.reflector.Annotations(typ) {
		if pipe, ok := annotation.(*core.Pipe); ok {
			return pipe, nil
		}
	}
	return nil, resolutionErrorf("no Pipe annotation found on %s", util.Stringify(typ))
}

// ViewResolver yields a component's view descriptor, either from a standalone
// View annotation or synthesized from the component annotation's own view
// fields.
type ViewResolver struct {
	reflector reflection.ReflectorReader
}

// NewViewResolver creates a view resolver over a reflector
func NewViewResolver(reflector reflection.ReflectorReader) *ViewResolver {
	return &ViewResolver{reflector: reflector}
}

// Resolve returns the view descriptor of a component type.
func (r *ViewResolver) Resolve(typ interface{}) (*core.View, error) {
	var component *core.Component
	for _, annotation := range r.reflector.Annotations(typ) {
		switch a := annotation.(type) {
		case *core.View:
			return a, nil
		case *core.Component:
			component = a
		}
	}
	if component != nil {
		return &core.View{
			Template:      component.Template,
			TemplateURL:   component.TemplateURL,
			Styles:        component.Styles,
			StyleURLs:     component.StyleURLs,
			Animations:    component.Animations,
			Directives:    component.Directives,
			Pipes:         component.Pipes,
			Encapsulation: component.Encapsulation,
			Interpolation: component.Interpolation,
		}, nil
	}
	return nil, resolutionErrorf("could not compile '%s' because it is not a component", util.Stringify(typ))
}

// NgModuleResolver is the annotation-scanning NgModuleAnnotationResolver.
type NgModuleResolver struct {
	reflector reflection.ReflectorReader
}

// NewNgModuleResolver creates a module resolver over a reflector
func NewNgModuleResolver(reflector reflection.ReflectorReader) *NgModuleResolver {
	return &NgModuleResolver{reflector: reflector}
}

// Resolve returns the module annotation of a type.
func (r *NgModuleResolver) Resolve(typ interface{}) (*core.NgModule, error) {
	for _, annotation := range r.reflector.Annotations(typ) {
		if module, ok := annotation.(*core.NgModule); ok {
			return module, nil
		}
	}
	return nil, resolutionErrorf("no NgModule annotation found on %s", util.Stringify(typ))
}

// MapLifecycleReflector is the registry-backed LifecycleReflector: hosts
// record the hooks each type implements.
type MapLifecycleReflector struct {
	hooks map[interface{}]map[core.LifecycleHooks]bool
}

// NewMapLifecycleReflector creates an empty lifecycle registry
func NewMapLifecycleReflector() *MapLifecycleReflector {
	return &MapLifecycleReflector{hooks: make(map[interface{}]map[core.LifecycleHooks]bool)}
}

// Register records the lifecycle hooks a type implements.
func (l *MapLifecycleReflector) Register(typ interface{}, hooks ...core.LifecycleHooks) {
	set, ok := l.hooks[typ]
	if !ok {
		set = make(map[core.LifecycleHooks]bool)
		l.hooks[typ] = set
	}
	for _, hook := range hooks {
		set[hook] = true
	}
}

// HasLifecycleHook implements LifecycleReflector.
func (l *MapLifecycleReflector) HasLifecycleHook(hook core.LifecycleHooks, typ interface{}) bool {
	return l.hooks[typ][hook]
}
