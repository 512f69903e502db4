package core

import "strings"

// Directive is the annotation declaring a directive.
//
// Fields holding type references (Providers, Queries selectors) are untyped:
// entries may be nominal type handles, forward references, nested lists or
// provider records, exactly as authored.
type Directive struct {
	Selector  string
	Inputs    []string
	Outputs   []string
	Host      map[string]string
	Providers []interface{}
	ExportAs  string
	Queries   QueryMap
}

// Component is the annotation declaring a component. It extends Directive
// with view-level declarations.
type Component struct {
	Directive

	ChangeDetection *ChangeDetectionStrategy
	ViewProviders   []interface{}
	Precompile      []interface{}
	ModuleID        string

	// View descriptor fields. A component may carry these inline or in a
	// separate View annotation; the view resolver reconciles the two.
	Template      string
	TemplateURL   string
	Styles        []string
	StyleURLs     []string
	Animations    []*AnimationEntryMetadata
	Directives    []interface{}
	Pipes         []interface{}
	Encapsulation ViewEncapsulation
	Interpolation []string
}

// View is the standalone view descriptor annotation.
type View struct {
	Template      string
	TemplateURL   string
	Styles        []string
	StyleURLs     []string
	Animations    []*AnimationEntryMetadata
	Directives    []interface{}
	Pipes         []interface{}
	Encapsulation ViewEncapsulation
	Interpolation []string
}

// Pipe is the annotation declaring a pipe. A nil Pure means pure.
type Pipe struct {
	Name string
	Pure *bool
}

// IsPure reports the effective purity of the pipe.
func (p *Pipe) IsPure() bool {
	return p.Pure == nil || *p.Pure
}

// NgModule is the annotation declaring a module. Nested declarations are
// untyped lists that may be arbitrarily nested and forward-referenced.
type NgModule struct {
	Providers  []interface{}
	Directives []interface{}
	Pipes      []interface{}
	Precompile []interface{}
	Modules    []interface{}
}

// Provider declares how a token's value is produced. Exactly one of
// UseClass/UseValue/UseFactory/UseExisting is the resolution strategy.
type Provider struct {
	Token       interface{}
	UseClass    interface{}
	UseValue    interface{}
	UseFactory  interface{}
	UseExisting interface{}
	Deps        []interface{}
	Multi       bool
}

// Inject is the constructor-parameter qualifier that pins the injection token
type Inject struct {
	Token interface{}
}

// Optional marks a constructor parameter as optional
type Optional struct{}

// Self restricts a dependency lookup to the local injector
type Self struct{}

// SkipSelf skips the local injector when looking up a dependency
type SkipSelf struct{}

// Host restricts a dependency lookup to the host boundary
type Host struct{}

// Attribute injects a static attribute value by name
type Attribute struct {
	Name string
}

// Query declares a content or view query. Selector is either a nominal type
// token or a comma-separated string of template-reference variable names.
type Query struct {
	Selector    interface{}
	Descendants bool
	First       bool
	Read        interface{}
	IsViewQuery bool
}

// IsVarBindingQuery reports whether the query selects template-reference
// variables by name rather than by type.
func (q *Query) IsVarBindingQuery() bool {
	_, ok := q.Selector.(string)
	return ok
}

// VarBindings returns the bound variable names of a var-binding query.
func (q *Query) VarBindings() []string {
	s, ok := q.Selector.(string)
	if !ok {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// QueryMap holds per-property queries in declaration order.
type QueryMap []QueryMapEntry

// QueryMapEntry binds a query to the property it populates
type QueryMapEntry struct {
	PropertyName string
	Query        *Query
}
