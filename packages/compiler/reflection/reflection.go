// Package reflection supplies the introspection capability the metadata
// resolver consumes. The resolver never loads or inspects host code itself;
// it only reads structured results from a ReflectorReader.
package reflection

import (
	"fmt"
	"reflect"
)

// ReflectorReader yields raw reflective data about host types.
type ReflectorReader interface {
	// Annotations returns the raw annotation objects declared on a type.
	Annotations(typ interface{}) []interface{}

	// Parameters returns one qualifier list per constructor parameter of a
	// type or callable.
	Parameters(typeOrFunc interface{}) [][]interface{}

	// ImportUri returns the address a type is importable from.
	ImportUri(typ interface{}) string
}

// TypeHandle identifies a class in the host program. Handles are created
// once by the host and compared by pointer identity.
type TypeHandle struct {
	Name string
}

// NewTypeHandle creates a type handle
func NewTypeHandle(name string) *TypeHandle {
	return &TypeHandle{Name: name}
}

func (t *TypeHandle) String() string {
	if t.Name == "" {
		// Unnamed handles render as a call expression, the anonymous-entity signal.
		return fmt.Sprintf("class (%p)", t)
	}
	return t.Name
}

// FunctionHandle identifies a named callable in the host program.
type FunctionHandle struct {
	Name string
	Fn   interface{}
}

// NewFunctionHandle creates a function handle
func NewFunctionHandle(name string, fn interface{}) *FunctionHandle {
	return &FunctionHandle{Name: name, Fn: fn}
}

func (f *FunctionHandle) String() string {
	if f.Name == "" {
		return fmt.Sprintf("function (%p)", f)
	}
	return f.Name
}

// ForwardRef is a lazily-resolved handle to a type, permitting circular
// declarations.
type ForwardRef func() interface{}

// ResolveForwardRef dereferences nested forward references eagerly. It is
// idempotent on repeated application.
func ResolveForwardRef(value interface{}) interface{} {
	for {
		ref, ok := value.(ForwardRef)
		if !ok {
			return value
		}
		value = ref()
	}
}

// Reflector is the map-backed ReflectorReader used by hosts that register
// their type graph up front (tests, the manifest driver).
type Reflector struct {
	annotations map[interface{}][]interface{}
	parameters  map[interface{}][][]interface{}
	importUris  map[interface{}]string
}

// NewReflector creates an empty reflector
func NewReflector() *Reflector {
	return &Reflector{
		annotations: make(map[interface{}][]interface{}),
		parameters:  make(map[interface{}][][]interface{}),
		importUris:  make(map[interface{}]string),
	}
}

// RegisterType records a type's annotations and constructor parameters.
func (r *Reflector) RegisterType(typ interface{}, annotations []interface{}, parameters [][]interface{}) {
	r.annotations[typ] = annotations
	r.parameters[typ] = parameters
}

// RegisterParameters records the parameters of a callable.
func (r *Reflector) RegisterParameters(typeOrFunc interface{}, parameters [][]interface{}) {
	r.parameters[typeOrFunc] = parameters
}

// RegisterImportUri records the address a type is importable from.
func (r *Reflector) RegisterImportUri(typ interface{}, uri string) {
	r.importUris[typ] = uri
}

// Annotations implements ReflectorReader.
func (r *Reflector) Annotations(typ interface{}) []interface{} {
	if !isComparable(typ) {
		return nil
	}
	return r.annotations[typ]
}

// Parameters implements ReflectorReader.
func (r *Reflector) Parameters(typeOrFunc interface{}) [][]interface{} {
	if !isComparable(typeOrFunc) {
		return nil
	}
	return r.parameters[typeOrFunc]
}

// ImportUri implements ReflectorReader.
func (r *Reflector) ImportUri(typ interface{}) string {
	if !isComparable(typ) {
		return ""
	}
	return r.importUris[typ]
}

// isComparable reports whether a value can be used as a map key. Raw function
// values are not comparable in Go, so unregistered callables fall through to
// a nil result instead of panicking.
func isComparable(v interface{}) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Comparable()
}
