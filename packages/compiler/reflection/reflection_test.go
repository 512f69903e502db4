package reflection

import (
	"strings"
	"testing"
)

func TestHandleStringify(t *testing.T) {
	t.Run("named handles use their name", func(t *testing.T) {
		if got := NewTypeHandle("MyComp").String(); got != "MyComp" {
			t.Errorf("expected MyComp, got %q", got)
		}
		if got := NewFunctionHandle("create", nil).String(); got != "create" {
			t.Errorf("expected create, got %q", got)
		}
	})

	t.Run("unnamed handles render as call expressions", func(t *testing.T) {
		if got := NewTypeHandle("").String(); !strings.Contains(got, "(") {
			t.Errorf("expected a call-expression shape, got %q", got)
		}
		if got := NewFunctionHandle("", nil).String(); !strings.Contains(got, "(") {
			t.Errorf("expected a call-expression shape, got %q", got)
		}
	})

	t.Run("distinct unnamed handles render differently", func(t *testing.T) {
		a := NewTypeHandle("").String()
		b := NewTypeHandle("").String()
		if a == b {
			t.Error("expected distinct renderings for distinct handles")
		}
	})
}

func TestResolveForwardRef(t *testing.T) {
	handle := NewTypeHandle("Late")

	t.Run("dereferences a forward reference", func(t *testing.T) {
		ref := ForwardRef(func() interface{} { return handle })
		if ResolveForwardRef(ref) != handle {
			t.Error("expected the handle")
		}
	})

	t.Run("dereferences nested forward references", func(t *testing.T) {
		inner := ForwardRef(func() interface{} { return handle })
		outer := ForwardRef(func() interface{} { return inner })
		if ResolveForwardRef(outer) != handle {
			t.Error("expected the handle through two hops")
		}
	})

	t.Run("is the identity on plain values", func(t *testing.T) {
		if ResolveForwardRef(handle) != handle {
			t.Error("expected the value unchanged")
		}
		if ResolveForwardRef("token") != "token" {
			t.Error("expected the string unchanged")
		}
	})
}

func TestReflector(t *testing.T) {
	t.Run("registered data is returned", func(t *testing.T) {
		reflector := NewReflector()
		handle := NewTypeHandle("T")
		annotation := struct{ name string }{name: "a"}
		reflector.RegisterType(handle, []interface{}{annotation}, [][]interface{}{{"dep"}})
		reflector.RegisterImportUri(handle, "package:app/t")

		if got := reflector.Annotations(handle); len(got) != 1 {
			t.Errorf("unexpected annotations: %v", got)
		}
		if got := reflector.Parameters(handle); len(got) != 1 || got[0][0] != "dep" {
			t.Errorf("unexpected parameters: %v", got)
		}
		if got := reflector.ImportUri(handle); got != "package:app/t" {
			t.Errorf("unexpected import uri: %q", got)
		}
	})

	t.Run("unknown types yield empty results", func(t *testing.T) {
		reflector := NewReflector()
		if got := reflector.Annotations(NewTypeHandle("X")); got != nil {
			t.Errorf("expected nil annotations, got %v", got)
		}
		if got := reflector.ImportUri(NewTypeHandle("X")); got != "" {
			t.Errorf("expected an empty uri, got %q", got)
		}
	})

	t.Run("non-comparable values do not panic", func(t *testing.T) {
		reflector := NewReflector()
		if got := reflector.Annotations(func() {}); got != nil {
			t.Errorf("expected nil annotations for a raw func, got %v", got)
		}
		if got := reflector.Parameters(nil); got != nil {
			t.Errorf("expected nil parameters for nil, got %v", got)
		}
	})
}
