package metadata_resolver_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cpl "ngmeta-go/packages/compiler/compile_metadata"
	"ngmeta-go/packages/compiler/core"
	"ngmeta-go/packages/compiler/reflection"
)

func TestResolveDependencies(t *testing.T) {
	t.Run("bare tokens and qualifier lists", func(t *testing.T) {
		env := newTestEnv()
		service := reflection.NewTypeHandle("Service")
		env.reflector.RegisterType(service, nil, nil)

		deps, err := env.resolver.ResolveDependencies("ctor", []interface{}{
			service,
			[]interface{}{&core.Optional{}, &core.Host{}, service},
			[]interface{}{&core.Inject{Token: "config"}},
		})
		require.NoError(t, err)
		require.Len(t, deps, 3)

		assert.Equal(t, "Service", deps[0].Token.Name())
		assert.True(t, deps[1].IsOptional)
		assert.True(t, deps[1].IsHost)
		assert.Equal(t, "Service", deps[1].Token.Name())
		assert.Equal(t, "config", deps[2].Token.Name())
	})

	t.Run("self and skipSelf qualifiers", func(t *testing.T) {
		env := newTestEnv()
		service := reflection.NewTypeHandle("S")
		env.reflector.RegisterType(service, nil, nil)

		deps, err := env.resolver.ResolveDependencies("ctor", []interface{}{
			[]interface{}{&core.Self{}, service},
			[]interface{}{&core.SkipSelf{}, service},
		})
		require.NoError(t, err)
		assert.True(t, deps[0].IsSelf)
		assert.True(t, deps[1].IsSkipSelf)
	})

	t.Run("attribute parameters carry the attribute name as token", func(t *testing.T) {
		env := newTestEnv()
		deps, err := env.resolver.ResolveDependencies("ctor", []interface{}{
			[]interface{}{&core.Attribute{Name: "title"}},
		})
		require.NoError(t, err)
		require.Len(t, deps, 1)
		assert.True(t, deps[0].IsAttribute)
		assert.Equal(t, "title", deps[0].Token.Name())
	})

	t.Run("queries route by their view flag", func(t *testing.T) {
		env := newTestEnv()
		child := reflection.NewTypeHandle("Child")

		deps, err := env.resolver.ResolveDependencies("ctor", []interface{}{
			[]interface{}{&core.Query{Selector: child}},
			[]interface{}{&core.Query{Selector: child, IsViewQuery: true}},
		})
		require.NoError(t, err)
		assert.NotNil(t, deps[0].Query)
		assert.Nil(t, deps[0].ViewQuery)
		assert.Nil(t, deps[1].Query)
		assert.NotNil(t, deps[1].ViewQuery)
	})

	t.Run("one undeterminable parameter fails the whole list", func(t *testing.T) {
		env := newTestEnv()
		service := reflection.NewTypeHandle("Service")
		env.reflector.RegisterType(service, nil, nil)

		_, err := env.resolver.ResolveDependencies("SomeType", []interface{}{
			service,
			[]interface{}{&core.Optional{}},
			[]interface{}{&core.Inject{Token: "cfg"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid dependency configuration of SomeType")
		assert.Contains(t, err.Error(), "(Service, ?, cfg)")
	})

	t.Run("nil parameters are reported as unknown", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.resolver.ResolveDependencies("SomeType", []interface{}{nil})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "(?)")
	})

	t.Run("falls back to reflective parameters when none are supplied", func(t *testing.T) {
		env := newTestEnv()
		service := reflection.NewTypeHandle("Dep")
		env.reflector.RegisterType(service, nil, nil)
		owner := reflection.NewTypeHandle("Owner")
		env.reflector.RegisterType(owner, nil, [][]interface{}{{service}})

		deps, err := env.resolver.ResolveDependencies(owner, nil)
		require.NoError(t, err)
		require.Len(t, deps, 1)
		assert.Equal(t, "Dep", deps[0].Token.Name())
	})
}

func TestResolveToken(t *testing.T) {
	t.Run("string tokens become literal-value tokens", func(t *testing.T) {
		env := newTestEnv()
		token := env.resolver.ResolveToken("app.config")
		assert.Equal(t, "app.config", token.Value)
		assert.Nil(t, token.Identifier)
	})

	t.Run("type tokens wrap an identifier", func(t *testing.T) {
		env := newTestEnv()
		handle := reflection.NewTypeHandle("MyService")
		token := env.resolver.ResolveToken(handle)
		require.NotNil(t, token.Identifier)
		assert.Equal(t, "MyService", token.Identifier.Name)
		assert.Same(t, handle, token.Identifier.Runtime.(*reflection.TypeHandle))
	})

	t.Run("forward references are dereferenced", func(t *testing.T) {
		env := newTestEnv()
		handle := reflection.NewTypeHandle("Late")
		ref := reflection.ForwardRef(func() interface{} { return handle })
		token := env.resolver.ResolveToken(ref)
		require.NotNil(t, token.Identifier)
		assert.Equal(t, "Late", token.Identifier.Name)
	})

	t.Run("names with non-word characters are sanitized", func(t *testing.T) {
		env := newTestEnv()
		token := env.resolver.ResolveToken(reflection.NewTypeHandle("a-b.c"))
		assert.Equal(t, "a_b_c", token.Identifier.Name)
	})
}

func TestAnonymousTokenNames(t *testing.T) {
	t.Run("distinct anonymous entities get distinct names", func(t *testing.T) {
		env := newTestEnv()
		first := env.resolver.ResolveToken(reflection.NewTypeHandle(""))
		second := env.resolver.ResolveToken(reflection.NewTypeHandle(""))

		assert.Equal(t, "anonymous_token_0_", first.Identifier.Name)
		assert.Equal(t, "anonymous_token_1_", second.Identifier.Name)
	})

	t.Run("the same entity keeps its name", func(t *testing.T) {
		env := newTestEnv()
		unnamed := reflection.NewTypeHandle("")
		first := env.resolver.ResolveToken(unnamed)
		second := env.resolver.ResolveToken(unnamed)
		assert.Equal(t, first.Identifier.Name, second.Identifier.Name)
	})

	t.Run("names survive cache invalidation", func(t *testing.T) {
		env := newTestEnv()
		unnamed := reflection.NewTypeHandle("")
		before := env.resolver.ResolveToken(unnamed).Identifier.Name
		env.resolver.ClearCache()
		after := env.resolver.ResolveToken(unnamed).Identifier.Name
		assert.Equal(t, before, after)
	})

	t.Run("anonymous function values are keyed by identity", func(t *testing.T) {
		env := newTestEnv()
		fn := func() {}
		first := env.resolver.ResolveToken(fn).Identifier.Name
		second := env.resolver.ResolveToken(fn).Identifier.Name
		assert.Equal(t, first, second)
		assert.True(t, strings.HasPrefix(first, "anonymous_token_"))
	})
}

func TestResolveProviders(t *testing.T) {
	t.Run("flattens nested lists in pre-order", func(t *testing.T) {
		env := newTestEnv()
		typeA := reflection.NewTypeHandle("A")
		typeB := reflection.NewTypeHandle("B")
		typeC := reflection.NewTypeHandle("C")
		for _, h := range []*reflection.TypeHandle{typeA, typeB, typeC} {
			env.reflector.RegisterType(h, nil, nil)
		}

		entries, err := env.resolver.ResolveProviders([]interface{}{
			[]interface{}{typeA, []interface{}{typeB}},
			typeC,
		})
		require.NoError(t, err)
		require.Len(t, entries, 3)
		wantNames := []string{"A", "B", "C"}
		for i, entry := range entries {
			typeMeta, ok := entry.(*cpl.CompileTypeMetadata)
			require.True(t, ok, "entry %d should be a bare type provider", i)
			assert.Equal(t, wantNames[i], typeMeta.Name)
		}
	})

	t.Run("plain-record shorthand resolves like a structured provider", func(t *testing.T) {
		env := newTestEnv()
		entries, err := env.resolver.ResolveProviders([]interface{}{
			map[string]interface{}{"provide": "config", "useValue": 5},
		})
		require.NoError(t, err)
		require.Len(t, entries, 1)

		record := entries[0].(*cpl.CompileProviderMetadata)
		assert.Equal(t, "config", record.Token.Name())
		assert.Equal(t, 5, record.UseValue)
		assert.Nil(t, record.UseClass)
		assert.Nil(t, record.UseFactory)
		assert.Nil(t, record.UseExisting)
		assert.Empty(t, record.Deps)
	})

	t.Run("useClass resolves the class and carries its dependencies", func(t *testing.T) {
		env := newTestEnv()
		impl := reflection.NewTypeHandle("Impl")
		dep := reflection.NewTypeHandle("Dep")
		env.reflector.RegisterType(dep, nil, nil)
		env.reflector.RegisterType(impl, nil, [][]interface{}{{dep}})

		entries, err := env.resolver.ResolveProviders([]interface{}{
			&core.Provider{Token: "service", UseClass: impl},
		})
		require.NoError(t, err)
		record := entries[0].(*cpl.CompileProviderMetadata)
		require.NotNil(t, record.UseClass)
		assert.Equal(t, "Impl", record.UseClass.Name)
		require.Len(t, record.Deps, 1)
		assert.Equal(t, "Dep", record.Deps[0].Token.Name())
	})

	t.Run("useFactory resolves the callable with explicit deps", func(t *testing.T) {
		env := newTestEnv()
		factory := reflection.NewFunctionHandle("createService", nil)

		entries, err := env.resolver.ResolveProviders([]interface{}{
			&core.Provider{Token: "service", UseFactory: factory, Deps: []interface{}{"cfg"}},
		})
		require.NoError(t, err)
		record := entries[0].(*cpl.CompileProviderMetadata)
		require.NotNil(t, record.UseFactory)
		assert.Equal(t, "createService", record.UseFactory.Name)
		require.Len(t, record.Deps, 1)
		assert.Equal(t, "cfg", record.Deps[0].Token.Name())
	})

	t.Run("useExisting resolves to a token alias", func(t *testing.T) {
		env := newTestEnv()
		entries, err := env.resolver.ResolveProviders([]interface{}{
			&core.Provider{Token: "alias", UseExisting: "original"},
		})
		require.NoError(t, err)
		record := entries[0].(*cpl.CompileProviderMetadata)
		require.NotNil(t, record.UseExisting)
		assert.Equal(t, "original", record.UseExisting.Name())
	})

	t.Run("multi is carried through", func(t *testing.T) {
		env := newTestEnv()
		entries, err := env.resolver.ResolveProviders([]interface{}{
			map[string]interface{}{"provide": "handlers", "useValue": 1, "multi": true},
		})
		require.NoError(t, err)
		assert.True(t, entries[0].(*cpl.CompileProviderMetadata).Multi)
	})

	t.Run("rejects values that are neither providers nor types", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.resolver.ResolveProviders([]interface{}{42})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid provider - only instances of Provider and Type are allowed")
	})

	t.Run("a map without a provide key is not a provider", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.resolver.ResolveProviders([]interface{}{
			map[string]interface{}{"useValue": 5},
		})
		require.Error(t, err)
	})
}

func TestBlankProviderEntries(t *testing.T) {
	t.Run("nil provider entries name every flattened slot", func(t *testing.T) {
		env := newTestEnv()
		service := reflection.NewTypeHandle("Known")
		env.reflector.RegisterType(service, nil, nil)
		dir := env.registerDirective("Holder", &core.Directive{
			Selector:  "[holder]",
			Providers: []interface{}{service, []interface{}{nil}},
		})

		_, err := env.resolver.ResolveDirective(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `one or more of providers for "Holder" were not defined: [Known, ?]`)
	})
}

func TestResolveQueries(t *testing.T) {
	t.Run("query maps partition by view flag preserving order", func(t *testing.T) {
		env := newTestEnv()
		child := reflection.NewTypeHandle("Child")
		dir := env.registerDirective("Queried", &core.Directive{
			Selector: "[q]",
			Queries: core.QueryMap{
				{PropertyName: "first", Query: &core.Query{Selector: child}},
				{PropertyName: "inner", Query: &core.Query{Selector: child, IsViewQuery: true}},
				{PropertyName: "second", Query: &core.Query{Selector: child}},
			},
		})

		meta, err := env.resolver.ResolveDirective(dir)
		require.NoError(t, err)
		require.Len(t, meta.Queries, 2)
		assert.Equal(t, "first", meta.Queries[0].PropertyName)
		assert.Equal(t, "second", meta.Queries[1].PropertyName)
		require.Len(t, meta.ViewQueries, 1)
		assert.Equal(t, "inner", meta.ViewQueries[0].PropertyName)
	})

	t.Run("var-binding queries resolve each bound name", func(t *testing.T) {
		env := newTestEnv()
		query, err := env.resolver.ResolveQuery(&core.Query{Selector: "a, b"}, "items", "Owner")
		require.NoError(t, err)
		require.Len(t, query.Selectors, 2)
		assert.Equal(t, "a", query.Selectors[0].Value)
		assert.Equal(t, "b", query.Selectors[1].Value)
	})

	t.Run("a selector query without a selector names property and owner", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.resolver.ResolveQuery(&core.Query{}, "items", "MyComp")
		require.Error(t, err)
		assert.Contains(t, err.Error(),
			`can't construct a query for the property "items" of "MyComp" since the query selector wasn't defined`)
	})

	t.Run("the read token is resolved when present", func(t *testing.T) {
		env := newTestEnv()
		read := reflection.NewTypeHandle("ElementRef")
		query, err := env.resolver.ResolveQuery(
			&core.Query{Selector: "ref", Read: read}, "el", "Owner")
		require.NoError(t, err)
		require.NotNil(t, query.Read)
		assert.Equal(t, "ElementRef", query.Read.Name())
	})
}
