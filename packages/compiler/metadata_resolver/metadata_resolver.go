// Package metadata_resolver turns annotated nominal types plus reflective
// data into the closed, serializable metadata graph the code generator
// consumes: directive, pipe and module records with normalized providers,
// resolved constructor dependencies, partitioned queries and animation trees.
//
// Resolution is synchronous and single-threaded. The resolver owns four
// caches (directive, pipe, module, anonymous identity) with no built-in
// concurrency guard; concurrent hosts must confine it to one goroutine or
// serialize access externally.
package metadata_resolver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/zap"

	cpl "ngmeta-go/packages/compiler/compile_metadata"
	"ngmeta-go/packages/compiler/core"
	"ngmeta-go/packages/compiler/reflection"
	"ngmeta-go/packages/compiler/url_resolver"
	"ngmeta-go/packages/compiler/util"
)

// CompileMetadataResolver resolves annotated types into compile metadata.
type CompileMetadataResolver struct {
	reflector          reflection.ReflectorReader
	directiveResolver  DirectiveAnnotationResolver
	pipeResolver       PipeAnnotationResolver
	viewResolver       ViewAnnotationResolver
	ngModuleResolver   NgModuleAnnotationResolver
	lifecycleReflector LifecycleReflector
	schemeDetector     SchemeDetector
	logger             *zap.Logger

	directiveCache map[interface{}]*cpl.CompileDirectiveMetadata
	pipeCache      map[interface{}]*cpl.CompilePipeMetadata
	ngModuleCache  map[interface{}]*cpl.CompileNgModuleMetadata

	// anonymousTypes survives every cache invalidation so synthetic names
	// stay stable for the resolver's lifetime.
	anonymousTypes     map[interface{}]int
	anonymousTypeIndex int
}

// Option configures a CompileMetadataResolver.
type Option func(*CompileMetadataResolver)

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *CompileMetadataResolver) {
		r.logger = logger
	}
}

// WithDirectiveResolver substitutes the directive annotation resolver.
func WithDirectiveResolver(dr DirectiveAnnotationResolver) Option {
	return func(r *CompileMetadataResolver) {
		r.directiveResolver = dr
	}
}

// WithPipeResolver substitutes the pipe annotation resolver.
func WithPipeResolver(pr PipeAnnotationResolver) Option {
	return func(r *CompileMetadataResolver) {
		r.pipeResolver = pr
	}
}

// WithViewResolver substitutes the view descriptor resolver.
func WithViewResolver(vr ViewAnnotationResolver) Option {
	return func(r *CompileMetadataResolver) {
		r.viewResolver = vr
	}
}

// WithNgModuleResolver substitutes the module annotation resolver.
func WithNgModuleResolver(mr NgModuleAnnotationResolver) Option {
	return func(r *CompileMetadataResolver) {
		r.ngModuleResolver = mr
	}
}

// WithLifecycleReflector substitutes the lifecycle-hook tester.
func WithLifecycleReflector(lr LifecycleReflector) Option {
	return func(r *CompileMetadataResolver) {
		r.lifecycleReflector = lr
	}
}

// WithSchemeDetector substitutes the URL-scheme detector.
func WithSchemeDetector(sd SchemeDetector) Option {
	return func(r *CompileMetadataResolver) {
		r.schemeDetector = sd
	}
}

// NewCompileMetadataResolver creates a resolver over a reflector. Annotation
// resolvers default to the annotation-scanning implementations over the same
// reflector.
func NewCompileMetadataResolver(reflector reflection.ReflectorReader, opts ...Option) *CompileMetadataResolver {
	r := &CompileMetadataResolver{
		reflector:          reflector,
		directiveResolver:  NewDirectiveResolver(reflector),
		pipeResolver:       NewPipeResolver(reflector),
		viewResolver:       NewViewResolver(reflector),
		ngModuleResolver:   NewNgModuleResolver(reflector),
		lifecycleReflector: NewMapLifecycleReflector(),
		schemeDetector:     url_resolver.NewUrlResolver(),
		logger:             zap.NewNop(),
		directiveCache:     make(map[interface{}]*cpl.CompileDirectiveMetadata),
		pipeCache:          make(map[interface{}]*cpl.CompilePipeMetadata),
		ngModuleCache:      make(map[interface{}]*cpl.CompileNgModuleMetadata),
		anonymousTypes:     make(map[interface{}]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ClearCacheFor evicts one type's entries from the directive, pipe and
// module caches. The anonymous-identity map is left untouched so synthetic
// names survive invalidation.
func (r *CompileMetadataResolver) ClearCacheFor(typ interface{}) {
	typ = reflection.ResolveForwardRef(typ)
	delete(r.directiveCache, typ)
	delete(r.pipeCache, typ)
	delete(r.ngModuleCache, typ)
	r.logger.Debug("metadata cache evicted", zap.String("type", util.Stringify(typ)))
}

// ClearCache evicts the directive, pipe and module caches; the
// anonymous-identity map is never cleared.
func (r *CompileMetadataResolver) ClearCache() {
	r.directiveCache = make(map[interface{}]*cpl.CompileDirectiveMetadata)
	r.pipeCache = make(map[interface{}]*cpl.CompilePipeMetadata)
	r.ngModuleCache = make(map[interface{}]*cpl.CompileNgModuleMetadata)
	r.logger.Debug("metadata caches evicted")
}

// sanitizeTokenName computes the codegen-safe name of a token. Stringified
// forms in call-expression shape mark anonymous entities, which receive a
// deterministic synthetic name memoized per identity.
func (r *CompileMetadataResolver) sanitizeTokenName(token interface{}) string {
	identifier := util.Stringify(token)
	if strings.Contains(identifier, "(") {
		key := anonymousIdentityKey(token)
		index, ok := r.anonymousTypes[key]
		if !ok {
			index = r.anonymousTypeIndex
			r.anonymousTypes[key] = index
			r.anonymousTypeIndex++
			r.logger.Debug("assigned synthetic name",
				zap.Int("index", index), zap.String("token", identifier))
		}
		identifier = fmt.Sprintf("anonymous_token_%d_", index)
	}
	return util.SanitizeIdentifier(identifier)
}

// funcIdentity keys function values by their code pointer; Go function
// values themselves are not comparable.
type funcIdentity uintptr

func anonymousIdentityKey(token interface{}) interface{} {
	if rv := reflect.ValueOf(token); rv.Kind() == reflect.Func {
		return funcIdentity(rv.Pointer())
	}
	return token
}

// isValidType checks whether a value is a nominal type reference.
func isValidType(value interface{}) bool {
	switch value.(type) {
	case *reflection.TypeHandle, *cpl.StaticSymbol:
		return true
	}
	return false
}

// ResolveDirective resolves the directive or component metadata of a type.
// Metadata is computed at most once and cached; repeated calls return the
// identical record until the cache is invalidated.
func (r *CompileMetadataResolver) ResolveDirective(directiveType interface{}) (*cpl.CompileDirectiveMetadata, error) {
	directiveType = reflection.ResolveForwardRef(directiveType)
	if meta, ok := r.directiveCache[directiveType]; ok {
		return meta, nil
	}

	annotation, err := r.directiveResolver.Resolve(directiveType)
	if err != nil {
		return nil, err
	}

	var dirMeta *core.Directive
	var cmpMeta *core.Component
	switch a := annotation.(type) {
	case *core.Component:
		cmpMeta = a
		dirMeta = &a.Directive
	case *core.Directive:
		dirMeta = a
	default:
		return nil, resolutionErrorf("unexpected annotation %s on %s",
			util.Stringify(annotation), util.Stringify(directiveType))
	}

	var templateMeta *cpl.CompileTemplateMetadata
	var changeDetection *core.ChangeDetectionStrategy
	var viewProviders []cpl.CompileProviderEntry
	var precompileTypes []*cpl.CompileTypeMetadata
	moduleURL := ""

	if cmpMeta != nil {
		viewMeta, err := r.viewResolver.Resolve(directiveType)
		if err != nil {
			return nil, err
		}
		if err := util.AssertInterpolationSymbols("interpolation", viewMeta.Interpolation); err != nil {
			return nil, resolutionErrorf("component '%s': %v", util.Stringify(directiveType), err)
		}
		var animations []*cpl.CompileAnimationEntryMetadata
		for _, entry := range viewMeta.Animations {
			animations = append(animations, r.ResolveAnimationEntry(entry))
		}
		templateMeta = &cpl.CompileTemplateMetadata{
			Encapsulation:      viewMeta.Encapsulation,
			Template:           viewMeta.Template,
			TemplateURL:        viewMeta.TemplateURL,
			Styles:             orEmptyStrings(viewMeta.Styles),
			StyleURLs:          orEmptyStrings(viewMeta.StyleURLs),
			Animations:         animations,
			NgContentSelectors: []string{},
			Interpolation:      viewMeta.Interpolation,
		}
		changeDetection = cmpMeta.ChangeDetection

		if cmpMeta.ViewProviders != nil {
			verified, err := verifyNonBlankProviders(directiveType, cmpMeta.ViewProviders, "viewProviders")
			if err != nil {
				return nil, err
			}
			viewProviders, err = r.ResolveProviders(verified)
			if err != nil {
				return nil, err
			}
		}

		moduleURL = r.componentModuleURL(directiveType, cmpMeta)

		for _, entry := range flattenList(cmpMeta.Precompile) {
			typeMeta, err := r.ResolveTypeMetadata(entry, "", nil)
			if err != nil {
				return nil, err
			}
			precompileTypes = append(precompileTypes, typeMeta)
		}
	}

	var providers []cpl.CompileProviderEntry
	if dirMeta.Providers != nil {
		verified, err := verifyNonBlankProviders(directiveType, dirMeta.Providers, "providers")
		if err != nil {
			return nil, err
		}
		providers, err = r.ResolveProviders(verified)
		if err != nil {
			return nil, err
		}
	}

	var queries, viewQueries []*cpl.CompileQueryMetadata
	if dirMeta.Queries != nil {
		queries, err = r.ResolveQueriesMap(dirMeta.Queries, false, directiveType)
		if err != nil {
			return nil, err
		}
		viewQueries, err = r.ResolveQueriesMap(dirMeta.Queries, true, directiveType)
		if err != nil {
			return nil, err
		}
	}

	var lifecycleHooks []core.LifecycleHooks
	for _, hook := range core.LifecycleHooksValues {
		if r.lifecycleReflector.HasLifecycleHook(hook, directiveType) {
			lifecycleHooks = append(lifecycleHooks, hook)
		}
	}

	typeMeta, err := r.ResolveTypeMetadata(directiveType, moduleURL, nil)
	if err != nil {
		return nil, err
	}

	meta := cpl.CreateDirectiveMetadata(cpl.CompileDirectiveArgs{
		Type:            typeMeta,
		IsComponent:     templateMeta != nil,
		Selector:        dirMeta.Selector,
		ExportAs:        dirMeta.ExportAs,
		ChangeDetection: changeDetection,
		Inputs:          dirMeta.Inputs,
		Outputs:         dirMeta.Outputs,
		Host:            dirMeta.Host,
		LifecycleHooks:  lifecycleHooks,
		Providers:       providers,
		ViewProviders:   viewProviders,
		Queries:         queries,
		ViewQueries:     viewQueries,
		Precompile:      precompileTypes,
		Template:        templateMeta,
	})
	r.directiveCache[directiveType] = meta
	r.logger.Debug("directive metadata resolved",
		zap.String("type", typeMeta.Name), zap.Bool("isComponent", meta.IsComponent))
	return meta, nil
}

// MaybeResolveDirective is ResolveDirective with the "not annotated as a
// directive" failure downgraded to a nil result; every other error is
// re-raised.
func (r *CompileMetadataResolver) MaybeResolveDirective(directiveType interface{}) (*cpl.CompileDirectiveMetadata, error) {
	meta, err := r.ResolveDirective(directiveType)
	if err != nil {
		if errors.Is(err, ErrNoDirectiveAnnotation) {
			return nil, nil
		}
		return nil, err
	}
	return meta, nil
}

// ResolvePipe resolves the pipe metadata of a type, cached like directives.
func (r *CompileMetadataResolver) ResolvePipe(pipeType interface{}) (*cpl.CompilePipeMetadata, error) {
	pipeType = reflection.ResolveForwardRef(pipeType)
	if meta, ok := r.pipeCache[pipeType]; ok {
		return meta, nil
	}

	pipeMeta, err := r.pipeResolver.Resolve(pipeType)
	if err != nil {
		return nil, err
	}
	typeMeta, err := r.ResolveTypeMetadata(pipeType, staticTypeModuleURL(pipeType), nil)
	if err != nil {
		return nil, err
	}
	var lifecycleHooks []core.LifecycleHooks
	for _, hook := range core.LifecycleHooksValues {
		if r.lifecycleReflector.HasLifecycleHook(hook, pipeType) {
			lifecycleHooks = append(lifecycleHooks, hook)
		}
	}

	meta := &cpl.CompilePipeMetadata{
		Type:           typeMeta,
		Name:           pipeMeta.Name,
		Pure:           pipeMeta.IsPure(),
		LifecycleHooks: lifecycleHooks,
	}
	r.pipeCache[pipeType] = meta
	r.logger.Debug("pipe metadata resolved", zap.String("type", typeMeta.Name))
	return meta, nil
}

// ResolveNgModule resolves a module into transitively flattened metadata.
// When a raw annotation is supplied directly the cache is bypassed entirely:
// the type cannot be trusted as a stable cache key for externally-supplied
// metadata.
func (r *CompileMetadataResolver) ResolveNgModule(moduleType interface{}, meta *core.NgModule) (*cpl.CompileNgModuleMetadata, error) {
	moduleType = reflection.ResolveForwardRef(moduleType)
	useCache := meta == nil
	if useCache {
		if compiled, ok := r.ngModuleCache[moduleType]; ok {
			return compiled, nil
		}
		var err error
		meta, err = r.ngModuleResolver.Resolve(moduleType)
		if err != nil {
			return nil, err
		}
	}

	providers := []cpl.CompileProviderEntry{}
	directives := []*cpl.CompileTypeMetadata{}
	pipes := []*cpl.CompileTypeMetadata{}
	precompile := []*cpl.CompileTypeMetadata{}
	modules := []*cpl.CompileTypeMetadata{}

	if meta.Providers != nil {
		resolved, err := r.ResolveProviders(meta.Providers)
		if err != nil {
			return nil, err
		}
		providers = append(providers, resolved...)
	}
	for _, entry := range flattenList(meta.Directives) {
		typeMeta, err := r.ResolveTypeMetadata(entry, "", nil)
		if err != nil {
			return nil, err
		}
		directives = append(directives, typeMeta)
	}
	for _, entry := range flattenList(meta.Pipes) {
		typeMeta, err := r.ResolveTypeMetadata(entry, "", nil)
		if err != nil {
			return nil, err
		}
		pipes = append(pipes, typeMeta)
	}
	for _, entry := range flattenList(meta.Precompile) {
		typeMeta, err := r.ResolveTypeMetadata(entry, "", nil)
		if err != nil {
			return nil, err
		}
		precompile = append(precompile, typeMeta)
	}

	// Transitive flattening: a nested module contributes its own lists plus
	// its type and its already-flat module list. Repeated inclusion is
	// preserved, not deduplicated.
	for _, nested := range flattenList(meta.Modules) {
		nestedMeta, err := r.ResolveNgModule(nested, nil)
		if err != nil {
			return nil, err
		}
		providers = append(providers, nestedMeta.Providers...)
		directives = append(directives, nestedMeta.Directives...)
		pipes = append(pipes, nestedMeta.Pipes...)
		precompile = append(precompile, nestedMeta.Precompile...)
		modules = append(modules, nestedMeta.Type)
		modules = append(modules, nestedMeta.Modules...)
	}

	typeMeta, err := r.ResolveTypeMetadata(moduleType, "", nil)
	if err != nil {
		return nil, err
	}
	compiled := &cpl.CompileNgModuleMetadata{
		Type:       typeMeta,
		Providers:  providers,
		Directives: directives,
		Pipes:      pipes,
		Precompile: precompile,
		Modules:    modules,
	}
	if useCache {
		r.ngModuleCache[moduleType] = compiled
	}
	r.logger.Debug("module metadata resolved",
		zap.String("type", typeMeta.Name), zap.Int("modules", len(modules)))
	return compiled, nil
}

// ResolveViewDirectives resolves every directive a component's view declares,
// flattening nested lists.
func (r *CompileMetadataResolver) ResolveViewDirectives(component interface{}) ([]*cpl.CompileDirectiveMetadata, error) {
	component = reflection.ResolveForwardRef(component)
	viewMeta, err := r.viewResolver.Resolve(component)
	if err != nil {
		return nil, err
	}
	result := []*cpl.CompileDirectiveMetadata{}
	for _, entry := range flattenList(viewMeta.Directives) {
		entry = reflection.ResolveForwardRef(entry)
		if !isValidType(entry) {
			return nil, resolutionErrorf("unexpected directive value '%s' on the View of component '%s'",
				util.Stringify(entry), util.Stringify(component))
		}
		meta, err := r.ResolveDirective(entry)
		if err != nil {
			return nil, err
		}
		result = append(result, meta)
	}
	return result, nil
}

// ResolveViewPipes resolves every pipe a component's view declares,
// flattening nested lists.
func (r *CompileMetadataResolver) ResolveViewPipes(component interface{}) ([]*cpl.CompilePipeMetadata, error) {
	component = reflection.ResolveForwardRef(component)
	viewMeta, err := r.viewResolver.Resolve(component)
	if err != nil {
		return nil, err
	}
	result := []*cpl.CompilePipeMetadata{}
	for _, entry := range flattenList(viewMeta.Pipes) {
		entry = reflection.ResolveForwardRef(entry)
		if !isValidType(entry) {
			return nil, resolutionErrorf("unexpected piped value '%s' on the View of component '%s'",
				util.Stringify(entry), util.Stringify(component))
		}
		meta, err := r.ResolvePipe(entry)
		if err != nil {
			return nil, err
		}
		result = append(result, meta)
	}
	return result, nil
}

// ResolveTypeMetadata resolves a type identifier together with its
// constructor dependencies. Explicit dependencies, when non-nil, take the
// place of the reflective parameter lookup.
func (r *CompileMetadataResolver) ResolveTypeMetadata(typ interface{}, moduleURL string, dependencies []interface{}) (*cpl.CompileTypeMetadata, error) {
	typ = reflection.ResolveForwardRef(typ)
	diDeps, err := r.ResolveDependencies(typ, dependencies)
	if err != nil {
		return nil, err
	}
	return &cpl.CompileTypeMetadata{
		CompileIdentifierMetadata: cpl.CompileIdentifierMetadata{
			Name:      r.sanitizeTokenName(typ),
			ModuleURL: moduleURL,
			Runtime:   typ,
		},
		DiDeps: diDeps,
	}, nil
}

// ResolveFactoryMetadata is the factory-identifier variant of
// ResolveTypeMetadata, carrying the callable's own resolved dependencies.
func (r *CompileMetadataResolver) ResolveFactoryMetadata(factory interface{}, moduleURL string, dependencies []interface{}) (*cpl.CompileFactoryMetadata, error) {
	factory = reflection.ResolveForwardRef(factory)
	diDeps, err := r.ResolveDependencies(factory, dependencies)
	if err != nil {
		return nil, err
	}
	return &cpl.CompileFactoryMetadata{
		CompileIdentifierMetadata: cpl.CompileIdentifierMetadata{
			Name:      r.sanitizeTokenName(factory),
			ModuleURL: moduleURL,
			Runtime:   factory,
		},
		DiDeps: diDeps,
	}, nil
}

// ResolveDependencies resolves one dependency record per constructor
// parameter. A parameter is either a bare token or a qualifier list; a list
// is scanned for qualifier markers, an attribute name, a query, an explicit
// inject token, or a first valid nominal type. A parameter with no
// determinable token, query or view query marks the whole list invalid:
// resolution is all-or-nothing.
func (r *CompileMetadataResolver) ResolveDependencies(typeOrFunc interface{}, dependencies []interface{}) ([]*cpl.CompileDiDependencyMetadata, error) {
	params := dependencies
	if params == nil {
		for _, reflected := range r.reflector.Parameters(typeOrFunc) {
			params = append(params, interface{}(reflected))
		}
	}

	hasUnknownDeps := false
	result := make([]*cpl.CompileDiDependencyMetadata, 0, len(params))

	for _, param := range params {
		if param == nil {
			hasUnknownDeps = true
			result = append(result, nil)
			continue
		}

		isAttribute := false
		isHost := false
		isSelf := false
		isSkipSelf := false
		isOptional := false
		var query, viewQuery *core.Query
		var token interface{}

		if qualifiers, ok := asQualifierList(param); ok {
			for _, entry := range qualifiers {
				switch q := entry.(type) {
				case *core.Host:
					isHost = true
				case *core.Self:
					isSelf = true
				case *core.SkipSelf:
					isSkipSelf = true
				case *core.Optional:
					isOptional = true
				case *core.Attribute:
					isAttribute = true
					token = q.Name
				case *core.Query:
					if q.IsViewQuery {
						viewQuery = q
					} else {
						query = q
					}
				case *core.Inject:
					token = q.Token
				default:
					if token == nil && isValidType(reflection.ResolveForwardRef(entry)) {
						token = entry
					}
				}
			}
		} else {
			token = param
		}

		if token == nil && query == nil && viewQuery == nil {
			hasUnknownDeps = true
			result = append(result, nil)
			continue
		}

		dep := &cpl.CompileDiDependencyMetadata{
			IsAttribute: isAttribute,
			IsHost:      isHost,
			IsSelf:      isSelf,
			IsSkipSelf:  isSkipSelf,
			IsOptional:  isOptional,
		}
		if query != nil {
			resolved, err := r.ResolveQuery(query, "", typeOrFunc)
			if err != nil {
				return nil, err
			}
			dep.Query = resolved
		}
		if viewQuery != nil {
			resolved, err := r.ResolveQuery(viewQuery, "", typeOrFunc)
			if err != nil {
				return nil, err
			}
			dep.ViewQuery = resolved
		}
		if token != nil {
			dep.Token = r.ResolveToken(token)
		}
		result = append(result, dep)
	}

	if hasUnknownDeps {
		parts := make([]string, len(result))
		for i, dep := range result {
			if dep != nil && dep.Token != nil {
				parts[i] = dep.Token.Name()
			} else {
				parts[i] = "?"
			}
		}
		return nil, resolutionErrorf("invalid dependency configuration of %s (%s)",
			util.Stringify(typeOrFunc), strings.Join(parts, ", "))
	}
	return result, nil
}

// asQualifierList reports whether a parameter is a composite qualifier list.
func asQualifierList(param interface{}) ([]interface{}, bool) {
	list, ok := param.([]interface{})
	return list, ok
}

// ResolveToken canonicalizes a raw token. String tokens become literal-value
// tokens; everything else wraps an identifier with a sanitized name.
func (r *CompileMetadataResolver) ResolveToken(token interface{}) *cpl.CompileTokenMetadata {
	token = reflection.ResolveForwardRef(token)
	if value, ok := token.(string); ok {
		return &cpl.CompileTokenMetadata{Value: value}
	}
	return &cpl.CompileTokenMetadata{
		Identifier: &cpl.CompileIdentifierMetadata{
			Runtime: token,
			Name:    r.sanitizeTokenName(token),
		},
	}
}

// ResolveProviders normalizes a raw provider list into one flat list,
// recursing through arbitrarily nested sub-lists in pre-order.
func (r *CompileMetadataResolver) ResolveProviders(providers []interface{}) ([]cpl.CompileProviderEntry, error) {
	result := []cpl.CompileProviderEntry{}
	for _, provider := range providers {
		provider = reflection.ResolveForwardRef(provider)
		if nested, ok := provider.([]interface{}); ok {
			entries, err := r.ResolveProviders(nested)
			if err != nil {
				return nil, err
			}
			result = append(result, entries...)
			continue
		}
		if structured, ok := provider.(*core.Provider); ok {
			entry, err := r.resolveProvider(structured)
			if err != nil {
				return nil, err
			}
			result = append(result, entry)
			continue
		}
		if literal, ok := asProviderLiteral(provider); ok {
			entry, err := r.resolveProvider(literal)
			if err != nil {
				return nil, err
			}
			result = append(result, entry)
			continue
		}
		if isValidType(provider) {
			typeMeta, err := r.ResolveTypeMetadata(provider, "", nil)
			if err != nil {
				return nil, err
			}
			result = append(result, typeMeta)
			continue
		}
		return nil, resolutionErrorf("invalid provider - only instances of Provider and Type are allowed, got: %s",
			util.Stringify(provider))
	}
	return result, nil
}

// asProviderLiteral recognizes the plain-record provider shorthand: a string
// map carrying a "provide" key.
func asProviderLiteral(value interface{}) (*core.Provider, bool) {
	record, ok := value.(map[string]interface{})
	if !ok {
		return nil, false
	}
	token, ok := record["provide"]
	if !ok {
		return nil, false
	}
	provider := &core.Provider{Token: token}
	provider.UseClass = record["useClass"]
	provider.UseValue = record["useValue"]
	provider.UseFactory = record["useFactory"]
	provider.UseExisting = record["useExisting"]
	if deps, ok := record["deps"].([]interface{}); ok {
		provider.Deps = deps
	}
	if multi, ok := record["multi"].(bool); ok {
		provider.Multi = multi
	}
	return provider, true
}

// resolveProvider normalizes one structured provider record. Exactly one of
// the four strategy fields is resolved; the dependency list is carried only
// for the class and factory strategies.
func (r *CompileMetadataResolver) resolveProvider(provider *core.Provider) (*cpl.CompileProviderMetadata, error) {
	var compileDeps []*cpl.CompileDiDependencyMetadata
	var compileType *cpl.CompileTypeMetadata
	var compileFactory *cpl.CompileFactoryMetadata
	var useExisting *cpl.CompileTokenMetadata
	var err error

	if provider.UseClass != nil {
		compileType, err = r.ResolveTypeMetadata(provider.UseClass, "", provider.Deps)
		if err != nil {
			return nil, err
		}
		compileDeps = compileType.DiDeps
	} else if provider.UseFactory != nil {
		compileFactory, err = r.ResolveFactoryMetadata(provider.UseFactory, "", provider.Deps)
		if err != nil {
			return nil, err
		}
		compileDeps = compileFactory.DiDeps
	} else if provider.UseExisting != nil {
		useExisting = r.ResolveToken(provider.UseExisting)
	}

	return &cpl.CompileProviderMetadata{
		Token:       r.ResolveToken(provider.Token),
		UseClass:    compileType,
		UseValue:    provider.UseValue,
		UseFactory:  compileFactory,
		UseExisting: useExisting,
		Deps:        compileDeps,
		Multi:       provider.Multi,
	}, nil
}

// ResolveQuery resolves one query declaration. Var-binding queries resolve
// each bound name into a literal-value token; selector queries require a
// selector.
func (r *CompileMetadataResolver) ResolveQuery(query *core.Query, propertyName string, typeOrFunc interface{}) (*cpl.CompileQueryMetadata, error) {
	var selectors []*cpl.CompileTokenMetadata
	if query.IsVarBindingQuery() {
		for _, name := range query.VarBindings() {
			selectors = append(selectors, r.ResolveToken(name))
		}
	} else {
		if query.Selector == nil {
			return nil, resolutionErrorf("can't construct a query for the property \"%s\" of \"%s\" since the query selector wasn't defined",
				propertyName, util.Stringify(typeOrFunc))
		}
		selectors = []*cpl.CompileTokenMetadata{r.ResolveToken(query.Selector)}
	}

	var read *cpl.CompileTokenMetadata
	if query.Read != nil {
		read = r.ResolveToken(query.Read)
	}
	return &cpl.CompileQueryMetadata{
		Selectors:    selectors,
		Descendants:  query.Descendants,
		First:        query.First,
		PropertyName: propertyName,
		Read:         read,
	}, nil
}

// ResolveQueriesMap resolves the partition of a query map matching the
// requested view flag, preserving declaration order.
func (r *CompileMetadataResolver) ResolveQueriesMap(queries core.QueryMap, wantViewQueries bool, owner interface{}) ([]*cpl.CompileQueryMetadata, error) {
	result := []*cpl.CompileQueryMetadata{}
	for _, entry := range queries {
		if entry.Query == nil || entry.Query.IsViewQuery != wantViewQueries {
			continue
		}
		resolved, err := r.ResolveQuery(entry.Query, entry.PropertyName, owner)
		if err != nil {
			return nil, err
		}
		result = append(result, resolved)
	}
	return result, nil
}

// componentModuleURL computes the module-resolution URL of a component: a
// static symbol's file path, else a declared module id (scheme-prefixed when
// bare), else the reflective import URI.
func (r *CompileMetadataResolver) componentModuleURL(typ interface{}, cmpMeta *core.Component) string {
	if symbol, ok := typ.(*cpl.StaticSymbol); ok {
		return symbol.FilePath
	}
	if cmpMeta.ModuleID != "" {
		if scheme := r.schemeDetector.SchemeOf(cmpMeta.ModuleID); scheme != "" {
			return cmpMeta.ModuleID
		}
		return "package:" + cmpMeta.ModuleID
	}
	return r.reflector.ImportUri(typ)
}

// staticTypeModuleURL is the module URL of static symbols, "" otherwise.
func staticTypeModuleURL(typ interface{}) string {
	if symbol, ok := typ.(*cpl.StaticSymbol); ok {
		return symbol.FilePath
	}
	return ""
}

// verifyNonBlankProviders rejects provider trees containing nil entries. The
// error lists every flattened entry, blanks rendered as "?". Runs once per
// top-level provider-list call site; nested module providers reached through
// module flattening are not re-checked.
func verifyNonBlankProviders(directiveType interface{}, providersTree []interface{}, providersType string) ([]interface{}, error) {
	flat := flattenList(providersTree)
	hasBlank := false
	parts := make([]string, len(flat))
	for i, entry := range flat {
		if entry == nil {
			hasBlank = true
			parts[i] = "?"
		} else {
			parts[i] = util.Stringify(entry)
		}
	}
	if hasBlank {
		return nil, resolutionErrorf("one or more of %s for \"%s\" were not defined: [%s]",
			providersType, util.Stringify(directiveType), strings.Join(parts, ", "))
	}
	return providersTree, nil
}

// flattenList flattens arbitrarily nested lists in pre-order.
func flattenList(tree []interface{}) []interface{} {
	out := []interface{}{}
	for _, entry := range tree {
		if nested, ok := entry.([]interface{}); ok {
			out = append(out, flattenList(nested)...)
		} else {
			out = append(out, entry)
		}
	}
	return out
}

func orEmptyStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
