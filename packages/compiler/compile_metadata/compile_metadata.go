// Package compile_metadata defines the closed, serializable metadata records
// the resolver produces. Records carry no behavior beyond identity; live
// runtime handles are excluded from serialization so a static-symbol graph
// round-trips without loading code.
package compile_metadata

import (
	"regexp"

	"ngmeta-go/packages/compiler/core"
	"ngmeta-go/packages/compiler/util"
)

// StaticSymbol is a type reference represented as a name plus source-file
// path, used when the real type cannot be loaded at resolution time.
type StaticSymbol struct {
	FilePath string `json:"filePath"`
	Name     string `json:"name"`
}

// NewStaticSymbol creates a static symbol
func NewStaticSymbol(filePath, name string) *StaticSymbol {
	return &StaticSymbol{FilePath: filePath, Name: name}
}

func (s *StaticSymbol) String() string {
	return s.Name
}

// IsStaticSymbol checks whether a value is a static symbol reference
func IsStaticSymbol(value interface{}) bool {
	_, ok := value.(*StaticSymbol)
	return ok
}

// CompileIdentifierMetadata is a stable, codegen-safe reference to an entity.
type CompileIdentifierMetadata struct {
	// Name is a sanitized identifier, unique enough for code generation.
	Name      string      `json:"name"`
	ModuleURL string      `json:"moduleUrl,omitempty"`
	Runtime   interface{} `json:"-"`
}

// Equals reports whether two identifiers refer to the same entity: equal
// runtime handles when both are present, else a matching (name, moduleUrl)
// pair (static-symbol mode).
func (id *CompileIdentifierMetadata) Equals(other *CompileIdentifierMetadata) bool {
	if other == nil {
		return false
	}
	if id.Runtime != nil && other.Runtime != nil {
		return id.Runtime == other.Runtime
	}
	return id.Name == other.Name && id.ModuleURL == other.ModuleURL
}

// CompileTokenMetadata is a dependency-injection lookup key: either a literal
// string value or an identifier-wrapped entity.
type CompileTokenMetadata struct {
	Value      interface{}                `json:"value,omitempty"`
	Identifier *CompileIdentifierMetadata `json:"identifier,omitempty"`
}

// Name returns the diagnostic name of the token.
func (t *CompileTokenMetadata) Name() string {
	if t.Identifier != nil {
		return t.Identifier.Name
	}
	return util.Stringify(t.Value)
}

// Equals reports token equality under identifier-equality semantics.
func (t *CompileTokenMetadata) Equals(other *CompileTokenMetadata) bool {
	if other == nil {
		return false
	}
	if t.Identifier != nil || other.Identifier != nil {
		if t.Identifier == nil || other.Identifier == nil {
			return false
		}
		return t.Identifier.Equals(other.Identifier)
	}
	return t.Value == other.Value
}

// CompileDiDependencyMetadata is one resolved constructor parameter.
type CompileDiDependencyMetadata struct {
	IsAttribute bool                  `json:"isAttribute"`
	IsSelf      bool                  `json:"isSelf"`
	IsHost      bool                  `json:"isHost"`
	IsSkipSelf  bool                  `json:"isSkipSelf"`
	IsOptional  bool                  `json:"isOptional"`
	Query       *CompileQueryMetadata `json:"query,omitempty"`
	ViewQuery   *CompileQueryMetadata `json:"viewQuery,omitempty"`
	Token       *CompileTokenMetadata `json:"token,omitempty"`
}

// CompileTypeMetadata is an identifier plus the resolved dependencies of the
// type's constructor.
type CompileTypeMetadata struct {
	CompileIdentifierMetadata
	DiDeps []*CompileDiDependencyMetadata `json:"diDeps"`
}

// CompileFactoryMetadata is an identifier for a callable plus the resolved
// dependencies of the callable's own parameters.
type CompileFactoryMetadata struct {
	CompileIdentifierMetadata
	DiDeps []*CompileDiDependencyMetadata `json:"diDeps"`
}

// CompileProviderEntry is one normalized provider-list entry: either a full
// *CompileProviderMetadata record or a *CompileTypeMetadata produced by the
// bare-type "provide itself via its own class" shorthand.
type CompileProviderEntry interface {
	isProviderEntry()
}

func (*CompileProviderMetadata) isProviderEntry() {}
func (*CompileTypeMetadata) isProviderEntry()     {}

// CompileProviderMetadata is a normalized provider record. Exactly one of
// UseClass/UseValue/UseFactory/UseExisting is the resolution strategy; Deps
// is populated only for the class and factory strategies.
type CompileProviderMetadata struct {
	Token       *CompileTokenMetadata          `json:"token"`
	UseClass    *CompileTypeMetadata           `json:"useClass,omitempty"`
	UseValue    interface{}                    `json:"useValue,omitempty"`
	UseFactory  *CompileFactoryMetadata        `json:"useFactory,omitempty"`
	UseExisting *CompileTokenMetadata          `json:"useExisting,omitempty"`
	Deps        []*CompileDiDependencyMetadata `json:"deps,omitempty"`
	Multi       bool                           `json:"multi"`
}

// CompileQueryMetadata is a resolved content or view query.
type CompileQueryMetadata struct {
	Selectors    []*CompileTokenMetadata `json:"selectors"`
	Descendants  bool                    `json:"descendants"`
	First        bool                    `json:"first"`
	PropertyName string                  `json:"propertyName"`
	Read         *CompileTokenMetadata   `json:"read,omitempty"`
}

// CompileTemplateMetadata describes a component's view.
type CompileTemplateMetadata struct {
	Encapsulation      core.ViewEncapsulation           `json:"encapsulation"`
	Template           string                           `json:"template,omitempty"`
	TemplateURL        string                           `json:"templateUrl,omitempty"`
	Styles             []string                         `json:"styles"`
	StyleURLs          []string                         `json:"styleUrls"`
	Animations         []*CompileAnimationEntryMetadata `json:"animations,omitempty"`
	NgContentSelectors []string                         `json:"ngContentSelectors"`
	Interpolation      []string                         `json:"interpolation,omitempty"`
}

// CompileDirectiveMetadata is the fully resolved metadata of a directive or
// component.
type CompileDirectiveMetadata struct {
	Type            *CompileTypeMetadata          `json:"type"`
	IsComponent     bool                          `json:"isComponent"`
	Selector        string                        `json:"selector,omitempty"`
	ExportAs        string                        `json:"exportAs,omitempty"`
	ChangeDetection *core.ChangeDetectionStrategy `json:"changeDetection,omitempty"`
	Inputs          map[string]string             `json:"inputs"`
	Outputs         map[string]string             `json:"outputs"`
	HostListeners   map[string]string             `json:"hostListeners"`
	HostProperties  map[string]string             `json:"hostProperties"`
	HostAttributes  map[string]string             `json:"hostAttributes"`
	LifecycleHooks  []core.LifecycleHooks         `json:"lifecycleHooks"`
	Providers       []CompileProviderEntry        `json:"providers"`
	ViewProviders   []CompileProviderEntry        `json:"viewProviders"`
	Queries         []*CompileQueryMetadata       `json:"queries"`
	ViewQueries     []*CompileQueryMetadata       `json:"viewQueries"`
	Precompile      []*CompileTypeMetadata        `json:"precompile"`
	Template        *CompileTemplateMetadata      `json:"template,omitempty"`
}

// CompilePipeMetadata is the fully resolved metadata of a pipe.
type CompilePipeMetadata struct {
	Type           *CompileTypeMetadata  `json:"type"`
	Name           string                `json:"name"`
	Pure           bool                  `json:"pure"`
	LifecycleHooks []core.LifecycleHooks `json:"lifecycleHooks"`
}

// CompileNgModuleMetadata is the fully resolved, transitively flattened
// metadata of a module. Modules lists every transitively reachable module
// type in append order; repeated inclusion is preserved, not deduplicated.
type CompileNgModuleMetadata struct {
	Type       *CompileTypeMetadata   `json:"type"`
	Providers  []CompileProviderEntry `json:"providers"`
	Directives []*CompileTypeMetadata `json:"directives"`
	Pipes      []*CompileTypeMetadata `json:"pipes"`
	Precompile []*CompileTypeMetadata `json:"precompile"`
	Modules    []*CompileTypeMetadata `json:"modules"`
}

// hostBindingRegexp matches host keys of the form [property] or (event);
// everything else is a static attribute.
var hostBindingRegexp = regexp.MustCompile(`^(?:(?:\[([^\]]+)\])|(?:\(([^)]+)\)))$`)

// CompileDirectiveArgs carries the declared inputs of directive-metadata assembly.
type CompileDirectiveArgs struct {
	Type            *CompileTypeMetadata
	IsComponent     bool
	Selector        string
	ExportAs        string
	ChangeDetection *core.ChangeDetectionStrategy
	Inputs          []string
	Outputs         []string
	Host            map[string]string
	LifecycleHooks  []core.LifecycleHooks
	Providers       []CompileProviderEntry
	ViewProviders   []CompileProviderEntry
	Queries         []*CompileQueryMetadata
	ViewQueries     []*CompileQueryMetadata
	Precompile      []*CompileTypeMetadata
	Template        *CompileTemplateMetadata
}

// CreateDirectiveMetadata assembles directive metadata from declared inputs:
// "prop: bindingProp" input/output declarations become declared-name to
// template-name maps, and the host map partitions into attributes,
// properties and listeners.
func CreateDirectiveMetadata(args CompileDirectiveArgs) *CompileDirectiveMetadata {
	hostListeners := map[string]string{}
	hostProperties := map[string]string{}
	hostAttributes := map[string]string{}
	for key, value := range args.Host {
		matches := hostBindingRegexp.FindStringSubmatch(key)
		if matches == nil {
			hostAttributes[key] = value
		} else if matches[1] != "" {
			hostProperties[matches[1]] = value
		} else if matches[2] != "" {
			hostListeners[matches[2]] = value
		}
	}

	inputsMap := map[string]string{}
	for _, bindConfig := range args.Inputs {
		// canonical syntax: `dirProp: elProp`
		parts := util.SplitAtColon(bindConfig, []string{bindConfig, bindConfig})
		inputsMap[parts[0]] = parts[1]
	}
	outputsMap := map[string]string{}
	for _, bindConfig := range args.Outputs {
		parts := util.SplitAtColon(bindConfig, []string{bindConfig, bindConfig})
		outputsMap[parts[0]] = parts[1]
	}

	providers := args.Providers
	if providers == nil {
		providers = []CompileProviderEntry{}
	}
	viewProviders := args.ViewProviders
	if viewProviders == nil {
		viewProviders = []CompileProviderEntry{}
	}
	queries := args.Queries
	if queries == nil {
		queries = []*CompileQueryMetadata{}
	}
	viewQueries := args.ViewQueries
	if viewQueries == nil {
		viewQueries = []*CompileQueryMetadata{}
	}
	precompile := args.Precompile
	if precompile == nil {
		precompile = []*CompileTypeMetadata{}
	}

	return &CompileDirectiveMetadata{
		Type:            args.Type,
		IsComponent:     args.IsComponent,
		Selector:        args.Selector,
		ExportAs:        args.ExportAs,
		ChangeDetection: args.ChangeDetection,
		Inputs:          inputsMap,
		Outputs:         outputsMap,
		HostListeners:   hostListeners,
		HostProperties:  hostProperties,
		HostAttributes:  hostAttributes,
		LifecycleHooks:  args.LifecycleHooks,
		Providers:       providers,
		ViewProviders:   viewProviders,
		Queries:         queries,
		ViewQueries:     viewQueries,
		Precompile:      precompile,
		Template:        args.Template,
	}
}
