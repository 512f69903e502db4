package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ngmeta-go/packages/compiler/core"
	"ngmeta-go/packages/compiler/metadata_resolver"
	"ngmeta-go/packages/compiler/reflection"
	"ngmeta-go/packages/compiler/util"
)

// Manifest is the JSON description of a host program's annotated types.
// Type references inside annotation fields are strings prefixed with "@";
// unprefixed strings stay literal string tokens.
type Manifest struct {
	Types   []ManifestType `json:"types"`
	Resolve []string       `json:"resolve"`
}

// ManifestType declares one host type with its annotations and constructor
// parameters.
type ManifestType struct {
	Name           string                 `json:"name"`
	ImportURI      string                 `json:"importUri"`
	Parameters     [][]ManifestParamEntry `json:"parameters"`
	LifecycleHooks []string               `json:"lifecycleHooks"`
	Directive      *ManifestDirective     `json:"directive"`
	Component      *ManifestComponent     `json:"component"`
	Pipe           *ManifestPipe          `json:"pipe"`
	Module         *ManifestModule        `json:"module"`
}

// ManifestParamEntry is one qualifier of one constructor parameter.
type ManifestParamEntry struct {
	Type      string      `json:"type"`
	Inject    interface{} `json:"inject"`
	Attribute string      `json:"attribute"`
	Host      bool        `json:"host"`
	Self      bool        `json:"self"`
	SkipSelf  bool        `json:"skipSelf"`
	Optional  bool        `json:"optional"`
}

// ManifestDirective mirrors the directive annotation.
type ManifestDirective struct {
	Selector  string            `json:"selector"`
	ExportAs  string            `json:"exportAs"`
	Inputs    []string          `json:"inputs"`
	Outputs   []string          `json:"outputs"`
	Host      map[string]string `json:"host"`
	Providers []interface{}     `json:"providers"`
}

// ManifestComponent mirrors the component annotation.
type ManifestComponent struct {
	ManifestDirective

	ModuleID        string        `json:"moduleId"`
	ChangeDetection string        `json:"changeDetection"`
	Encapsulation   string        `json:"encapsulation"`
	Template        string        `json:"template"`
	TemplateURL     string        `json:"templateUrl"`
	Styles          []interface{} `json:"styles"`
	StyleURLs       []interface{} `json:"styleUrls"`
	Interpolation   []string      `json:"interpolation"`
	ViewProviders   []interface{} `json:"viewProviders"`
	Precompile      []interface{} `json:"precompile"`
	Directives      []interface{} `json:"directives"`
	Pipes           []interface{} `json:"pipes"`
}

// ManifestPipe mirrors the pipe annotation.
type ManifestPipe struct {
	Name string `json:"name"`
	Pure *bool  `json:"pure"`
}

// ManifestModule mirrors the module annotation.
type ManifestModule struct {
	Providers  []interface{} `json:"providers"`
	Directives []interface{} `json:"directives"`
	Pipes      []interface{} `json:"pipes"`
	Precompile []interface{} `json:"precompile"`
	Modules    []interface{} `json:"modules"`
}

// ManifestRegistry is the resolver environment built from a manifest.
type ManifestRegistry struct {
	Reflector *reflection.Reflector
	Lifecycle *metadata_resolver.MapLifecycleReflector
	Handles   map[string]*reflection.TypeHandle
	Roots     []string
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &manifest, nil
}

// BuildRegistry turns a manifest into a registered reflector environment.
func (m *Manifest) BuildRegistry() (*ManifestRegistry, error) {
	registry := &ManifestRegistry{
		Reflector: reflection.NewReflector(),
		Lifecycle: metadata_resolver.NewMapLifecycleReflector(),
		Handles:   make(map[string]*reflection.TypeHandle),
		Roots:     m.Resolve,
	}

	// First pass: create every handle so forward references between types work.
	for _, declared := range m.Types {
		if declared.Name == "" {
			return nil, fmt.Errorf("manifest type with no name")
		}
		if _, exists := registry.Handles[declared.Name]; exists {
			return nil, fmt.Errorf("manifest declares type '%s' twice", declared.Name)
		}
		registry.Handles[declared.Name] = reflection.NewTypeHandle(declared.Name)
	}

	for _, declared := range m.Types {
		handle := registry.Handles[declared.Name]

		annotations, err := registry.buildAnnotations(&declared)
		if err != nil {
			return nil, err
		}
		parameters, err := registry.buildParameters(&declared)
		if err != nil {
			return nil, err
		}
		registry.Reflector.RegisterType(handle, annotations, parameters)
		if declared.ImportURI != "" {
			registry.Reflector.RegisterImportUri(handle, declared.ImportURI)
		}
		for _, hookName := range declared.LifecycleHooks {
			hook, ok := core.LifecycleHookByName(hookName)
			if !ok {
				return nil, fmt.Errorf("type '%s' declares unknown lifecycle hook '%s'", declared.Name, hookName)
			}
			registry.Lifecycle.Register(handle, hook)
		}
	}
	return registry, nil
}

func (reg *ManifestRegistry) buildAnnotations(declared *ManifestType) ([]interface{}, error) {
	annotations := []interface{}{}

	if declared.Component != nil {
		component, err := reg.buildComponent(declared.Name, declared.Component)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, component)
	} else if declared.Directive != nil {
		directive, err := reg.buildDirective(declared.Name, declared.Directive)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, directive)
	}

	if declared.Pipe != nil {
		annotations = append(annotations, &core.Pipe{Name: declared.Pipe.Name, Pure: declared.Pipe.Pure})
	}
	if declared.Module != nil {
		module := &core.NgModule{}
		var err error
		if module.Providers, err = reg.resolveRefList(declared.Name, declared.Module.Providers); err != nil {
			return nil, err
		}
		if module.Directives, err = reg.resolveRefList(declared.Name, declared.Module.Directives); err != nil {
			return nil, err
		}
		if module.Pipes, err = reg.resolveRefList(declared.Name, declared.Module.Pipes); err != nil {
			return nil, err
		}
		if module.Precompile, err = reg.resolveRefList(declared.Name, declared.Module.Precompile); err != nil {
			return nil, err
		}
		if module.Modules, err = reg.resolveRefList(declared.Name, declared.Module.Modules); err != nil {
			return nil, err
		}
		annotations = append(annotations, module)
	}
	return annotations, nil
}

func (reg *ManifestRegistry) buildDirective(typeName string, src *ManifestDirective) (*core.Directive, error) {
	providers, err := reg.resolveRefList(typeName, src.Providers)
	if err != nil {
		return nil, err
	}
	return &core.Directive{
		Selector:  src.Selector,
		ExportAs:  src.ExportAs,
		Inputs:    src.Inputs,
		Outputs:   src.Outputs,
		Host:      src.Host,
		Providers: providers,
	}, nil
}

func (reg *ManifestRegistry) buildComponent(typeName string, src *ManifestComponent) (*core.Component, error) {
	directive, err := reg.buildDirective(typeName, &src.ManifestDirective)
	if err != nil {
		return nil, err
	}

	if err := util.AssertArrayOfStrings("styles", src.Styles); err != nil {
		return nil, fmt.Errorf("type '%s': %w", typeName, err)
	}
	if err := util.AssertArrayOfStrings("styleUrls", src.StyleURLs); err != nil {
		return nil, fmt.Errorf("type '%s': %w", typeName, err)
	}

	component := &core.Component{
		Directive:     *directive,
		ModuleID:      src.ModuleID,
		Template:      src.Template,
		TemplateURL:   src.TemplateURL,
		Styles:        toStrings(src.Styles),
		StyleURLs:     toStrings(src.StyleURLs),
		Interpolation: src.Interpolation,
	}

	switch src.ChangeDetection {
	case "":
	case "Default":
		strategy := core.ChangeDetectionStrategyDefault
		component.ChangeDetection = &strategy
	case "OnPush":
		strategy := core.ChangeDetectionStrategyOnPush
		component.ChangeDetection = &strategy
	default:
		return nil, fmt.Errorf("type '%s' declares unknown change detection strategy '%s'", typeName, src.ChangeDetection)
	}

	switch src.Encapsulation {
	case "", "Emulated":
		component.Encapsulation = core.ViewEncapsulationEmulated
	case "None":
		component.Encapsulation = core.ViewEncapsulationNone
	case "ShadowDom":
		component.Encapsulation = core.ViewEncapsulationShadowDom
	default:
		return nil, fmt.Errorf("type '%s' declares unknown encapsulation '%s'", typeName, src.Encapsulation)
	}

	if component.ViewProviders, err = reg.resolveRefList(typeName, src.ViewProviders); err != nil {
		return nil, err
	}
	if component.Precompile, err = reg.resolveRefList(typeName, src.Precompile); err != nil {
		return nil, err
	}
	if component.Directives, err = reg.resolveRefList(typeName, src.Directives); err != nil {
		return nil, err
	}
	if component.Pipes, err = reg.resolveRefList(typeName, src.Pipes); err != nil {
		return nil, err
	}
	return component, nil
}

func (reg *ManifestRegistry) buildParameters(declared *ManifestType) ([][]interface{}, error) {
	if declared.Parameters == nil {
		return nil, nil
	}
	parameters := make([][]interface{}, 0, len(declared.Parameters))
	for _, param := range declared.Parameters {
		qualifiers := []interface{}{}
		for _, entry := range param {
			switch {
			case entry.Type != "":
				handle, ok := reg.Handles[entry.Type]
				if !ok {
					return nil, fmt.Errorf("type '%s' references undeclared type '%s'", declared.Name, entry.Type)
				}
				qualifiers = append(qualifiers, handle)
			case entry.Inject != nil:
				token, err := reg.resolveRef(declared.Name, entry.Inject)
				if err != nil {
					return nil, err
				}
				qualifiers = append(qualifiers, &core.Inject{Token: token})
			case entry.Attribute != "":
				qualifiers = append(qualifiers, &core.Attribute{Name: entry.Attribute})
			}
			if entry.Host {
				qualifiers = append(qualifiers, &core.Host{})
			}
			if entry.Self {
				qualifiers = append(qualifiers, &core.Self{})
			}
			if entry.SkipSelf {
				qualifiers = append(qualifiers, &core.SkipSelf{})
			}
			if entry.Optional {
				qualifiers = append(qualifiers, &core.Optional{})
			}
		}
		parameters = append(parameters, qualifiers)
	}
	return parameters, nil
}

// resolveRefList converts manifest values into resolver input: "@Name"
// strings become type handles, provider records become structured providers,
// nested lists recurse, anything else stays literal.
func (reg *ManifestRegistry) resolveRefList(typeName string, values []interface{}) ([]interface{}, error) {
	if values == nil {
		return nil, nil
	}
	result := make([]interface{}, 0, len(values))
	for _, value := range values {
		resolved, err := reg.resolveRef(typeName, value)
		if err != nil {
			return nil, err
		}
		result = append(result, resolved)
	}
	return result, nil
}

func (reg *ManifestRegistry) resolveRef(typeName string, value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		if strings.HasPrefix(v, "@") {
			handle, ok := reg.Handles[v[1:]]
			if !ok {
				return nil, fmt.Errorf("type '%s' references undeclared type '%s'", typeName, v[1:])
			}
			return handle, nil
		}
		return v, nil
	case []interface{}:
		return reg.resolveRefList(typeName, v)
	case map[string]interface{}:
		if _, ok := v["provide"]; !ok {
			return nil, fmt.Errorf("type '%s' declares a record without a 'provide' key", typeName)
		}
		record := make(map[string]interface{}, len(v))
		for key, entry := range v {
			resolved, err := reg.resolveRef(typeName, entry)
			if err != nil {
				return nil, err
			}
			record[key] = resolved
		}
		return record, nil
	default:
		return value, nil
	}
}

func toStrings(values []interface{}) []string {
	if values == nil {
		return nil
	}
	result := make([]string, 0, len(values))
	for _, value := range values {
		if s, ok := value.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
