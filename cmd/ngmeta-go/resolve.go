package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cpl "ngmeta-go/packages/compiler/compile_metadata"
	"ngmeta-go/packages/compiler/metadata_resolver"
)

var (
	resolveOut     string
	resolvePretty  bool
	resolveVerbose bool
)

func init() {
	resolveCmd.Flags().StringVar(&resolveOut, "out", "", "Write the metadata graph to a file instead of stdout")
	resolveCmd.Flags().BoolVar(&resolvePretty, "pretty", false, "Indent the JSON output")
	resolveCmd.Flags().BoolVar(&resolveVerbose, "verbose", false, "Log resolution steps")
}

// metadataGraph is the serialized result of resolving a manifest's roots.
type metadataGraph struct {
	Directives []*cpl.CompileDirectiveMetadata `json:"directives"`
	Pipes      []*cpl.CompilePipeMetadata      `json:"pipes"`
	Modules    []*cpl.CompileNgModuleMetadata  `json:"modules"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <manifest.json>",
	Short: "Resolve a manifest of annotated types into a metadata graph",
	Long: `Load a JSON manifest declaring annotated types, resolve every root listed
under "resolve", and emit the normalized metadata graph as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zap.NewNop()
		if resolveVerbose {
			devLogger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = devLogger
			defer logger.Sync()
		}

		manifest, err := LoadManifest(args[0])
		if err != nil {
			return err
		}
		registry, err := manifest.BuildRegistry()
		if err != nil {
			return err
		}

		resolver := metadata_resolver.NewCompileMetadataResolver(
			registry.Reflector,
			metadata_resolver.WithLifecycleReflector(registry.Lifecycle),
			metadata_resolver.WithLogger(logger),
		)

		graph := &metadataGraph{
			Directives: []*cpl.CompileDirectiveMetadata{},
			Pipes:      []*cpl.CompilePipeMetadata{},
			Modules:    []*cpl.CompileNgModuleMetadata{},
		}
		for _, root := range registry.Roots {
			handle, ok := registry.Handles[root]
			if !ok {
				return fmt.Errorf("resolve root '%s' is not a declared type", root)
			}
			kind, err := rootKind(manifest, root)
			if err != nil {
				return err
			}
			switch kind {
			case "module":
				meta, err := resolver.ResolveNgModule(handle, nil)
				if err != nil {
					return reportError(root, err)
				}
				graph.Modules = append(graph.Modules, meta)
			case "pipe":
				meta, err := resolver.ResolvePipe(handle)
				if err != nil {
					return reportError(root, err)
				}
				graph.Pipes = append(graph.Pipes, meta)
			default:
				meta, err := resolver.ResolveDirective(handle)
				if err != nil {
					return reportError(root, err)
				}
				graph.Directives = append(graph.Directives, meta)
			}
		}

		var encoded []byte
		if resolvePretty {
			encoded, err = json.MarshalIndent(graph, "", "  ")
		} else {
			encoded, err = json.Marshal(graph)
		}
		if err != nil {
			return fmt.Errorf("failed to encode metadata graph: %w", err)
		}
		encoded = append(encoded, '\n')

		if resolveOut != "" {
			if err := os.WriteFile(resolveOut, encoded, 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			color.Green("Resolved %d root(s) -> %s", len(registry.Roots), resolveOut)
			return nil
		}
		_, err = os.Stdout.Write(encoded)
		return err
	},
}

func rootKind(manifest *Manifest, name string) (string, error) {
	for _, declared := range manifest.Types {
		if declared.Name != name {
			continue
		}
		switch {
		case declared.Module != nil:
			return "module", nil
		case declared.Pipe != nil:
			return "pipe", nil
		case declared.Directive != nil || declared.Component != nil:
			return "directive", nil
		}
		return "", fmt.Errorf("resolve root '%s' carries no annotation", name)
	}
	return "", fmt.Errorf("resolve root '%s' is not a declared type", name)
}

func reportError(root string, err error) error {
	color.Red("failed to resolve '%s'", root)
	return err
}
