package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ngmeta-go",
		Short: "Annotation metadata resolver",
		Long: `ngmeta-go resolves declarative annotations on components, directives,
pipes and modules into a normalized, serializable metadata graph for a
downstream code generator.`,
	}

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ngmeta-go %s (%s)\n", Version, GitCommit)
	},
}
