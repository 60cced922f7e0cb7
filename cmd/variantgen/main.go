// Package main provides the CLI entrypoint for variantgen.
//
// variantgen is a static Go codegen tool that:
//   - Parses enum schema files (YAML) describing tagged-union declarations
//   - Merges enum-level and variant-level configuration directives
//   - Validates structural preconditions per capability profile
//   - Generates one standalone type per variant, with capability metadata
//     for the downstream event/message runtime layer
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "variantgen",
	Short: "Generate one standalone Go type per enum variant",
	Long: `variantgen turns enum schema files into Go packages: one package per enum,
one struct per variant, each carrying the variant's field layout and the
capability metadata (target, deref, propagation) the host runtime binds to.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(verifyCmd)

	rootCmd.PersistentFlags().StringP("output", "o", "", "output directory (overrides variantgen.toml)")
	rootCmd.PersistentFlags().Bool("no-deref", false, "disable deref-field synthesis for the whole run")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
