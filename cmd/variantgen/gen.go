package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"variantgen/internal/gen"
)

var genCmd = &cobra.Command{
	Use:   "gen [schema files]",
	Short: "Generate variant type packages from schema files",
	RunE:  runGen,
}

func runGen(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}

	// One generator for the whole run: the output tree is shared, so enums
	// from different schema files must not claim the same package.
	generator := gen.NewGenerator(gen.Config{OutputDir: settings.Output})

	failed := false

	for _, path := range settings.Schemas {
		_, plans, diags, err := resolveSchema(path, settings.Deref)
		if err != nil {
			return err
		}

		printDiagnostics(diags)

		// No partial trees: a schema with any failing enum emits nothing.
		if diags.HasErrors() {
			failed = true
			continue
		}

		files, err := generator.Generate(path, plans)
		if err != nil {
			return err
		}

		if err := gen.WriteFiles(files, settings.Output); err != nil {
			return err
		}

		for _, f := range files {
			fmt.Println("wrote", f.Filename)
		}
	}

	if failed {
		return errors.New("generation failed, see diagnostics above")
	}

	return nil
}
