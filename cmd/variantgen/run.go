package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"variantgen/internal/config"
	"variantgen/internal/diagnostic"
	"variantgen/internal/plan"
	"variantgen/internal/schema"
)

// runSettings is the effective tool configuration for one invocation:
// manifest values overridden by command-line flags.
type runSettings struct {
	Output  string
	Schemas []string
	Deref   bool
}

// resolveSettings merges the manifest (if any) with flags and arguments.
// Schema files given as arguments replace the manifest's schema list.
func resolveSettings(cmd *cobra.Command, args []string) (runSettings, error) {
	cfg := config.Default()

	path, found, err := config.Find(".")
	if err != nil {
		return runSettings{}, err
	}

	if found {
		cfg, err = config.Load(path)
		if err != nil {
			return runSettings{}, err
		}
	}

	s := runSettings{
		Output:  cfg.Output,
		Schemas: cfg.Schemas,
		Deref:   cfg.DerefEnabled(),
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		s.Output = out
	}

	if noDeref, _ := cmd.Flags().GetBool("no-deref"); noDeref {
		s.Deref = false
	}

	if len(args) > 0 {
		s.Schemas = args
	}

	if len(s.Schemas) == 0 {
		return runSettings{}, errors.New("no schema files: pass them as arguments or list them in variantgen.toml")
	}

	return s, nil
}

// resolveSchema loads, validates, and resolves one schema file. Parse-level
// and plan-level diagnostics are merged; plans are returned only for enums
// without errors.
func resolveSchema(path string, deref bool) (*schema.File, []*plan.Plan, *diagnostic.Diagnostics, error) {
	f, err := schema.LoadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}

	diags := schema.Validate(f)
	if diags.HasErrors() {
		return f, nil, diags, nil
	}

	resolver := plan.NewResolver(plan.Config{Deref: deref})

	var plans []*plan.Plan

	for i := range f.Enums {
		p, enumDiags := resolver.Resolve(&f.Enums[i])
		diags.Merge(*enumDiags)

		if p != nil {
			plans = append(plans, p)
		}
	}

	return f, plans, diags, nil
}

// printDiagnostics reports all diagnostics to stderr, colorized by severity.
func printDiagnostics(diags *diagnostic.Diagnostics) {
	errLabel := color.New(color.FgRed, color.Bold).Sprint("error:")
	warnLabel := color.New(color.FgYellow, color.Bold).Sprint("warning:")
	infoLabel := color.New(color.FgCyan).Sprint("info:")

	for _, d := range diags.Errors {
		fmt.Fprintln(os.Stderr, errLabel, d.String())
	}

	for _, d := range diags.Warnings {
		fmt.Fprintln(os.Stderr, warnLabel, d.String())
	}

	for _, d := range diags.Infos {
		fmt.Fprintln(os.Stderr, infoLabel, d.String())
	}
}
