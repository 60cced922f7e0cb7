package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [schema files]",
	Short: "Validate schema files without generating code",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}

	failed := false

	for _, path := range settings.Schemas {
		_, _, diags, err := resolveSchema(path, settings.Deref)
		if err != nil {
			return err
		}

		printDiagnostics(diags)

		if diags.HasErrors() {
			failed = true
		} else {
			fmt.Println(path, "ok")
		}
	}

	if failed {
		return errors.New("validation failed, see diagnostics above")
	}

	return nil
}
