package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"variantgen/internal/analyze"
	"variantgen/internal/schema"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [schema files]",
	Short: "Check previously generated output against schema files",
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}

	verifier := analyze.NewVerifier(settings.Output)
	failed := false

	for _, path := range settings.Schemas {
		f, err := schema.LoadFile(path)
		if err != nil {
			return err
		}

		diags, err := verifier.Verify(f)
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
		return errors.New("verification failed, see diagnostics above")
	}

	return nil
}
