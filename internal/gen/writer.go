package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files below the output directory, creating
// one subdirectory per generated package.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.MkdirAll(filepath.Dir(outputPath), dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
