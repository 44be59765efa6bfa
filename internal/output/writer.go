package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"member-generator/internal/ident"
	"member-generator/internal/pipeline"
)

// ErrFileNameCollision is returned when two types would be written to the same file.
var ErrFileNameCollision = errors.New("file name collision")

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedFile is one rendered type.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "direction.yaml").
	Filename string
	// Content is the encoded model.
	Content []byte
}

// Files renders every successfully built type of res, enums first, in input order.
// Two types whose names map to the same file name are rejected.
func Files(res *pipeline.Result, format string) ([]GeneratedFile, error) {
	var files []GeneratedFile

	owners := map[string]string{}

	add := func(name string, v any) error {
		filename := ident.Snake(name) + Extension(format)
		if first, ok := owners[filename]; ok {
			return fmt.Errorf("%w: %s and %s both map to %s", ErrFileNameCollision, first, name, filename)
		}

		owners[filename] = name

		data, err := Encode(v, format)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}

		files = append(files, GeneratedFile{Filename: filename, Content: data})

		return nil
	}

	for _, e := range res.Enums {
		if e.Err != nil {
			continue
		}

		if err := add(e.Provider.Name(), NewTypeView(e.Provider, e.Model)); err != nil {
			return nil, err
		}
	}

	for _, r := range res.Records {
		if r.Err != nil {
			continue
		}

		if err := add(r.Schema.Name, NewRecordView(r)); err != nil {
			return nil, err
		}
	}

	return files, nil
}

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// WriteStream writes all files to w, each preceded by a comment naming it.
func WriteStream(w io.Writer, files []GeneratedFile) error {
	for _, file := range files {
		if _, err := fmt.Fprintf(w, "# %s\n%s", file.Filename, file.Content); err != nil {
			return err
		}
	}

	return nil
}
