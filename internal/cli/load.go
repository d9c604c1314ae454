package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/directory/internal/directory"
	"github.com/mesh-intelligence/directory/internal/paths"
	"github.com/mesh-intelligence/directory/internal/source"
	"github.com/mesh-intelligence/directory/pkg/types"
)

// errNoImportFiles is returned when neither --file nor import_files names
// anything to load.
var errNoImportFiles = errors.New("no import files: pass --file or set import_files in config.yaml")

// importFiles returns the files to load. --file values are used as given;
// config values are resolved against the config directory.
func (a *app) importFiles() []string {
	if len(a.flags.files) > 0 {
		return a.flags.files
	}
	files := make([]string, len(a.cfg.ImportFiles))
	for i, f := range a.cfg.ImportFiles {
		files[i] = paths.ResolveImportFile(a.configDir, f)
	}
	return files
}

// loadDirectory builds a directory from every import file, in order.
func (a *app) loadDirectory() (*directory.Directory, error) {
	files := a.importFiles()
	if len(files) == 0 {
		return nil, errNoImportFiles
	}

	d := directory.New(directory.WithLogger(a.log))
	for _, path := range files {
		if err := importFile(d, path); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func importFile(d *directory.Directory, path string) error {
	src, err := source.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrImportFailure, err)
	}
	defer src.Close()

	if _, err := d.Import(src); err != nil {
		return err
	}
	return nil
}
