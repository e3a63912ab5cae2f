package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Justype/condorkit/internal/errdefs"
)

// PermDir is u=rwx, g=rwx, o=rx (Requires +x to traverse)
const PermDir os.FileMode = 0775

// EnsureDirectoryExists makes sure the directory that will contain target
// exists. A bare file name (no directory part) always passes.
//
// When the directory is missing it is created (with parents) if
// createIfMissing is set, otherwise an EnvironmentError naming it is returned.
func EnsureDirectoryExists(target string, createIfMissing bool) error {
	if target == "" {
		return errdefs.NewValueError("path", "must be non-empty")
	}

	outdir := filepath.Dir(target)
	if outdir == "." || outdir == "" {
		// Current working directory exists
		return nil
	}

	info, err := os.Stat(outdir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return errdefs.NewEnvironmentError(outdir,
			fmt.Sprintf("the path %s exists but is not a directory", outdir),
			errdefs.ErrDirectoryNotFound)
	case !os.IsNotExist(err):
		return fmt.Errorf("could not stat directory %s: %w", outdir, err)
	}

	if !createIfMissing {
		return errdefs.NewEnvironmentError(outdir,
			fmt.Sprintf("the directory %s doesn't exist", outdir),
			errdefs.ErrDirectoryNotFound)
	}

	PrintNote("The directory %s doesn't exist, creating it...", StylePath(outdir))
	if err := os.MkdirAll(outdir, PermDir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", outdir, err)
	}
	return nil
}
