package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NethermindEth/defi-runner/internal/locker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const lockFileName = ".defi-runner.lock"

// DataDir is the host directory bind-mounted into the node container. Only one
// runner at a time may use a given directory.
type DataDir struct {
	path   string
	fs     afero.Fs
	locker locker.Locker
	lock   locker.Locker
}

// NewDataDir creates a new DataDir instance with the given path as root. The
// directory is not touched until Prepare is called.
func NewDataDir(path string, fs afero.Fs, locker locker.Locker) (*DataDir, error) {
	if path == "" {
		return nil, ErrDataDirMissing
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFilesystem, err)
	}
	return &DataDir{path: absPath, fs: fs, locker: locker}, nil
}

// Path returns the absolute path of the data directory.
func (d *DataDir) Path() string {
	return d.path
}

// Prepare creates the directory if it does not exist and takes the runner
// lock inside it. It fails with ErrDataDirLocked if another runner holds it.
func (d *DataDir) Prepare() error {
	info, err := d.fs.Stat(d.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Infof("Creating data directory %s", d.path)
		if err := d.fs.MkdirAll(d.path, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrFilesystem, err)
		}
	case err != nil:
		return fmt.Errorf("%w: %w", ErrFilesystem, err)
	case !info.IsDir():
		return fmt.Errorf("%w: %w: %s", ErrFilesystem, ErrNotADirectory, d.path)
	}

	lock := d.locker.New(filepath.Join(d.path, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFilesystem, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrDataDirLocked, d.path)
	}
	d.lock = lock
	return nil
}

// Release drops the runner lock taken by Prepare. The directory and its
// contents are left in place.
func (d *DataDir) Release() error {
	if d.lock == nil || !d.lock.Locked() {
		return nil
	}
	if err := d.lock.Unlock(); err != nil {
		return fmt.Errorf("%w: %w", ErrFilesystem, err)
	}
	d.lock = nil
	return nil
}
