package node

import (
	"fmt"
	"path/filepath"

	"github.com/docker/distribution/reference"
)

const (
	// DefaultImage is the DeFiChain daemon image.
	DefaultImage = "defi/defichain:latest"
	// DefaultName is the container name used when none is given.
	DefaultName = "defi-node"
)

// Handle identifies the single container a Supervisor manages. It is
// immutable once created.
type Handle struct {
	image   string
	name    string
	dataDir string
}

// NewHandle validates and normalizes the image reference (a missing tag
// becomes "latest") and makes dataDir absolute. An empty name falls back to
// DefaultName.
func NewHandle(image, name, dataDir string) (Handle, error) {
	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return Handle{}, fmt.Errorf("%w %q: %s", ErrInvalidImage, image, err)
	}
	if name == "" {
		name = DefaultName
	}
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return Handle{}, err
	}
	return Handle{
		image:   reference.FamiliarString(reference.TagNameOnly(named)),
		name:    name,
		dataDir: absDataDir,
	}, nil
}

func (h Handle) Image() string   { return h.image }
func (h Handle) Name() string    { return h.name }
func (h Handle) DataDir() string { return h.dataDir }

func (h Handle) String() string {
	return fmt.Sprintf("%s (%s)", h.name, h.image)
}
