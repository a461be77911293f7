package filestore

import (
	"os"

	"github.com/runoshun/taskboard/internal/domain"
)

// Initializer creates the backing file of a store that does not exist yet.
type Initializer struct {
	logger domain.Logger
	path   string
}

// Ensure Initializer implements domain.StoreInitializer.
var _ domain.StoreInitializer = (*Initializer)(nil)

// NewInitializer creates an Initializer for the store file at path.
func NewInitializer(path string, logger domain.Logger) *Initializer {
	return &Initializer{path: path, logger: logger}
}

// IsInitialized reports whether a non-empty store file exists.
func (i *Initializer) IsInitialized() bool {
	info, err := os.Stat(i.path)
	return err == nil && !info.IsDir() && info.Size() > 0
}

// Initialize writes an empty store unless a loadable one already exists.
// An existing file that fails to load is left untouched and its error is returned.
func (i *Initializer) Initialize() (bool, error) {
	_, created, err := OpenOrCreate(i.path, i.logger)
	return created, err
}
