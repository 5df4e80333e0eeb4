package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/moore-mealy/internal/codec"
	"github.com/oshokin/moore-mealy/internal/config"
	"github.com/oshokin/moore-mealy/internal/fixtures"
)

// Repository defines persistence operations for a fixture list.
type Repository interface {
	Load(ctx context.Context) ([]fixtures.Fixture, error)
	Save(ctx context.Context, items []fixtures.Fixture) error
}

// FileRepository persists fixtures to a YAML file on disk.
// Machines use the codec document shape, so a file can be written by hand.
type FileRepository struct {
	// path is the filesystem location of the YAML catalog.
	path string
	// mu protects concurrent access to the catalog file.
	mu sync.Mutex
}

// fileDocument is the on-disk layout.
type fileDocument struct {
	Fixtures []fileFixture `yaml:"fixtures"`
}

type fileFixture struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description,omitempty"`
	Machine     *codec.MooreDocument `yaml:"machine"`
}

var (
	// ErrNotFound is returned when the catalog file does not exist.
	ErrNotFound = errors.New("catalog not found")
	// ErrUnexpectedKind is returned for machines that are not Moore machines.
	ErrUnexpectedKind = errors.New("unexpected machine kind")
)

// NewFileRepository creates a repository that reads/writes YAML at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the fixtures from disk.
func (r *FileRepository) Load(_ context.Context) ([]fixtures.Fixture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}

		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var doc fileDocument
	if err = yaml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	items := make([]fixtures.Fixture, 0, len(doc.Fixtures))

	for _, entry := range doc.Fixtures {
		if entry.Machine == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingMachine, entry.Name)
		}

		if entry.Machine.Kind != "" && entry.Machine.Kind != codec.KindMoore {
			return nil, fmt.Errorf("%w: %q is %q", ErrUnexpectedKind, entry.Name, entry.Machine.Kind)
		}

		items = append(items, fixtures.Fixture{
			Name:        entry.Name,
			Description: entry.Description,
			Machine:     entry.Machine.Machine(),
		})
	}

	return items, nil
}

// Save writes the fixtures to disk.
func (r *FileRepository) Save(_ context.Context, items []fixtures.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := fileDocument{
		Fixtures: make([]fileFixture, 0, len(items)),
	}

	for _, item := range items {
		if item.Machine == nil {
			return fmt.Errorf("%w: %q", ErrMissingMachine, item.Name)
		}

		doc.Fixtures = append(doc.Fixtures, fileFixture{
			Name:        item.Name,
			Description: item.Description,
			Machine:     codec.FromMoore(item.Machine),
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}

	return nil
}

// Open returns the catalog stored at path, or Builtin when path is empty.
func Open(ctx context.Context, path string) (Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}

	items, err := NewFileRepository(path).Load(ctx)
	if err != nil {
		return nil, err
	}

	memory, err := NewMemory(items)
	if err != nil {
		return nil, err
	}

	return memory, nil
}
