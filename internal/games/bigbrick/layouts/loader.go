package layouts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when no scanned directory holds the requested ID.
var ErrNotFound = errors.New("layouts: not found")

// SearchDirs are the directories scanned for layouts referenced by ID:
// ~/.bigbrick/layouts, then ./configs/layouts.
func SearchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".bigbrick", "layouts"))
	}
	return append(dirs, filepath.Join("configs", "layouts"))
}

// IsPath reports whether ref names a file rather than a layout ID.
func IsPath(ref string) bool {
	return isSupportedExtension(filepath.Ext(ref)) || strings.ContainsAny(ref, `/\`)
}

// Resolve loads ref directly when it is a file path, otherwise looks the ID
// up in dirs in order. Missing directories are skipped.
func Resolve(ref string, dirs ...string) (Layout, error) {
	if IsPath(ref) {
		return LoadFile(ref)
	}
	for _, dir := range dirs {
		layout, err := NewLoader(dir).LoadByID(ref)
		switch {
		case err == nil:
			return layout, nil
		case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return Layout{}, err
		}
	}
	return Layout{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
}

// Available lists the layouts found in dirs. An ID found in an earlier
// directory hides the same ID further down. Missing directories are skipped.
func Available(dirs ...string) ([]Layout, error) {
	var out []Layout
	seen := make(map[string]bool)
	for _, dir := range dirs {
		found, err := NewLoader(dir).LoadAll()
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, l := range found {
			if !seen[l.ID] {
				seen[l.ID] = true
				out = append(out, l)
			}
		}
	}
	return out, nil
}

// Loader handles loading layouts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files.
// Returns layouts sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		layout, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		layouts = append(layouts, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("layouts: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})

	return layouts, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, layout := range layouts {
		if layout.ID == id {
			return layout, nil
		}
	}

	return Layout{}, fmt.Errorf("%w: %s in %s", ErrNotFound, id, l.Root)
}

// LoadFile loads a single layout file.
func LoadFile(path string) (Layout, error) {
	if !isSupportedExtension(filepath.Ext(path)) {
		return Layout{}, fmt.Errorf("layouts: unsupported extension: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: reading file %s: %w", path, err)
	}

	layout, err := ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: parsing file %s: %w", path, err)
	}
	layout.FilePath = path
	return layout, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
