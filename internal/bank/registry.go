package bank

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry lazily loads and caches one Bank per quiz file in the data
// directory. Entries are never evicted: a quiz file is treated as immutable
// for the life of the process, and the cached bank is shared read-only by
// every session playing it.
type Registry struct {
	dataDir string

	mu    sync.Mutex
	banks map[string]*Bank
}

func NewRegistry(dataDir string) *Registry {
	return &Registry{dataDir: dataDir, banks: make(map[string]*Bank)}
}

// ListSources returns the quiz file names available in the data directory,
// sorted by name. Only *.csv and *.xlsx entries are considered.
func (r *Registry) ListSources() ([]string, error) {
	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".csv", ".xlsx":
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Get returns the cached bank for name, loading it on the first request.
// The name must exactly match a listed file, so arbitrary paths can never
// reach the loader. The mutex is held across the load: concurrent requests
// for the same file build it exactly once, and no caller ever observes a
// half-constructed bank. A failed load caches nothing.
func (r *Registry) Get(name string) (*Bank, error) {
	files, err := r.ListSources()
	if err != nil {
		return nil, err
	}
	known := false
	for _, f := range files {
		if f == name {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%q: %w", name, ErrSourceNotFound)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.banks[name]; ok {
		return b, nil
	}
	b, err := Load(filepath.Join(r.dataDir, name))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	r.banks[name] = b
	log.Printf("[bank] loaded %s (%d questions)", name, b.Total())
	return b, nil
}
