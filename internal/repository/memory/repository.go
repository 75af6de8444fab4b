package memory

import (
	"sync"
)

// DirectoryKey identifies one league season's player directory.
type DirectoryKey struct {
	LeagueID   string
	SeasonYear int
}

// DirectoryRepository caches player name to id maps per league season.
// Concurrent misses on the same key may each fetch; the last write wins.
type DirectoryRepository struct {
	directories map[DirectoryKey]map[string]int
	mu          sync.RWMutex
}

func NewDirectoryRepository() *DirectoryRepository {
	return &DirectoryRepository{
		directories: make(map[DirectoryKey]map[string]int),
	}
}

func (r *DirectoryRepository) Get(key DirectoryKey) (map[string]int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.directories[key]
	return d, ok
}

func (r *DirectoryRepository) Save(key DirectoryKey, directory map[string]int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.directories[key] = directory
}

// GetOrPopulate returns the cached directory, calling fetch on a miss.
// A failed fetch leaves the cache untouched.
func (r *DirectoryRepository) GetOrPopulate(key DirectoryKey, fetch func() (map[string]int, error)) (map[string]int, error) {
	if d, ok := r.Get(key); ok {
		return d, nil
	}
	d, err := fetch()
	if err != nil {
		return nil, err
	}
	r.Save(key, d)
	return d, nil
}

// Clear drops every cached directory and reports how many were held.
func (r *DirectoryRepository) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.directories)
	r.directories = make(map[DirectoryKey]map[string]int)
	return n
}
