package cache

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const WebCachesDirName = "webCaches"

var dataFileRelPath = filepath.Join("Cache", "Cache_Data", "data_2")

var ErrDataFileNotFound = errors.New("web_cache_data_file_not_found")

// Version is a dot-separated numeric directory name such as 2.24.0.0.
type Version []int

func ParseVersion(name string) (Version, bool) {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return nil, false
	}
	v := make(Version, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, false
		}
		v = append(v, n)
	}
	return v, true
}

// Compare orders component-wise; on a common prefix the longer one is newer.
func (v Version) Compare(o Version) int {
	for i := 0; i < len(v) && i < len(o); i++ {
		if v[i] != o[i] {
			if v[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(v) < len(o):
		return -1
	case len(v) > len(o):
		return 1
	}
	return 0
}

func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

type VersionedDir struct {
	Path    string
	Version Version
}

// VersionedDirs lists versioned subdirectories of webCachesDir, newest first.
func VersionedDirs(webCachesDir string) ([]VersionedDir, error) {
	entries, err := os.ReadDir(webCachesDir)
	if err != nil {
		return nil, err
	}
	var out []VersionedDir
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		v, ok := ParseVersion(e.Name())
		if !ok {
			continue
		}
		out = append(out, VersionedDir{Path: filepath.Join(webCachesDir, e.Name()), Version: v})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Version.Compare(out[j].Version) > 0
	})
	return out, nil
}

// Location is the resolved data file together with the directory it came from.
type Location struct {
	WebCachesDir string
	DataFile     string
	// Version is nil for the unversioned layout.
	Version Version
}

// Locate finds the data file under a game data directory. The newest
// versioned cache holding a data file wins; the unversioned layout of older
// clients is the fallback.
func Locate(gameDataDir string) (Location, error) {
	webCaches := filepath.Join(gameDataDir, WebCachesDirName)
	loc := Location{WebCachesDir: webCaches}

	info, err := os.Stat(webCaches)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return loc, ErrDataFileNotFound
		}
		return loc, err
	}
	if !info.IsDir() {
		return loc, ErrDataFileNotFound
	}

	dirs, err := VersionedDirs(webCaches)
	if err != nil {
		return loc, err
	}
	for _, d := range dirs {
		p := filepath.Join(d.Path, dataFileRelPath)
		if isFile(p) {
			loc.DataFile = p
			loc.Version = d.Version
			return loc, nil
		}
	}

	legacy := filepath.Join(webCaches, dataFileRelPath)
	if isFile(legacy) {
		loc.DataFile = legacy
		return loc, nil
	}
	return loc, ErrDataFileNotFound
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
