package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Format is an input document format.
type Format string

const (
	FormatCUE  Format = "cue"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var extensions = map[string]Format{
	".cue":  FormatCUE,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
	".toml": FormatTOML,
}

// FormatFor returns the format of path by extension.
func FormatFor(path string) (Format, error) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", &LoadError{
			Code:    ErrCodeUnsupported,
			File:    path,
			Message: fmt.Sprintf("unsupported file type %q (want .cue, .yaml, .yml, .json or .toml)", filepath.Ext(path)),
		}
	}
	return f, nil
}

// Supported reports whether path has a loadable extension.
func Supported(path string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Find expands paths into input files. Directories are walked for supported
// files; plain files are kept as given. The result is in natural order
// ("a2" before "a10") without duplicates.
func Find(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeNotFound, File: p, Message: err.Error()}
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && Supported(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, &LoadError{Code: ErrCodeNotFound, File: p, Message: fmt.Sprintf("scanning directory: %v", err)}
		}
	}

	sort.Sort(natural.StringSlice(files))
	return files, nil
}
