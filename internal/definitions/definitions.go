// Package definitions loads mutator definitions from YAML files
package definitions

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
)

// Definition is one declared mutator: its unique name plus its configuration
type Definition struct {
	Name            string `yaml:"name"`
	mutators.Config `yaml:",inline"`

	// Source is the file the definition was read from
	Source string `yaml:"-"`
}

type document struct {
	Mutators []Definition `yaml:"mutators"`
}

// Parse decodes a definition document. Unknown keys, unnamed mutators and
// names repeated within the document are rejected.
func Parse(data []byte) ([]Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "invalid mutator definitions")
	}

	seen := make(map[string]bool, len(doc.Mutators))
	for i := range doc.Mutators {
		def := &doc.Mutators[i]
		def.Name = strings.TrimSpace(def.Name)
		if def.Name == "" {
			return nil, dnderr.Validationf("mutator definition %d has no name", i+1).
				WithMeta("index", i)
		}
		if seen[def.Name] {
			return nil, dnderr.Validationf("mutator %q is defined twice", def.Name).
				WithMeta("mutator", def.Name)
		}
		seen[def.Name] = true
	}

	return doc.Mutators, nil
}

// LoadFile parses a single definition file
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to read mutator definitions").WithMeta("file", path)
	}

	defs, err := Parse(data)
	if err != nil {
		return nil, dnderr.Wrapf(err, "%s", filepath.Base(path)).WithMeta("file", path)
	}
	for i := range defs {
		defs[i].Source = path
	}
	return defs, nil
}

// IsDefinitionFile reports whether the path has a YAML extension
func IsDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// LoadDir parses every definition file directly inside dir, in file name
// order. Definitions keep their order within a file. Files that fail to parse
// are skipped and their errors joined into the returned error, so callers get
// everything that could be loaded.
func LoadDir(dir string) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to read mutator directory").WithMeta("dir", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsDefinitionFile(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	var defs []Definition
	var errs []error
	for _, name := range files {
		fileDefs, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		defs = append(defs, fileDefs...)
	}

	return defs, errors.Join(errs...)
}

// Register registers every definition with the engine and returns the
// problems reported along the way. Registration continues past failures.
func Register(engine *mutators.Engine, defs []Definition) []error {
	var errs []error
	for _, def := range defs {
		if _, err := engine.Register(def.Name, def.Config); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
