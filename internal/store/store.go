// Package store persists the alias registry as two independent YAML tables
// in the again configuration directory.
//
// There is no locking across processes: two invocations that save at the
// same time race, and the last write wins.
package store

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/davebream/again/internal/config"
)

// Tables is the persisted registry state.
type Tables struct {
	// Commands maps alias -> command line.
	Commands map[string]string
	// Scopes maps alias -> directory the alias is restricted to.
	Scopes map[string]string
}

// NewTables returns empty, non-nil tables.
func NewTables() *Tables {
	return &Tables{
		Commands: make(map[string]string),
		Scopes:   make(map[string]string),
	}
}

// File stores the tables as aliases.yaml and scopes.yaml under dir.
type File struct {
	dir string
}

// New returns a File rooted at dir. The directory is created on first Save.
func New(dir string) *File {
	return &File{dir: dir}
}

// Open returns a File rooted at the again configuration directory.
func Open() (*File, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}
	return New(dir), nil
}

// Dir returns the directory holding the tables.
func (f *File) Dir() string { return f.dir }

func (f *File) aliasesPath() string { return filepath.Join(f.dir, config.AliasesFileName) }
func (f *File) scopesPath() string  { return filepath.Join(f.dir, config.ScopesFileName) }

// Load reads both tables. Missing files load as empty tables.
func (f *File) Load() (*Tables, error) {
	commands, err := loadTable(f.aliasesPath())
	if err != nil {
		return nil, fmt.Errorf("load aliases table: %w", err)
	}
	scopes, err := loadTable(f.scopesPath())
	if err != nil {
		return nil, fmt.Errorf("load scopes table: %w", err)
	}
	return &Tables{Commands: commands, Scopes: scopes}, nil
}

// Save writes both tables.
func (f *File) Save(t *Tables) error {
	if err := saveTable(f.aliasesPath(), t.Commands); err != nil {
		return fmt.Errorf("save aliases table: %w", err)
	}
	if err := saveTable(f.scopesPath(), t.Scopes); err != nil {
		return fmt.Errorf("save scopes table: %w", err)
	}
	return nil
}

func loadTable(path string) (map[string]string, error) {
	data, ok, err := config.ReadPrivateFile(path)
	if err != nil {
		return nil, err
	}
	table := make(map[string]string)
	if !ok {
		return table, nil
	}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// An empty document decodes to a nil map.
	if table == nil {
		table = make(map[string]string)
	}
	return table, nil
}

func saveTable(path string, table map[string]string) error {
	if table == nil {
		table = map[string]string{}
	}
	data, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	return config.AtomicWriteFile(path, data, 0600)
}
