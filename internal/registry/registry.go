// Package registry holds the alias data model: alias -> command bindings,
// optional directory scopes, and the rules for saving, renaming, listing
// and resolving them.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/davebream/again/internal/logging"
	"github.com/davebream/again/internal/store"
)

// Unscoped is the scope of an alias that is visible from every directory.
const Unscoped = ""

var (
	ErrAliasNotFound = errors.New("alias not found")
	ErrAliasExists   = errors.New("alias already exists")
	ErrEmptyAlias    = errors.New("alias must not be empty")
)

// ExistsError reports a rename onto an alias that is already bound.
type ExistsError struct {
	Alias   string
	Command string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("alias already exists: %s: %s", e.Alias, e.Command)
}

func (e *ExistsError) Is(target error) bool { return target == ErrAliasExists }

// Store loads and saves the persisted tables.
type Store interface {
	Load() (*store.Tables, error)
	Save(*store.Tables) error
}

// Editor lets the user rewrite a command's text.
type Editor interface {
	Edit(ctx context.Context, alias, text string) (string, error)
}

// Executor runs a resolved command line. On unix a successful Exec does not return.
type Executor interface {
	Exec(ctx context.Context, command string) error
}

// Change describes the result of a Set or Delete.
type Change struct {
	Alias string
	// Command is the stored command, empty when the alias was deleted.
	Command string
	// Previous is the command that was bound before, if Replaced.
	Previous string
	Replaced bool
}

// Deleted reports whether the change removed the binding.
func (c Change) Deleted() bool { return c.Command == "" }

// Registry is the in-memory alias registry. It is loaded once per
// invocation and saved after every mutation.
type Registry struct {
	commands map[string]string
	scopes   map[string]string
	store    Store
	getwd    func() (string, error)
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for registry mutations.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithWorkingDir replaces os.Getwd as the source of the current directory.
func WithWorkingDir(getwd func() (string, error)) Option {
	return func(r *Registry) { r.getwd = getwd }
}

// Open loads the registry from s.
func Open(s Store, opts ...Option) (*Registry, error) {
	tables, err := s.Load()
	if err != nil {
		return nil, err
	}
	r := &Registry{
		commands: tables.Commands,
		scopes:   tables.Scopes,
		store:    s,
		getwd:    os.Getwd,
		logger:   logging.Discard(),
	}
	if r.commands == nil {
		r.commands = make(map[string]string)
	}
	if r.scopes == nil {
		r.scopes = make(map[string]string)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Lookup returns the command bound to alias.
func (r *Registry) Lookup(alias string) (string, bool) {
	cmd, ok := r.commands[alias]
	return cmd, ok
}

// Scope returns the recorded scope of alias, Unscoped when none is recorded.
func (r *Registry) Scope(alias string) string {
	return r.scopes[alias]
}

// Names returns all bound aliases in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set binds alias to the trimmed command. A command that trims to empty
// removes the binding instead. The alias scope becomes the working directory
// when local is set, Unscoped otherwise; the scope entry is only rewritten
// when that decision differs from what is recorded.
func (r *Registry) Set(alias, command string, local bool) (Change, error) {
	if strings.TrimSpace(alias) == "" {
		return Change{}, ErrEmptyAlias
	}

	newScope := Unscoped
	if local {
		wd, err := r.getwd()
		if err != nil {
			return Change{}, fmt.Errorf("resolve working directory: %w", err)
		}
		newScope = wd
	}

	change := Change{Alias: alias, Command: strings.TrimSpace(command)}
	change.Previous, change.Replaced = r.commands[alias]

	if change.Command != "" {
		r.commands[alias] = change.Command
	} else {
		delete(r.commands, alias)
	}

	if r.scopes[alias] != newScope {
		if newScope == Unscoped {
			delete(r.scopes, alias)
		} else {
			r.scopes[alias] = newScope
		}
	}

	if err := r.save(); err != nil {
		return Change{}, err
	}

	log := logging.AliasLogger(r.logger, alias)
	if change.Deleted() {
		log.Info("alias deleted", "previous", change.Previous, "existed", change.Replaced)
	} else {
		log.Info("alias saved", "cmd", change.Command, "scope", newScope, "replaced", change.Replaced)
	}
	return change, nil
}

// Delete removes alias. It is Set with an empty command and no local scope,
// and reports ErrAliasNotFound when nothing was bound.
func (r *Registry) Delete(alias string) (Change, error) {
	if _, ok := r.commands[alias]; !ok {
		return Change{}, fmt.Errorf("%w: %s", ErrAliasNotFound, alias)
	}
	return r.Set(alias, "", false)
}

// Rename moves the command bound to source onto destination. The scope of
// source is not carried over, and any scope left under the destination name
// is dropped, so destination ends up unscoped.
func (r *Registry) Rename(source, destination string) error {
	if strings.TrimSpace(destination) == "" {
		return ErrEmptyAlias
	}
	cmd, ok := r.commands[source]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAliasNotFound, source)
	}
	if existing, ok := r.commands[destination]; ok {
		return &ExistsError{Alias: destination, Command: existing}
	}

	delete(r.commands, source)
	r.commands[destination] = cmd
	delete(r.scopes, destination)
	if err := r.save(); err != nil {
		return err
	}

	r.logger.Info("alias renamed", "from", source, "to", destination)
	return nil
}

// Edit hands the current text of alias (empty for a new alias) to ed and
// stores the result with Set. Nothing is stored if the editor fails.
func (r *Registry) Edit(ctx context.Context, ed Editor, alias string, local bool) (Change, error) {
	if strings.TrimSpace(alias) == "" {
		return Change{}, ErrEmptyAlias
	}
	edited, err := ed.Edit(ctx, alias, r.commands[alias])
	if err != nil {
		return Change{}, err
	}
	return r.Set(alias, edited, local)
}

// Run passes the command bound to alias, unmodified, to ex.
func (r *Registry) Run(ctx context.Context, ex Executor, alias string) error {
	cmd, ok := r.commands[alias]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAliasNotFound, alias)
	}
	logging.AliasLogger(r.logger, alias).Info("running alias", "cmd", cmd)
	return ex.Exec(ctx, cmd)
}

func (r *Registry) save() error {
	return r.store.Save(&store.Tables{Commands: r.commands, Scopes: r.scopes})
}
