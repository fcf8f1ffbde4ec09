package shader

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// Definition describes how to build one named program.
type Definition struct {
	Name              string
	Sources           Sources
	Inputs            []string
	Outputs           []string
	TransformFeedback bool
}

// Library owns a set of named programs and releases them together.
type Library struct {
	driver Driver
	log    ErrorLogger
	fsys   fs.FS

	defs     map[string]Definition
	programs map[string]*Program
}

// NewLibrary returns an empty library building programs on driver.
func NewLibrary(driver Driver, log ErrorLogger) *Library {
	if log == nil {
		log = discardLogger{}
	}
	return &Library{
		driver:   driver,
		log:      log,
		defs:     make(map[string]Definition),
		programs: make(map[string]*Program),
	}
}

// SetSourceFS makes programs built afterwards read stage files from fsys.
func (l *Library) SetSourceFS(fsys fs.FS) {
	l.fsys = fsys
}

// Add registers a definition. It does not build it.
func (l *Library) Add(def Definition) error {
	if def.Name == "" {
		return errors.New("program definition has no name")
	}
	if _, dup := l.defs[def.Name]; dup {
		return fmt.Errorf("program %q defined twice", def.Name)
	}
	if len(def.Sources.Files()) == 0 {
		return fmt.Errorf("program %q has no stages", def.Name)
	}
	l.defs[def.Name] = def
	return nil
}

// Build builds every registered program that is not built yet.
// Programs that fail are kept so their logs stay inspectable.
func (l *Library) Build() error {
	var errs []error
	for _, name := range l.Names() {
		if _, built := l.programs[name]; built {
			continue
		}
		if err := l.build(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (l *Library) build(name string) error {
	def := l.defs[name]

	p := New(l.driver, l.log)
	if l.fsys != nil {
		p.SetSourceFS(l.fsys)
	}
	p.SetSources(def.Sources)
	l.programs[name] = p

	if err := p.Initialize(def.Inputs, def.Outputs, def.TransformFeedback); err != nil {
		return fmt.Errorf("program %s: %w", name, err)
	}
	return nil
}

// Get returns a built program.
func (l *Library) Get(name string) (*Program, bool) {
	p, ok := l.programs[name]
	return p, ok
}

// Definition returns the registered definition for name.
func (l *Library) Definition(name string) (Definition, bool) {
	def, ok := l.defs[name]
	return def, ok
}

// Names returns registered program names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reload releases a program and builds it again from its sources.
// A Program initializes once, so reloading always means a fresh object.
func (l *Library) Reload(name string) error {
	if _, ok := l.defs[name]; !ok {
		return fmt.Errorf("unknown program %q", name)
	}
	if old, ok := l.programs[name]; ok {
		old.Close()
		delete(l.programs, name)
	}
	return l.build(name)
}

// ProgramsFor returns the names of programs that read the given file.
// It only reads definitions, so it may run alongside Build and Reload.
func (l *Library) ProgramsFor(path string) []string {
	path = filepath.Clean(path)
	var names []string
	for _, name := range l.Names() {
		for _, f := range l.defs[name].Sources.Files() {
			if filepath.Clean(f) == path {
				names = append(names, name)
				break
			}
		}
	}
	return names
}

// Close releases every program.
func (l *Library) Close() {
	for name, p := range l.programs {
		p.Close()
		delete(l.programs, name)
	}
}
