// Package shader compiles GLSL stages and links them into programs.
package shader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var errNoProgram = errors.New("driver returned no program object")

// ErrClosed is returned by Initialize once the program has been closed.
var ErrClosed = errors.New("shader: program closed")

// Program owns one linked GPU program and the stages that feed it.
//
// A Program is not safe for concurrent use; every method must run on the
// thread holding the GL context.
type Program struct {
	driver Driver
	log    ErrorLogger
	fsys   fs.FS

	handle      uint32
	compiled    bool
	linked      bool
	initialized bool
	closed      bool
	initErr     error
	lastLog     string

	sources  Sources
	uniforms map[string]int32
}

// New returns an empty program. A nil logger discards diagnostics.
func New(driver Driver, log ErrorLogger) *Program {
	if log == nil {
		log = discardLogger{}
	}
	return &Program{
		driver:   driver,
		log:      log,
		uniforms: make(map[string]int32),
	}
}

// SetSourceFS makes the program read stage files from fsys instead of the OS.
func (p *Program) SetSourceFS(fsys fs.FS) {
	p.fsys = fsys
}

// SetSources replaces all stage paths at once.
func (p *Program) SetSources(s Sources) {
	p.sources = s
}

// Sources returns the configured stage paths.
func (p *Program) Sources() Sources {
	return p.sources
}

func (p *Program) SetVertexShader(path string)         { p.sources.Vertex = path }
func (p *Program) SetFragmentShader(path string)       { p.sources.Fragment = path }
func (p *Program) SetGeometryShader(path string)       { p.sources.Geometry = path }
func (p *Program) SetTessControlShader(path string)    { p.sources.TessControl = path }
func (p *Program) SetTessEvaluationShader(path string) { p.sources.TessEvaluation = path }
func (p *Program) SetComputeShader(path string)        { p.sources.Compute = path }

// Handle returns the driver's program object, 0 until a stage compiled.
func (p *Program) Handle() uint32 { return p.handle }

// IsLinked reports whether the last link succeeded.
func (p *Program) IsLinked() bool { return p.linked }

// IsCompiled reports whether the last stage compilation succeeded.
func (p *Program) IsCompiled() bool { return p.compiled }

// IsInitialized reports whether Initialize has already run.
func (p *Program) IsInitialized() bool { return p.initialized }

// Log returns the last diagnostic message recorded by the program.
func (p *Program) Log() string { return p.lastLog }

func (p *Program) logError(msg string) {
	p.lastLog = msg
	p.log.LogError(msg)
}

func (p *Program) readSource(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if p.fsys != nil {
		data, err = fs.ReadFile(p.fsys, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CompileShaderFromFile compiles the file as the given stage and attaches it
// to the program, creating the program object on first success. Failures are
// logged and returned; stages attached earlier stay attached.
func (p *Program) CompileShaderFromFile(path string, stage Stage) error {
	source, err := p.readSource(path)
	if err != nil {
		p.compiled = false
		p.logError(fmt.Sprintf("error reading shader %s: %v", path, err))
		return fmt.Errorf("read %s shader: %w", stage, err)
	}

	sh := p.driver.CreateShader(stage)
	if sh == 0 {
		p.compiled = false
		p.logError("error creating shader " + path)
		return &CompileError{Path: path, Stage: stage, Log: "stage not supported by driver"}
	}

	p.driver.ShaderSource(sh, source)
	p.driver.CompileShader(sh)

	if !p.driver.ShaderCompiled(sh) {
		p.logError("error compiling shader " + path)
		infoLog := p.driver.ShaderInfoLog(sh)
		if infoLog != "" {
			p.logError("shader log:\n" + infoLog)
		}
		p.driver.DeleteShader(sh)
		p.compiled = false
		return &CompileError{Path: path, Stage: stage, Log: infoLog}
	}

	if p.handle == 0 {
		p.handle = p.driver.CreateProgram()
		if p.handle == 0 {
			p.driver.DeleteShader(sh)
			p.compiled = false
			p.logError("error creating shader program for " + path)
			return fmt.Errorf("compile %s: %w", path, errNoProgram)
		}
	}

	// The program keeps the stage alive until it is detached or deleted.
	p.driver.AttachShader(p.handle, sh)
	p.driver.DeleteShader(sh)

	p.compiled = true
	return nil
}

// Link links every attached stage. label only appears in diagnostics.
func (p *Program) Link(label string) error {
	if p.handle == 0 {
		p.linked = false
		p.logError("error linking shader " + label + ": no stages attached")
		return &LinkError{Label: label, Log: "no stages attached"}
	}

	p.driver.LinkProgram(p.handle)

	if !p.driver.ProgramLinked(p.handle) {
		p.logError("error linking shader " + label)
		infoLog := p.driver.ProgramInfoLog(p.handle)
		if infoLog != "" {
			p.logError("shader log:\n" + infoLog)
		}
		p.linked = false
		return &LinkError{Label: label, Log: infoLog}
	}

	p.linked = true
	return nil
}

// Use makes the program current. Unlinked programs are ignored.
func (p *Program) Use() {
	if p.linked {
		p.driver.UseProgram(p.handle)
	}
}

// BindAttribLocation binds a vertex input name to an attribute index.
// Takes effect on the next link.
func (p *Program) BindAttribLocation(index uint32, name string) {
	p.driver.BindAttribLocation(p.handle, index, name)
}

// BindFragDataLocation binds a fragment output name to a color number.
// Takes effect on the next link.
func (p *Program) BindFragDataLocation(color uint32, name string) {
	p.driver.BindFragDataLocation(p.handle, color, name)
}

// Initialize compiles every configured stage, binds attribute names to
// indices in list order and links. It only does work on the first call;
// later calls return the first result, or ErrClosed after Close.
//
// When transformFeedback is set the outputs are captured as separate
// transform-feedback varyings, otherwise they become fragment outputs.
func (p *Program) Initialize(inputs, outputs []string, transformFeedback bool) error {
	if p.closed {
		return ErrClosed
	}
	if p.initialized {
		return p.initErr
	}
	p.initialized = true
	p.initErr = p.initialize(inputs, outputs, transformFeedback)
	return p.initErr
}

func (p *Program) initialize(inputs, outputs []string, transformFeedback bool) error {
	var firstErr error
	for _, stage := range initOrder {
		path := p.sources.Path(stage)
		if path == "" {
			continue
		}
		if err := p.CompileShaderFromFile(path, stage); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	label := p.label()
	if p.handle == 0 {
		// Nothing attached, Link reports it.
		if err := p.Link(label); firstErr == nil {
			firstErr = err
		}
		return firstErr
	}

	for i, name := range inputs {
		p.BindAttribLocation(uint32(i), name)
	}

	if transformFeedback {
		p.driver.TransformFeedbackVaryings(p.handle, outputs)
	} else {
		for i, name := range outputs {
			p.BindFragDataLocation(uint32(i), name)
		}
	}

	if err := p.Link(label); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// label names the program after its vertex stage file, without extension.
// Any extension length is stripped, not only 5-character ones like ".vert".
func (p *Program) label() string {
	name := p.sources.Vertex
	if name == "" {
		if files := p.sources.Files(); len(files) > 0 {
			name = files[0]
		}
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// UniformLocation returns the location of a uniform and whether it exists.
// Found locations are cached for the lifetime of the program object.
func (p *Program) UniformLocation(name string) (int32, bool) {
	if loc, ok := p.uniforms[name]; ok {
		return loc, true
	}
	if p.handle == 0 {
		return -1, false
	}

	loc := p.driver.GetUniformLocation(p.handle, name)
	if loc < 0 {
		return -1, false
	}
	p.uniforms[name] = loc
	return loc, true
}

// SubroutineLocation is not supported by this backend.
func (p *Program) SubroutineLocation(name string, stage Stage) (uint32, error) {
	return 0, fmt.Errorf("subroutine %q in %s shader: %w", name, stage, ErrFeatureNotAvailable)
}

// ChangeFragmentSubroutine is not supported by this backend.
func (p *Program) ChangeFragmentSubroutine(name string) error {
	return fmt.Errorf("subroutine %q: %w", name, ErrFeatureNotAvailable)
}

// Close deletes the program object and forgets cached uniform locations.
// The program cannot be initialized again. It is safe to call more than once.
func (p *Program) Close() {
	p.closed = true
	if p.handle != 0 {
		p.driver.DeleteProgram(p.handle)
		p.handle = 0
	}
	p.linked = false
	p.compiled = false
	clear(p.uniforms)
}
