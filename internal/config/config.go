// Package config handles shaderkit configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Faultbox/shaderkit/internal/engine/shader"
)

// Config holds all settings.
type Config struct {
	Window   WindowConfig    `yaml:"window"`
	Logging  LoggingConfig   `yaml:"logging"`
	Shaders  ShadersConfig   `yaml:"shaders"`
	Programs []ProgramConfig `yaml:"programs"`
}

// WindowConfig holds settings for the context the programs are built on.
type WindowConfig struct {
	Backend string `yaml:"backend"` // "sdl" or "glfw"
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Visible bool   `yaml:"visible"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// ShadersConfig holds where stage files live and how they are watched.
type ShadersConfig struct {
	Dir   string `yaml:"dir"` // relative stage paths are resolved against it
	Watch bool   `yaml:"watch"`
}

// ProgramConfig describes one program and its stages.
type ProgramConfig struct {
	Name              string   `yaml:"name"`
	Vertex            string   `yaml:"vertex"`
	Fragment          string   `yaml:"fragment"`
	Geometry          string   `yaml:"geometry"`
	TessControl       string   `yaml:"tess_control"`
	TessEvaluation    string   `yaml:"tess_evaluation"`
	Compute           string   `yaml:"compute"`
	Inputs            []string `yaml:"inputs"`
	Outputs           []string `yaml:"outputs"`
	TransformFeedback bool     `yaml:"transform_feedback"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Backend: "sdl",
			Width:   64,
			Height:  64,
			Visible: false,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Shaders: ShadersConfig{
			Dir: "shaders",
		},
	}
}

// Validate reports configuration mistakes.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Backend != "sdl" && c.Window.Backend != "glfw" {
		errs = append(errs, fmt.Errorf("window.backend %q: want sdl or glfw", c.Window.Backend))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	seen := make(map[string]bool)
	for i, p := range c.Programs {
		switch {
		case p.Name == "":
			errs = append(errs, fmt.Errorf("programs[%d]: missing name", i))
		case seen[p.Name]:
			errs = append(errs, fmt.Errorf("programs[%d]: duplicate name %q", i, p.Name))
		}
		seen[p.Name] = true

		if len(p.Definition("").Sources.Files()) == 0 {
			errs = append(errs, fmt.Errorf("programs[%d] %q: no stages", i, p.Name))
		}
		if p.TransformFeedback && len(p.Outputs) == 0 {
			errs = append(errs, fmt.Errorf("programs[%d] %q: transform feedback without outputs", i, p.Name))
		}
	}
	return errors.Join(errs...)
}

// Definitions converts every program to a shader definition.
func (c *Config) Definitions() []shader.Definition {
	defs := make([]shader.Definition, 0, len(c.Programs))
	for _, p := range c.Programs {
		defs = append(defs, p.Definition(c.Shaders.Dir))
	}
	return defs
}

// Definition converts p, resolving relative stage paths against dir.
func (p ProgramConfig) Definition(dir string) shader.Definition {
	resolve := func(path string) string {
		if path == "" || dir == "" || filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(dir, path)
	}

	return shader.Definition{
		Name: p.Name,
		Sources: shader.Sources{
			Vertex:         resolve(p.Vertex),
			Fragment:       resolve(p.Fragment),
			Geometry:       resolve(p.Geometry),
			TessControl:    resolve(p.TessControl),
			TessEvaluation: resolve(p.TessEvaluation),
			Compute:        resolve(p.Compute),
		},
		Inputs:            p.Inputs,
		Outputs:           p.Outputs,
		TransformFeedback: p.TransformFeedback,
	}
}
