// Package window creates the OpenGL context shader programs are built on.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shaderkit/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Backend string
	Title   string
	Width   int
	Height  int
	Visible bool
}

// Context is a window owning a current OpenGL 4.1 core context.
type Context interface {
	// PollEvents drains pending window events and reports whether the
	// window should stay open.
	PollEvents() bool
	Close()
}

// New opens a window for cfg.Backend, makes its context current and
// loads the GL function pointers.
func New(cfg Config) (Context, error) {
	var (
		ctx Context
		err error
	)
	switch cfg.Backend {
	case BackendSDL, "":
		ctx, err = newSDL(cfg)
	case BackendGLFW:
		ctx, err = newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	if err := gl.Init(); err != nil {
		ctx.Close()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}

	logger.Info("OpenGL context ready",
		zap.String("backend", cfg.Backend),
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return ctx, nil
}
