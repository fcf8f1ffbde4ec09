package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Faultbox/shaderkit/internal/logger"
)

// glfwContext wraps a GLFW window and its OpenGL context.
type glfwContext struct {
	window *glfw.Window
}

func newGLFW(cfg Config) (*glfwContext, error) {
	logger.Debug("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	window.MakeContextCurrent()

	return &glfwContext{window: window}, nil
}

func (c *glfwContext) PollEvents() bool {
	glfw.PollEvents()
	return !c.window.ShouldClose()
}

func (c *glfwContext) Close() {
	logger.Debug("closing GLFW window")
	c.window.Destroy()
	glfw.Terminate()
}
