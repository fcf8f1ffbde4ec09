// Package main is the entry point for shadercheck, which builds every
// configured shader program on a real OpenGL context and reports failures.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shaderkit/internal/config"
	"github.com/Faultbox/shaderkit/internal/engine/shader"
	"github.com/Faultbox/shaderkit/internal/engine/window"
	"github.com/Faultbox/shaderkit/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.DumpPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.MaxSizeMB = cfg.Logging.MaxSizeMB
		fileCfg.MaxBackups = cfg.Logging.MaxBackups
	}
	logger.Init(cfg.Logging.Level, fileCfg, os.Stdout)

	code := run(cfg)
	logger.Sync()
	os.Exit(code)
}

func run(cfg *config.Config) int {
	if len(cfg.Programs) == 0 {
		logger.Warn("no programs configured")
		return 0
	}

	win, err := window.New(window.Config{
		Backend: cfg.Window.Backend,
		Title:   "shadercheck",
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Visible: cfg.Window.Visible,
	})
	if err != nil {
		logger.Error("failed to create context", zap.Error(err))
		return 1
	}
	defer win.Close()

	lib := shader.NewLibrary(shader.GLDriver{}, logger.NewErrorSink(logger.Log))
	defer lib.Close()

	for _, def := range cfg.Definitions() {
		if err := lib.Add(def); err != nil {
			logger.Error("invalid program", zap.Error(err))
			return 1
		}
	}

	failed := report(lib, lib.Build())

	if !cfg.Shaders.Watch {
		if failed > 0 {
			return 1
		}
		return 0
	}
	if err := watch(win, lib); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("watch stopped", zap.Error(err))
		return 1
	}
	return 0
}

// report logs the state of every program and returns how many failed.
func report(lib *shader.Library, buildErr error) int {
	if buildErr != nil {
		logger.Sugar.Debugf("build errors: %v", buildErr)
	}

	failed := 0
	for _, name := range lib.Names() {
		p, ok := lib.Get(name)
		if ok && p.IsLinked() {
			logger.Info("program linked", zap.String("program", name), zap.Uint32("handle", p.Handle()))
			continue
		}
		failed++
		fields := []zap.Field{zap.String("program", name)}
		if ok && p.Log() != "" {
			fields = append(fields, zap.String("log", p.Log()))
		}
		logger.Error("program failed", fields...)
	}

	logger.Info("build finished", zap.Int("programs", len(lib.Names())), zap.Int("failed", failed))
	return failed
}

// watch rebuilds programs as their sources change. GL work stays on this
// goroutine; the watcher only forwards program names.
func watch(win window.Context, lib *shader.Library) error {
	w, err := shader.NewWatcher(lib)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	changed := make(chan string, 16)
	watchErr := make(chan error, 1)
	go func() { watchErr <- w.Run(ctx, changed) }()

	logger.Info("watching shader sources, press Ctrl+C to stop")

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case name := <-changed:
			if err := lib.Reload(name); err != nil {
				logger.Error("reload failed", zap.String("program", name), zap.Error(err))
				continue
			}
			logger.Info("program reloaded", zap.String("program", name))
		case err := <-watchErr:
			return err
		case <-ticker.C:
			if !win.PollEvents() {
				return nil
			}
		}
	}
}
