package msi

import (
	"fmt"
	"io"
	"msitrace/internal/common/app"
	"msitrace/internal/common/binding/msi/lib"
	"msitrace/internal/common/helper"
	"os"
	"time"
)

// InstallRequest describes one install operation.
type InstallRequest struct {
	// PackagePath is the canonicalized path to the package.
	PackagePath string

	// LogPath enables verbose engine logging to this file when non-empty.
	LogPath string

	// UI is the engine UI level; zero means default.
	UI lib.UILevel

	// Properties are PROPERTY=VALUE tokens joined into the legacy command
	// line in the given order.
	Properties []string
}

// Actions drives the install engine for one operation at a time.
type Actions struct {
	out io.Writer
}

func NewActions() *Actions {
	return &Actions{out: os.Stdout}
}

// NewActionsWithOutput routes trace lines to out instead of stdout.
func NewActionsWithOutput(out io.Writer) *Actions {
	return &Actions{out: out}
}

// InstallPackage runs one blocking install, printing a timestamped line for
// every message the engine emits. The flow is linear with no backtracking:
// UI level, optional log, handler registration, install, result mapping.
func (a *Actions) InstallPackage(req InstallRequest) error {
	if _, err := os.Stat(req.PackagePath); err != nil {
		return fmt.Errorf("package %q: %w", req.PackagePath, err)
	}

	level := req.UI
	if level == 0 {
		level = lib.UILevelDefault
	}
	previous := lib.SetInternalUI(level)
	app.Log.Debugf("internal UI level %s (was %s)", level, previous)

	if req.LogPath != "" {
		if err := lib.EnableLog(req.LogPath); err != nil {
			return fmt.Errorf("enable engine log %q: %w", req.LogPath, err)
		}
		app.Log.Debugf("engine log enabled at %s", req.LogPath)
	}

	ui, err := lib.SetExternalHandler(TraceHandler(a.out))
	if err != nil {
		return fmt.Errorf("register message handler: %w", err)
	}
	defer ui.Close()

	commandLine := helper.JoinProperties(req.Properties)
	app.Log.Debugf("installing %s with command line %q", req.PackagePath, commandLine)

	if err := lib.InstallProduct(req.PackagePath, commandLine); err != nil {
		return fmt.Errorf("install %q: %w", req.PackagePath, err)
	}
	return nil
}

const timestampLayout = "2006-01-02 15:04:05.000 -07:00"

// TraceHandler returns a message handler that prints one
// "{timestamp} ({category}) {text}" line per engine message and never asks
// the engine to cancel. Timestamps are local time; Go falls back to UTC when
// the local offset is unavailable.
func TraceHandler(out io.Writer) lib.RecordHandler {
	return func(message lib.InstallMessage, record *lib.Record) lib.Disposition {
		fmt.Fprintf(out, "%s (%s) %s\n", time.Now().Format(timestampLayout), message, record)
		return lib.DispositionDefault
	}
}
