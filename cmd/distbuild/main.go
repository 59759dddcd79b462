package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/systemstart/distbuild/pkg/api"
	"github.com/systemstart/distbuild/pkg/build"
	"github.com/systemstart/distbuild/pkg/logging"
)

var version = "dev"

const (
	_ = iota
	exitDotenvError
	exitWorkspaceNotFound
	exitLoadWorkspaceFailed
	exitPlanFailed
	exitBuildErrors
)

var (
	configFile       string
	workingDirectory string
	distDir          string
	planOnly         bool
	loggingType      string
	logLevel         string
	showVersion      bool
)

func init() {
	flag.StringVar(
		&configFile,
		"config",
		"",
		"workspace file to use (default: find dist.yaml upwards from the current directory)")
	flag.StringVar(
		&workingDirectory,
		"working-directory",
		"",
		"directory to run build commands in (default: the workspace directory)")
	flag.StringVar(
		&distDir,
		"dist-dir",
		"",
		"override the workspace distribution directory")
	flag.BoolVar(
		&planOnly,
		"plan",
		false,
		"print the build plan without executing it")
	flag.StringVar(
		&loggingType,
		"logging-type",
		"tint",
		"logging type: json, text or tint")
	flag.StringVar(
		&logLevel,
		"log-level",
		"info",
		"logging level: debug, info, warn, error")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	_ = logging.Initialize(loggingType, logLevel)

	includeEnv()

	ws := loadWorkspace()
	if distDir != "" {
		ws.OverrideDistDir(distDir)
	}

	steps, err := build.ComputePlan(ws)
	if err != nil {
		slog.Error("planning failed", "error", err)
		os.Exit(exitPlanFailed)
	}

	if len(steps) == 0 {
		slog.Warn("nothing to build", "workspace", ws.FilePath)
		return
	}

	if planOnly {
		for _, step := range steps {
			fmt.Println(step.Name())
		}
		return
	}

	if err := build.RunPlan(ws, steps, workingDirectory); err != nil {
		slog.Error("build failed", "error", err)
		os.Exit(exitBuildErrors)
	}

	slog.Info("done")
}

func loadWorkspace() *api.Workspace {
	path := configFile
	if path == "" {
		var err error
		path, err = api.FindWorkspaceFile(".")
		if err != nil {
			slog.Error("no workspace file found", "error", err)
			os.Exit(exitWorkspaceNotFound)
		}
	}

	ws, err := api.LoadWorkspace(path)
	if err != nil {
		slog.Error("failed to load workspace", "filename", path, "error", err)
		os.Exit(exitLoadWorkspaceFailed)
	}
	return ws
}

func includeEnv() {
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load .env", "error", err)
			os.Exit(exitDotenvError)
		}
		slog.Debug("no .env file found")
	} else {
		slog.Info("using .env file")
	}
}
