// vertextool inspects and prepares vertex lists for mesh export.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/g3dexport/internal/config"
	"github.com/Faultbox/g3dexport/internal/logger"
	"github.com/Faultbox/g3dexport/pkg/vertex"
)

func main() {
	config.ParseFlags()
	args := config.Args()

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	vertex.SetLogger(logger.Log.Named("vertex"))

	logger.Sugar.Debugf("Config: %+v", cfg)

	command, rest := args[0], args[1:]
	out := os.Stdout

	switch command {
	case "info":
		err = cmdInfo(out, rest)
	case "normalize":
		err = cmdNormalize(out, rest)
	case "dedupe":
		err = cmdDedupe(out, rest)
	case "process":
		err = cmdProcess(out, cfg, rest)
	case "compare":
		err = cmdCompare(out, rest)
	case "init-config":
		err = cmdInitConfig(out, cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Debug("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vertextool - vertex list utility for mesh export

Usage:
  vertextool [flags] <command> [args]

Commands:
  info <file.yaml>              Show vertex counts and attribute usage
  normalize <file.yaml>         Normalize blend weights, print the result
  dedupe <file.yaml>            Merge equal vertices, print vertices and indices
  process <file.yaml>           Apply the configured processing steps
  compare <file.yaml> <i> <j>   Report whether two vertices are equal
  init-config [path]            Write the current config as YAML

Flags:
  -config <path>   Config file (default: ./vertextool.yaml or user config dir)
  -debug           Debug logging
  -log-file <path> Also log to a rotating file
  -no-normalize    Skip weight normalization in process
  -no-dedupe       Skip deduplication in process

Examples:
  vertextool info mesh.yaml
  vertextool -debug normalize mesh.yaml > normalized.yaml
  vertextool compare mesh.yaml 0 4`)
}
