package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/virtualritz/glyphana/internal/charindex"
	"github.com/virtualritz/glyphana/internal/classify"
	"github.com/virtualritz/glyphana/internal/config"
	"github.com/virtualritz/glyphana/internal/db"
	"github.com/virtualritz/glyphana/internal/fontsource"
	"github.com/virtualritz/glyphana/internal/mcp"
	"github.com/virtualritz/glyphana/internal/ops"
	"github.com/virtualritz/glyphana/internal/search"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"search": true, "info": true, "categories": true,
	"recent": true, "collect": true, "uncollect": true,
	"collection": true, "export": true, "web": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   ___ _             _
  / __| |_  _ _ __| |_  __ _ _ _  __ _
 | (_ | | || | '_ \ ' \/ _' | ' \/ _' |
  \___|_|\_, | .__/_||_\__,_|_||_\__,_|
         |__/|_|

  Unicode character search and collection

  Usage: glyphana <command> [options]
         glyphana --help

  MCP server mode requires piped input.`)
}

// buildEnv assembles the operation environment: the character index from
// the configured source, the category registry with any persisted
// ordering applied, and the session database.
func buildEnv(baseDir string) (*ops.Env, error) {
	database, err := db.Init(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = baseDir
	}
	cfg, err := config.LoadWithLocal(baseDir, cwd)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var src charindex.Source = fontsource.AssignedSource{}
	if cfg.FontFamily != "" {
		src = fontsource.FontSource{Family: cfg.FontFamily}
	}
	idx, err := charindex.Build(src)
	if err != nil {
		if cfg.FontFamily == "" {
			database.Close()
			return nil, fmt.Errorf("failed to build character index: %w", err)
		}
		// A missing font degrades to the assigned repertoire
		fmt.Fprintf(os.Stderr, "warning: font %q unavailable, using assigned codepoints: %v\n", cfg.FontFamily, err)
		idx, err = charindex.Build(fontsource.AssignedSource{})
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to build character index: %w", err)
		}
	}

	reg := classify.DefaultRegistry()
	if order, err := db.LoadCategoryOrder(database); err == nil && len(order) > 0 {
		reg.ApplyOrder(order)
	}

	return &ops.Env{
		Index:    idx,
		Registry: reg,
		Engine:   search.NewEngine(),
		DB:       database,
		Config:   cfg,
	}, nil
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before building the index (no env needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, ".glyphana")

	env, err := buildEnv(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer env.DB.Close()
	db.ConfigurePool(env.DB, env.Config)

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(env)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'glyphana --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(env, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
