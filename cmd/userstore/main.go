package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dusk-indust/userstore/internal/config"
	"github.com/dusk-indust/userstore/internal/seed"
	"github.com/dusk-indust/userstore/internal/user"
	"github.com/dusk-indust/userstore/internal/usertools"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	Seed      string
	ServeMCP  bool
	Verbose   bool
	Version   bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("userstore", flag.ContinueOnError)
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory containing userstore.yml")
	fs.StringVar(&flags.Seed, "seed", "", "comma-separated extra seed file paths")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server on stdio")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	cfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	paths := cfg.ResolveSeedFiles(flags.ConfigDir)
	for _, p := range strings.Split(flags.Seed, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	ctx := context.Background()
	store := user.NewStore()

	seeded, err := seed.Populate(ctx, store, paths)
	if err != nil {
		return err
	}
	if flags.Verbose || cfg.Verbose {
		fmt.Fprintf(os.Stderr, "seeded %d users from %d files\n", seeded, len(paths))
	}

	svc := usertools.NewUserService(store)

	if flags.ServeMCP {
		return usertools.RunUserMCPServerStdio(ctx, usertools.NewUserMCPServer(svc))
	}

	// Default mode: print the seeded listing and exit.
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(store.List())
}
