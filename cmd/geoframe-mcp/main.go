package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/geoframe-mcp/internal/config"
	"github.com/ironsheep/geoframe-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("geoframe-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("geoframe-mcp - MCP server for pixel/geographic coordinate frames")
			fmt.Println()
			fmt.Println("Usage: geoframe-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from ./.env):")
			fmt.Println("  GEOFRAME_LOG_LEVEL=debug           Enable debug logging")
			fmt.Println("  GEOFRAME_DEFAULT_ANCHOR=center     Anchor used when a tool omits it (default corner)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()
	if cfg.Debug() {
		log.Printf("GeoFrame MCP Server v%s (built %s, commit %s), default anchor %s",
			Version, BuildTime, GitCommit, cfg.DefaultAnchor)
	}

	if Version != "dev" {
		server.Version = Version
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
