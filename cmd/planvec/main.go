package main

import (
	"fmt"
	"log"
	"os"

	"github.com/openfloor/planvec/internal/config"
	"github.com/openfloor/planvec/internal/server"
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
			fmt.Printf("planvec %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("planvec - vectorization service for scanned floor plans")
			fmt.Println()
			fmt.Println("Usage: planvec [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PORT                     Listen port (default 8000)")
			fmt.Println("  ENV                      Environment name (default development)")
			fmt.Println("  READ_TIMEOUT             Read timeout in seconds (default 30)")
			fmt.Println("  WRITE_TIMEOUT            Write timeout in seconds (default 30)")
			fmt.Println("  PLANVEC_LOG_LEVEL=debug  Enable debug logging")
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()
	if cfg.LogLevel == "debug" {
		log.Printf("planvec v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	app := server.New(cfg)
	addr := ":" + cfg.Port
	log.Printf("Starting planvec on %s (env: %s)", addr, cfg.Environment)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
