// Command server starts the Concord HTTP API.
// Usage: go run ./cmd/server [addr]
// Default addr: :8080
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/superanalyst/concord/internal/server"
)

func main() {
	cfg := server.Config{ListenAddr: ":8080"}

	// Optional: custom listen address from command line
	if len(os.Args) > 1 {
		cfg.ListenAddr = os.Args[1]
	}

	s, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("creating server: %v", err)
	}

	fmt.Println("===========================================")
	fmt.Println("   Concord - QA Agreement Scoring API")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Printf("Listening on %s\n", cfg.ListenAddr)
	fmt.Println()
	fmt.Println("Endpoints:")
	fmt.Println("  POST /compare          - single chat comparison")
	fmt.Println("  POST /compare/batch    - batch comparison (JSON)")
	fmt.Println("  POST /compare/csv      - batch comparison (CSV upload)")
	fmt.Println("  GET  /template.csv     - CSV upload template")
	fmt.Println("  GET  /sample           - generated sample records")
	fmt.Println("  GET  /quicktest        - built-in worked example")
	fmt.Println("  POST /charts/record    - per-KPI chart (HTML)")
	fmt.Println("  POST /charts/batch     - batch MAE chart (HTML)")
	fmt.Println("  GET  /ws/evaluate      - streamed batch evaluation")
	fmt.Println("  GET  /docs/            - API documentation")

	if err := s.HTTPServer().ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
