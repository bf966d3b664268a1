// ABOUTME: Entry point for the list table demo server.
// ABOUTME: Wires together store, auth, logging, and the admin UI with CLI commands.

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/plumline/listtable/admin"
	"github.com/plumline/listtable/auth"
	"github.com/plumline/listtable/internal/logging"
	"github.com/plumline/listtable/internal/seed"
	"github.com/plumline/listtable/internal/store"
	"github.com/plumline/listtable/nonce"
)

var (
	port      string
	dbPath    string
	seedCount int
)

func main() {
	logging.Setup(getEnv("LISTTABLE_LOG_LEVEL", "info"))

	rootCmd := &cobra.Command{
		Use:   "listtable",
		Short: "Admin list table demo server",
		Long: `A demo server for the list table library: a declaratively configured
admin table over a SQLite orders database.

The orders table exercises the full feature set:
  • Column type detection and value formatting (prices, dates, badges, counts)
  • Sortable columns, search, status views, and dropdown filters
  • Nonce-protected row actions and bulk actions
  • Inline column editing

Quick Start:
  listtable seed          # Generate demo orders
  listtable serve         # Start server on port 9000
  listtable reset         # Wipe and reseed the database`,
	}

	defaultDBPath := getDefaultDBPath()

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the demo HTTP server on the specified port.

The server provides:
  • Admin UI at http://localhost:PORT/admin
  • Health check at http://localhost:PORT/healthz

Authentication:
  Use Bearer tokens in the format: Bearer user:USERNAME
  Requests without a token act as a full administrator.

Environment Variables:
  LISTTABLE_PORT       Server port (default: 9000)
  LISTTABLE_SECRET     Nonce signing secret (random per process when unset)
  LISTTABLE_LOG_LEVEL  debug, info, warn, or error`,
		RunE: runServe,
	}
	serveCmd.Flags().StringVarP(&port, "port", "p", getEnv("LISTTABLE_PORT", "9000"), "Port to listen on")
	serveCmd.Flags().StringVarP(&dbPath, "db", "d", defaultDBPath, "Database path")

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with demo orders",
		Long: `Seed the database with realistic demo orders.

AI-Powered Generation:
  Set OPENAI_API_KEY to generate varied orders with AI.
  Falls back to static demo data if no API key is provided.

Note: Seed is not idempotent. Use 'listtable reset' to clear data first.`,
		RunE: runSeed,
	}
	seedCmd.Flags().StringVarP(&dbPath, "db", "d", defaultDBPath, "Database path")
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 40, "Number of orders to generate")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the database (wipe and reseed)",
		Long: `Delete all data and seed the database with fresh demo orders.

Warning: This permanently deletes all data in the database!`,
		RunE: runReset,
	}
	resetCmd.Flags().StringVarP(&dbPath, "db", "d", defaultDBPath, "Database path")
	resetCmd.Flags().IntVarP(&seedCount, "count", "n", 40, "Number of orders to generate")

	rootCmd.AddCommand(serveCmd, seedCmd, resetCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// validateAndCleanDBPath validates and cleans a database path.
func validateAndCleanDBPath(path string) (string, error) {
	cleanPath := strings.TrimSpace(path)
	cleanPath = filepath.Clean(cleanPath)

	if cleanPath == "" || cleanPath == "." || cleanPath == "/" {
		return "", fmt.Errorf("database path cannot be empty, '.', or '/'")
	}

	// Windows: reject bare drive letters (e.g., "C:", "D:")
	if runtime.GOOS == "windows" && len(cleanPath) == 2 && cleanPath[1] == ':' {
		return "", fmt.Errorf("database path cannot be a bare drive letter")
	}

	if strings.Contains(cleanPath, "..") {
		return "", fmt.Errorf("database path cannot contain '..'")
	}

	return cleanPath, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	var err error
	dbPath, err = validateAndCleanDBPath(dbPath)
	if err != nil {
		return err
	}

	srv, err := newServer(dbPath)
	if err != nil {
		return err
	}

	addr := ":" + port
	slog.Info("listtable server listening", "addr", addr, "db", dbPath)
	return http.ListenAndServe(addr, srv)
}

func newServer(dbPath string) (http.Handler, error) {
	s, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	registerOrdersTable(s)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(auth.Middleware(nil))
	r.Use(logging.Middleware())

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	// Favicon
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin", http.StatusFound)
	})

	admin.NewHandlers(nonceService()).RegisterRoutes(r)

	return r, nil
}

// nonceService builds the signing service. A stable secret keeps action
// links valid across restarts.
func nonceService() *nonce.Service {
	if secret := os.Getenv("LISTTABLE_SECRET"); secret != "" {
		return nonce.New([]byte(secret))
	}
	return nonce.New(nil)
}

func runSeed(cmd *cobra.Command, args []string) error {
	var err error
	dbPath, err = validateAndCleanDBPath(dbPath)
	if err != nil {
		return err
	}

	s, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	return seedData(cmd, s)
}

func runReset(cmd *cobra.Command, args []string) error {
	var err error
	dbPath, err = validateAndCleanDBPath(dbPath)
	if err != nil {
		return err
	}

	s, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Reset(); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}

	return seedData(cmd, s)
}

func seedData(cmd *cobra.Command, s *store.Store) error {
	slog.Info("seeding database", "count", seedCount)

	orders, err := seed.NewGenerator().Generate(cmd.Context(), seedCount)
	if err != nil {
		return err
	}

	created := 0
	for i := range orders {
		if err := s.CreateOrder(cmd.Context(), &orders[i]); err != nil {
			slog.Warn("skipping order", "order", orders[i].OrderNumber, "error", err)
			continue
		}
		created++
	}

	slog.Info("seeding complete", "created", created)
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getDefaultDBPath returns the default database path following the XDG Base
// Directory spec. Priority: LISTTABLE_DB_PATH > ./listtable.db (backwards
// compat) > XDG_DATA_HOME/listtable/listtable.db.
func getDefaultDBPath() string {
	if envPath := os.Getenv("LISTTABLE_DB_PATH"); envPath != "" {
		envPath = filepath.Clean(strings.TrimSpace(envPath))
		if envPath != "" && envPath != "." {
			return envPath
		}
		slog.Warn("LISTTABLE_DB_PATH is invalid, using default path")
	}

	cwdPath := "./listtable.db"
	if _, err := os.Stat(cwdPath); err == nil {
		return cwdPath
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil || homeDir == "" || homeDir == "/" {
			return cwdPath
		}

		if runtime.GOOS == "windows" {
			dataHome = os.Getenv("LOCALAPPDATA")
			if dataHome == "" {
				dataHome = filepath.Join(homeDir, "AppData", "Local")
			}
		} else {
			dataHome = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(dataHome, "listtable")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		slog.Warn("could not create data directory, using working directory", "dir", dataDir, "error", err)
		return cwdPath
	}

	return filepath.Join(dataDir, "listtable.db")
}
