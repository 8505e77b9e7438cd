package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"tour-planner-service/internal/adapters/cache"
	"tour-planner-service/internal/adapters/repositories"
	"tour-planner-service/internal/adapters/scrape"
	"tour-planner-service/internal/adapters/solver"
	"tour-planner-service/internal/api"
	"tour-planner-service/internal/config"
	pgdb "tour-planner-service/internal/platform/db"
	"tour-planner-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, scraper, external solver) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := os.Getenv("SEED_PATH")
	port := config.Get("PORT", "8080")
	solverConfigPath := config.Get("SOLVER_CONFIG", "config/solver.yaml")
	sourceURLs := os.Getenv("SOURCE_URLS")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and optionally seed location data on startup.
	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}
	if seedPath != "" {
		if err := repositories.SeedFromJSON(db, seedPath); err != nil {
			log.Fatal(err)
		}
	}

	solverCfg, err := config.LoadSolverConfig(solverConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	tourSolver, err := solver.NewFileSolver(solverCfg)
	if err != nil {
		log.Fatal(err)
	}

	source, err := buildSource(db, sourceURLs)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteLocationRepository(db)
	router := api.NewRouter(repo, source, tourSolver)

	// Write timeout is generous: a cold plan waits on the external solver.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildSource assembles the scraping source with a persistent cache, or
// returns nil when no source URLs are configured (stored-set planning only).
func buildSource(db *sql.DB, sourceURLs string) (ports.LocationSource, error) {
	urls := splitURLs(sourceURLs)
	if len(urls) == 0 {
		return nil, nil
	}

	scraper, err := scrape.NewTableScraper(urls)
	if err != nil {
		return nil, fmt.Errorf("build source: %w", err)
	}

	var locCache cache.LocationCache
	switch backend := config.Get("CACHE_BACKEND", "sqlite"); backend {
	case "sqlite":
		locCache = cache.NewSqliteLocationCache(db)
	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, fmt.Errorf("build source: DATABASE_URL is required for the postgres cache backend")
		}
		pg, err := pgdb.Open(databaseURL)
		if err != nil {
			return nil, fmt.Errorf("build source: %w", err)
		}
		locCache = cache.NewSQLLocationCache(pg)
	case "redis":
		redisURL := os.Getenv("REDIS_URL")
		if strings.TrimSpace(redisURL) == "" {
			return nil, fmt.Errorf("build source: REDIS_URL is required for the redis cache backend")
		}
		locCache, err = cache.NewRedisLocationCache(redisURL, 24*time.Hour)
		if err != nil {
			return nil, fmt.Errorf("build source: %w", err)
		}
	case "none":
		locCache = nil
	default:
		return nil, fmt.Errorf("build source: unknown CACHE_BACKEND %q", backend)
	}

	// All pages feed one set, so the cache key covers the whole list.
	return cache.NewCachedLocationSource(scraper, locCache, strings.Join(urls, ","))
}

func splitURLs(s string) []string {
	var out []string
	for _, u := range strings.Split(s, ",") {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
