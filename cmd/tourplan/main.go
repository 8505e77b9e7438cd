package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"tour-planner-service/internal/adapters/cache"
	"tour-planner-service/internal/adapters/repositories"
	"tour-planner-service/internal/adapters/scrape"
	"tour-planner-service/internal/adapters/solver"
	"tour-planner-service/internal/config"
	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/services"
)

// tourplan runs the pipeline once, end to end: load or scrape the
// location set, build the distance matrix, invoke the external solver,
// and print the resulting tour report.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		dbPath     = flag.String("db", config.Get("DB_PATH", "data/app.db"), "sqlite database path")
		seedPath   = flag.String("seed", "", "seed locations from a JSON file before planning")
		sources    = flag.String("sources", os.Getenv("SOURCE_URLS"), "comma-separated page URLs to scrape")
		solverPath = flag.String("solver", config.Get("SOLVER_CONFIG", "config/solver.yaml"), "solver YAML config path")
		closed     = flag.Bool("closed", true, "close the tour with a return leg")
		buckets    = flag.Int("buckets", 10, "histogram bucket count")
	)
	flag.Parse()

	db, err := sql.Open("sqlite", *dbPath)
	if err != nil {
		log.Fatalf("open sqlite database %q: %v", *dbPath, err)
	}
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	set, err := loadLocations(ctx, db, *seedPath, *sources)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("locations loaded count=%d", set.Len())

	solverCfg, err := config.LoadSolverConfig(*solverPath)
	if err != nil {
		log.Fatal(err)
	}
	tourSolver, err := solver.NewFileSolver(solverCfg)
	if err != nil {
		log.Fatal(err)
	}

	report, err := services.PlanTourForSet(ctx, set, tourSolver, nil, *closed)
	if err != nil {
		log.Fatal(err)
	}

	printReport(report, *buckets)
}

// loadLocations resolves the location set, preferring explicit seeds,
// then scraped sources, then the previously stored set.
func loadLocations(ctx context.Context, db *sql.DB, seedPath, sources string) (*domain.LocationSet, error) {
	repo := repositories.NewSqliteLocationRepository(db)

	if seedPath != "" {
		if err := repositories.SeedFromJSON(db, seedPath); err != nil {
			return nil, err
		}
	}

	if urls := splitURLs(sources); len(urls) > 0 {
		scraper, err := scrape.NewTableScraper(urls)
		if err != nil {
			return nil, err
		}

		source, err := cache.NewCachedLocationSource(
			scraper,
			cache.NewSqliteLocationCache(db),
			strings.Join(urls, ","),
		)
		if err != nil {
			return nil, err
		}

		set, err := source.FetchLocations(ctx)
		if err != nil {
			return nil, err
		}

		// Persist so later runs and the API can plan without re-scraping.
		if err := repo.SaveLocations(ctx, set.Locations()); err != nil {
			return nil, err
		}
		return set, nil
	}

	locs, err := repo.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	if len(locs) == 0 {
		return nil, fmt.Errorf("load locations: %w: seed locations or configure -sources", domain.ErrEmptyInput)
	}
	return domain.NewLocationSetFrom(locs)
}

func printReport(report *services.TourReport, buckets int) {
	fmt.Printf("\nTour: %d stops, %.1f miles", len(report.Tour.Order), report.TotalMiles)
	if report.Closed {
		fmt.Printf(" (closed)")
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tFROM\tTO\tMILES")
	for i, leg := range report.Legs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\n", i+1, leg.From, leg.To, leg.Miles)
	}
	w.Flush()

	fmt.Printf(
		"\nPairwise distances: %d pairs, min=%.1f max=%.1f mean=%.1f miles\n",
		report.Stats.Pairs, report.Stats.Min, report.Stats.Max, report.Stats.Mean,
	)

	legMiles := make([]float64, 0, len(report.Legs))
	for _, leg := range report.Legs {
		legMiles = append(legMiles, leg.Miles)
	}

	fmt.Println("\nLeg distance histogram:")
	for _, b := range services.Histogram(legMiles, buckets) {
		fmt.Printf("%7.1f - %7.1f | %s\n", b.Low, b.High, strings.Repeat("#", b.Count))
	}
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
