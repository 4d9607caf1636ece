package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adfharrison1/go-datasets/pkg/api"
	"github.com/adfharrison1/go-datasets/pkg/registry"
	"github.com/adfharrison1/go-datasets/pkg/server"
)

func main() {
	// Command line flags
	var (
		catalogFile  = flag.String("catalog", "datasets.csv", "Dataset catalog CSV file")
		comma        = flag.String("comma", ",", "Field delimiter of the catalog file")
		snapshotFile = flag.String("snapshot", "", "Load the catalog from a snapshot instead of the CSV file")
		saveSnapshot = flag.String("save-snapshot", "", "Write a snapshot of the loaded catalog to this path")
		getKey       = flag.String("get", "", "Print the dataset stored under this INDEX as JSON")
		linkKey      = flag.String("link", "", "Print the MAIN_LINK of the dataset stored under this INDEX")
		prettyKey    = flag.String("pretty", "", "Print a one-line summary of the dataset stored under this INDEX")
		searchQuery  = flag.String("search", "", "Print the datasets whose name, category or description contain this text")
		serve        = flag.Bool("serve", false, "Serve the catalog over HTTP")
		port         = flag.String("port", "8080", "Server port")
		cacheSize    = flag.Int("search-cache", api.DefaultSearchCacheSize, "Number of search queries to memoize (0 disables)")
		showHelp     = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ngo-datasets is a read-only lookup registry over a dataset catalog table.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -pretty 1                              # One-line summary of dataset 1\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -link 1                                # Main download link\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -search underwater                     # Substring search\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -save-snapshot catalog.gods            # Snapshot the parsed catalog\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -snapshot catalog.gods -serve -port 9090\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	reg, err := loadRegistry(*catalogFile, *snapshotFile, *comma)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	log.Printf("INFO: Loaded %d datasets from %s", reg.Len(), reg.Source())

	if *saveSnapshot != "" {
		if err := reg.SaveSnapshot(*saveSnapshot); err != nil {
			log.Fatalf("ERROR: %v", err)
		}
		log.Printf("INFO: Saved snapshot to %s", *saveSnapshot)
	}

	q := query{
		get:    *getKey,
		link:   *linkKey,
		pretty: *prettyKey,
		search: *searchQuery,
	}
	if err := q.run(os.Stdout, reg); err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	if *serve {
		runServer(reg, *port, *cacheSize)
	}
}

// loadRegistry prefers the snapshot when one is given
func loadRegistry(catalogFile, snapshotFile, comma string) (*registry.Registry, error) {
	if snapshotFile != "" {
		log.Printf("INFO: Loading snapshot from: %s", snapshotFile)
		return registry.OpenSnapshot(snapshotFile)
	}

	delim := []rune(comma)
	if len(delim) != 1 {
		return nil, errors.New("-comma must be a single character")
	}

	log.Printf("INFO: Loading catalog from: %s", catalogFile)
	return registry.Open(catalogFile, registry.WithComma(delim[0]))
}

func runServer(reg *registry.Registry, port string, cacheSize int) {
	srv := server.NewServer(reg, cacheSize)

	httpServer := &http.Server{
		Addr:    ":" + port,
		Handler: srv.Router(),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting go-datasets server on :%s", port)
		log.Printf("API endpoints available at http://localhost:%s/datasets", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
