package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"sienna-watch/internal/config"
	"sienna-watch/internal/fetch"
	"sienna-watch/internal/ingest"
	"sienna-watch/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting inventory fetch...")

	cfg := config.MustLoad()
	ctx := context.Background()

	st, err := store.Open(store.Config{
		Type:          cfg.Store.Type,
		Dir:           cfg.Store.Dir,
		SQLitePath:    cfg.Store.SQLitePath,
		RedisAddr:     cfg.Store.RedisAddress(),
		RedisPassword: cfg.Store.RedisPassword,
		RedisDB:       cfg.Store.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to open entity store: %v", err)
	}
	defer st.Close()
	log.Printf("Entity store initialized (%s)", cfg.Store.Type)

	client := fetch.NewClient(&http.Client{Timeout: 60 * time.Second}, cfg.Search.WAFToken)

	listings, err := client.LoadAll(ctx, fetch.Query{
		Zip:           cfg.Search.Zip,
		PageSize:      cfg.Search.PageSize,
		DistanceMiles: cfg.Search.DistanceMiles,
	})
	if err != nil {
		log.Fatalf("Inventory fetch failed: %v", err)
	}

	reconciler := ingest.NewReconciler(st, client)
	if err := reconciler.Run(ctx, listings); err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	if err := ingest.WriteListings(cfg.Search.OutputPath, listings, time.Now()); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Wrote %d listings to %s", len(listings), cfg.Search.OutputPath)
}
