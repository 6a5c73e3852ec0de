package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sienna-watch/internal/config"
	"sienna-watch/internal/handler"
	"sienna-watch/internal/router"
	"sienna-watch/internal/service"
	"sienna-watch/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting inventory host...")

	cfg := config.MustLoad()

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

	listings := service.NewListingService(st, cfg.View.InputPath, service.Options{
		Filter:          cfg.View.Filter,
		MinDesirability: cfg.View.MinDesirability,
		Since:           cfg.View.Since,
		MaxMarkup:       cfg.View.MaxMarkup,
		Sort:            cfg.View.Sort,
	})

	// Port 0 means print the current view to the console and exit.
	if cfg.Server.Port == 0 {
		records, total, err := listings.Views(context.Background())
		if err != nil {
			log.Fatalf("Failed to load views: %v", err)
		}
		fmt.Printf("%d of %d vehicle(s):\n", len(records), total)
		for _, rec := range records {
			fmt.Printf("  - %s %s score=%d msrp=%.0f advertised=%.0f markup=%.0f %s\n",
				rec.VIN, rec.Title, rec.Desirability, rec.MSRP, rec.AdvertisedPrice, rec.Markup, rec.DealerName)
		}
		return
	}

	r := router.New(router.Config{
		Handler:        handler.New(),
		ListingHandler: handler.NewListingHandler(listings),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
