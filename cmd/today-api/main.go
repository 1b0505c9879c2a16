package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikkifoustaws-gh/TodayApi/internal/app"
	"github.com/nikkifoustaws-gh/TodayApi/internal/commands"
)

func main() {
	// Check for subcommands
	if len(os.Args) > 1 && os.Args[1] == "export" {
		commands.Export(os.Args[2:])
		return
	}

	// Parse flags
	port := flag.String("port", app.DefaultPort, "Port to listen on")
	tz := flag.String("tz", "", "Timezone name (default: "+app.TimezoneEnvVar+" or "+app.DefaultTimezone+")")
	flag.Parse()

	zone := *tz
	if zone == "" {
		zone = os.Getenv(app.TimezoneEnvVar)
	}

	// An unresolvable timezone is fatal: serving dates with a guessed
	// offset would be worse than not serving at all.
	loc, err := app.LoadZone(zone)
	if err != nil {
		log.Fatalf("Failed to resolve timezone: %v", err)
	}

	server := app.NewServer(loc)

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Starting today-api in timezone %s on http://localhost:%s", loc, *port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
