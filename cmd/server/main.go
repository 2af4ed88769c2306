// Command server runs the road-works HTTP API and the background record
// sync worker until it receives SIGINT or SIGTERM.
//
// Usage:
//
//	server        run the service
//	server -env   print the environment variables it reads and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/roadworks-backend/internal/app"
	"github.com/heartmarshall/roadworks-backend/internal/config"
)

func main() {
	showEnv := flag.Bool("env", false, "print the environment variables and exit")
	flag.Parse()

	if *showEnv {
		desc, err := config.Describe()
		if err != nil {
			log.Fatalf("describe config: %v", err)
		}
		fmt.Fprintln(os.Stdout, desc)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
