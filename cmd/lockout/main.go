// Command lockout inspects and edits the failed-login lockout state.
//
// Usage:
//
//	lockout -list
//	lockout -unlock=42
//	lockout -max-attempts=5
//
// Requires the same configuration as the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/roadworks-backend/internal/app"
	"github.com/heartmarshall/roadworks-backend/internal/config"
)

func main() {
	list := flag.Bool("list", false, "list blocked accounts")
	unlock := flag.Int64("unlock", 0, "id of the account to unlock")
	maxAttempts := flag.Int("max-attempts", 0, "set the failed attempts allowed before blocking")
	flag.Parse()

	if !*list && *unlock == 0 && *maxAttempts == 0 {
		fmt.Fprintln(os.Stderr, "Usage: lockout -list | -unlock=<id> | -max-attempts=<n>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := app.Build(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("build services: %v", err)
	}
	defer c.Close()

	if err := run(ctx, c, *list, *unlock, *maxAttempts); err != nil {
		c.Close()
		log.Fatalf("lockout: %v", err)
	}
}

func run(ctx context.Context, c *app.Container, list bool, unlock int64, maxAttempts int) error {
	if maxAttempts != 0 {
		if err := c.Lockout.SetMaxAttempts(ctx, maxAttempts); err != nil {
			return err
		}
		fmt.Printf("Max attempts set to %d.\n", maxAttempts)
	}

	if unlock != 0 {
		acc, err := c.Lockout.Unlock(ctx, unlock)
		if err != nil {
			return err
		}
		fmt.Printf("Account %d (%s) unlocked.\n", acc.ID, acc.Email)
	}

	if list {
		blocked, err := c.Lockout.ListBlocked(ctx)
		if err != nil {
			return err
		}
		if len(blocked) == 0 {
			fmt.Println("No blocked accounts.")
		}
		for _, a := range blocked {
			fmt.Printf("%d\t%s\t%d failed attempts\n", a.ID, a.Email, a.FailedAttempts)
		}
	}
	return nil
}
