// Command promote changes a user's role, and optionally the superuser flag,
// by username. It is used to bootstrap the first administrator.
//
// Usage:
//
//	promote --username=alice [--role=admin] [--superuser=true]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/yamdb-backend/internal/adapter/postgres"
	reviewrepo "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres/review"
	titlerepo "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres/title"
	userrepo "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/yamdb-backend/internal/app"
	"github.com/heartmarshall/yamdb-backend/internal/config"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/internal/metrics"
	"github.com/heartmarshall/yamdb-backend/internal/service/rating"
	"github.com/heartmarshall/yamdb-backend/internal/service/user"
)

func main() {
	username := flag.String("username", "", "username of the user to promote")
	role := flag.String("role", string(domain.UserRoleAdmin), "role to assign: user, moderator or admin")
	superuser := flag.Bool("superuser", false, "set the superuser flag")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --username=alice [--role=admin] [--superuser=true]")
		os.Exit(1)
	}

	var superuserFlag *bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "superuser" {
			superuserFlag = superuser
		}
	})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	aggregator := rating.NewAggregator(logger, reviewrepo.New(pool), titlerepo.New(pool), metrics.NewNop())
	svc := user.NewService(logger, userrepo.New(pool), aggregator, postgres.NewTxManager(pool), user.Options{})

	updated, err := svc.Promote(ctx, *username, domain.UserRole(*role), superuserFlag)
	if err != nil {
		logger.Error("promote failed",
			slog.String("error", err.Error()),
			slog.String("username", *username),
		)
		os.Exit(1)
	}

	fmt.Printf("User %q now has role %q (superuser: %t).\n", updated.Username, updated.Role, updated.IsSuperuser)
}
