package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "time/tzdata"

	"github.com/gin-gonic/gin"

	dbpkg "github.com/gally74/gaa-match-scheduler/internal/db"
	"github.com/gally74/gaa-match-scheduler/internal/matches"
	"github.com/gally74/gaa-match-scheduler/internal/report"
)

func main() {
	logger := log.New(os.Stderr, "matches: ", log.LstdFlags)

	var slot matches.Persister
	switch env("STORE", "sqlite") {
	case "memory":
		slot = &dbpkg.MemorySlot{}
	default:
		dsn := env("DB_PATH", "matches.db")
		gdb, err := dbpkg.Open(dsn)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer dbpkg.Close(gdb)
		slot = dbpkg.NewSlotStore(gdb, env("STORE_KEY", "gaaMatches"))
	}

	store := matches.NewStore(context.Background(), slot, matches.WithLogger(logger))
	log.Printf("Loaded %d matches", len(store.List()))

	// HTTP
	r := gin.Default()
	// Default trusts only loopback addresses; override via TRUSTED_PROXIES env (comma-separated CIDRs/IPs)
	tp := strings.Split(env("TRUSTED_PROXIES", "127.0.0.1,::1"), ",")
	for i := range tp {
		tp[i] = strings.TrimSpace(tp[i])
	}
	if err := r.SetTrustedProxies(tp); err != nil {
		log.Fatalf("trusted proxies: %v", err)
	}

	matches.RegisterRoutes(r, store)
	report.RegisterRoutes(r, store)

	addr := env("ADDR", ":8080")
	log.Printf("Listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
