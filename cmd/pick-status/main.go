package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dimitrije/handlepick/internal/config"
	"github.com/dimitrije/handlepick/internal/database"
	"github.com/dimitrije/handlepick/internal/models"
	"github.com/dimitrije/handlepick/internal/services"
)

func main() {
	pickedOnly := flag.Bool("picked", false, "only list picked users")
	pendingOnly := flag.Bool("pending", false, "only list users not yet picked")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: pick-status [-picked | -pending]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *pickedOnly && *pendingOnly {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()

	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBConnectAttempts)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	notPicked, picked, err := services.NewPickService(db).List(ctx)
	if err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}

	fmt.Printf("%d not picked (%d eligible), %d picked\n", len(notPicked), countEligible(notPicked), len(picked))

	if !*pickedOnly {
		printUsers("Not picked", notPicked)
	}
	if !*pendingOnly {
		printUsers("Picked", picked)
	}
}

func printUsers(title string, users []models.User) {
	fmt.Printf("\n%s:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tHANDLE\tPICKED AT\tCREATED AT")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Email, deref(u.YoutubeHandle), formatTime(u.PickedAt), u.CreatedAt.Format(time.RFC3339))
	}
	w.Flush()
}

// countEligible counts users a commit could still draw; an empty handle is
// listed but never picked.
func countEligible(users []models.User) int {
	n := 0
	for i := range users {
		if users[i].Eligible() {
			n++
		}
	}
	return n
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}
