package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rowandarke/pillbox/internal/config"
	"github.com/rowandarke/pillbox/internal/database"
	"github.com/rowandarke/pillbox/internal/logging"
	"github.com/rowandarke/pillbox/internal/meds"
	"github.com/rowandarke/pillbox/internal/store"
)

func main() {
	cfg := config.Load()

	today := time.Now().Format("2006-01-02")
	weekOut := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	var in meds.FormInput
	dbPath := flag.String("db", cfg.DBPath, "path to the calendar database")
	owner := flag.Int64("owner", 0, "owner user id for the created events")
	flag.StringVar(&in.Name, "name", "", "medication name")
	flag.StringVar(&in.First, "first", "", "time of a dose already taken today (HH:MM)")
	flag.StringVar(&in.Start, "start", today, "first reminder date (YYYY-MM-DD)")
	flag.StringVar(&in.End, "end", weekOut, "last reminder date (YYYY-MM-DD)")
	flag.StringVar(&in.Amount, "amount", "1", "reminders per day")
	flag.StringVar(&in.Early, "early", "08:00", "earliest reminder time (HH:MM)")
	flag.StringVar(&in.Late, "late", "22:00", "latest reminder time (HH:MM)")
	flag.StringVar(&in.Min, "min", "00:01", "minimal interval between reminders (HH:MM)")
	flag.StringVar(&in.Max, "max", "23:59", "maximal interval between reminders (HH:MM)")
	flag.StringVar(&in.Note, "note", "", "note to attach to each reminder")
	flag.Parse()

	logger := logging.Setup(cfg.LogLevel)

	if *owner == 0 {
		fmt.Fprintln(os.Stderr, "the -owner flag is required")
		flag.Usage()
		os.Exit(2)
	}

	form, err := meds.ParseForm(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid form: %v\n", err)
		os.Exit(2)
	}

	if errs := meds.ValidateForm(form); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}

	db, err := database.Open(*dbPath)
	if err != nil {
		logger.Error("failed to open database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	events, err := meds.CreateEvents(store.NewEventStore(db), *owner, form)
	if err != nil {
		logger.Error("failed to create reminder events", "created", len(events), "error", err)
		os.Exit(1)
	}

	if len(events) == 0 {
		logger.Warn("no reminder events generated for the given form")
		return
	}

	logger.Info("reminder events created",
		"count", len(events),
		"group_id", events[0].GroupID,
		"first", events[0].StartTime.Format(time.RFC3339),
		"last", events[len(events)-1].StartTime.Format(time.RFC3339),
	)
}
