package worker

import (
	"context"
	"log"
	"time"

	"truleadai/models"
	"truleadai/store"
)

// ActivityWorker periodically sweeps every known account and trims its
// recent-activity feed to the retention cap. Writes already trim on the hot
// path; the sweep catches feeds written by older builds or external tools.
type ActivityWorker struct {
	Store  store.Store
	Logger *log.Logger
	Every  time.Duration
}

func NewActivityWorker(kv store.Store, logger *log.Logger, every time.Duration) *ActivityWorker {
	return &ActivityWorker{
		Store:  kv,
		Logger: logger,
		Every:  every,
	}
}

func (aw *ActivityWorker) Start(ctx context.Context) {
	// Initial delay to let the server start up, abandoned on shutdown
	startup := time.NewTimer(10 * time.Second)
	defer startup.Stop()
	select {
	case <-ctx.Done():
		return
	case <-startup.C:
	}

	aw.Logger.Println("Activity worker started")

	ticker := time.NewTicker(aw.Every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			aw.Logger.Println("Activity worker shutting down...")
			return
		case <-ticker.C:
			aw.trimAllFeeds()
		}
	}
}

func (aw *ActivityWorker) trimAllFeeds() {
	ids, err := store.KnownUserIDs(aw.Store)
	if err != nil {
		aw.Logger.Printf("Error fetching user index: %v", err)
		return
	}

	for _, id := range ids {
		if err := aw.trimFeed(id); err != nil {
			aw.Logger.Printf("Error trimming activity feed for %s: %v", id, err)
		}
	}
}

func (aw *ActivityWorker) trimFeed(userID string) error {
	activities, err := store.LoadActivities(aw.Store, userID)
	if err != nil {
		return err
	}
	if len(activities) <= models.MaxActivityEntries {
		return nil
	}

	aw.Logger.Printf("Trimming activity feed for %s (%d entries)", userID, len(activities))
	return store.SaveActivities(aw.Store, userID, activities[:models.MaxActivityEntries])
}
