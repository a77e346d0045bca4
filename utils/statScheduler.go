package utils

import (
	"log"
	"time"

	"siktp/database"
	"siktp/repository"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[STAT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// SnapshotRegistryStats computes registry-wide counts and stores one snapshot
// row. Exposed so the admin stats endpoint can run it on demand when no
// snapshot exists yet.
func SnapshotRegistryStats() {
	repo := repository.NewPersonRepository(database.Database.Db)

	stat, err := repo.Stats()
	if err != nil {
		logScheduler("Error computing registry stats: " + err.Error())
		return
	}

	if err := database.Database.Db.Create(stat).Error; err != nil {
		logScheduler("Error saving registry stat snapshot: " + err.Error())
		return
	}

	logScheduler("Registry stat snapshot saved")
}

// StartStatScheduler runs the nightly snapshot job at midnight.
func StartStatScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 0 * * *", SnapshotRegistryStats); err != nil {
		log.Fatalf("Failed to register stat scheduler: %v", err)
	}

	c.Start()
	logScheduler("Scheduler started")

	return c
}
