package utils

import (
	"log"
	"palpite/config"
	"palpite/database"
	"palpite/models"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializePurchaseScheduler sets up the stale purchase expiry scheduler
func InitializePurchaseScheduler() {
	log.Println("[PURCHASE-SCHEDULER] Initializing purchase scheduler...")

	c := cron.New()

	// Run hourly to cancel abandoned pending purchases
	c.AddFunc("0 * * * *", func() {
		log.Println("[PURCHASE-SCHEDULER] Running stale purchase check...")
		ExpireStalePurchases()
	})

	c.Start()
	log.Println("[PURCHASE-SCHEDULER] Purchase scheduler started - runs hourly")
}

// ExpireStalePurchases cancels pending purchases older than the configured
// expiry window. Completed purchases are never touched.
func ExpireStalePurchases() {
	db := database.Database.Db
	cutoff := time.Now().Add(-time.Duration(config.AppConfig.PurchaseExpiryHours) * time.Hour)

	result := db.Model(&models.Purchase{}).
		Where("status = ? AND is_deleted = false AND created_at < ?", models.PurchaseStatusPending, cutoff).
		Updates(map[string]interface{}{"status": models.PurchaseStatusCancelled})

	if result.Error != nil {
		log.Printf("[PURCHASE-SCHEDULER] Error expiring purchases: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[PURCHASE-SCHEDULER] Cancelled %d stale pending purchases", result.RowsAffected)
	}
}
