package notifications

import "github.com/brandpulse/reputation-bot/internal/models"

// NotificationInterface defines the contract for notification services
type NotificationInterface interface {
	SendReport(snapshot *models.ReputationSnapshot) error
	SendCrisisAlert(product string, crisis *models.CrisisSnapshot) error
}
