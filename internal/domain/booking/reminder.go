package booking

import (
	"time"

	"github.com/goldblade/barbershop-api/internal/models"
)

// NeedsReminder decide se o cliente está há tempo demais sem visitar.
// Nunca é devido quando os lembretes estão desativados ou o cliente não tem
// visita registrada. O limite é inclusivo: exatamente reminder_days dias
// sem visita já conta.
func NeedsReminder(client models.Client, settings models.Settings, now time.Time) bool {
	if !settings.ReminderEnabled || client.LastVisitAt == nil {
		return false
	}

	threshold := settings.ReminderDays
	if threshold <= 0 {
		threshold = 15
	}

	days := int(now.Sub(*client.LastVisitAt).Hours() / 24)
	return days >= threshold
}
