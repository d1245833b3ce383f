package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/goldblade/barbershop-api/internal/domain/booking"
	"github.com/goldblade/barbershop-api/internal/timezone"
)

// O wa.me exige código do país e a base guarda só DDD + número.
const countryCode = "55"

type ReminderCandidate struct {
	ClientID     uuid.UUID `json:"client_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	DaysSince    int       `json:"days_since"`
	Message      string    `json:"message"`
	WhatsAppLink string    `json:"whatsapp_link"`
}

// RemindClientsUseCase lista quem está há tempo demais sem visitar, com o
// link pronto para o admin disparar manualmente. Nada é enviado pelo
// servidor.
type RemindClientsUseCase struct {
	repo domain.Repository
}

func NewRemindClientsUseCase(repo domain.Repository) *RemindClientsUseCase {
	return &RemindClientsUseCase{repo: repo}
}

func (uc *RemindClientsUseCase) Execute(ctx context.Context) ([]ReminderCandidate, error) {
	settings, err := uc.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := uc.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	template := settings.ReminderMessage
	if template == "" {
		template = domain.DefaultReminderMessage
	}

	now := timezone.Now()
	candidates := []ReminderCandidate{}
	for _, c := range clients {
		if !domain.NeedsReminder(c, *settings, now) {
			continue
		}

		message := domain.PersonalizeReminder(template, c.Name)
		candidates = append(candidates, ReminderCandidate{
			ClientID:     c.ID,
			Name:         c.Name,
			Phone:        c.Phone,
			DaysSince:    int(now.Sub(*c.LastVisitAt).Hours() / 24),
			Message:      message,
			WhatsAppLink: domain.WhatsAppLink(countryCode+c.Phone, message),
		})
	}
	return candidates, nil
}
