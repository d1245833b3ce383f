package booking

import (
	"github.com/shopspring/decimal"

	"github.com/goldblade/barbershop-api/internal/models"
)

// TotalPrice soma os preços dos serviços selecionados com aritmética
// decimal, arredondando para duas casas. A ordem da seleção não importa.
func TotalPrice(catalog []models.Service, selectedIDs []string) decimal.Decimal {
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	total := decimal.Zero
	for _, s := range catalog {
		if selected[s.ID.String()] {
			total = total.Add(s.Price)
		}
	}
	return total.Round(2)
}
