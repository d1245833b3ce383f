package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/goldblade/barbershop-api/internal/models"
)

// Checkout cria preferências de pagamento do Mercado Pago para os planos de
// assinatura. A cobrança recorrente em si acontece do lado do Mercado Pago.
type Checkout struct {
	prefs preference.Client
}

func New(accessToken string) (*Checkout, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payments: mercadopago config: %w", err)
	}

	return &Checkout{prefs: preference.NewClient(cfg)}, nil
}

// SubscriptionLink devolve o init point do checkout para o plano.
func (c *Checkout) SubscriptionLink(ctx context.Context, sub *models.Subscription) (string, error) {
	price, _ := sub.Price.Round(2).Float64()

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       sub.Name,
				Description: sub.Description,
				Quantity:    1,
				UnitPrice:   price,
				CurrencyID:  "BRL",
			},
		},
		ExternalReference: sub.ID.String(),
	}

	resource, err := c.prefs.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("payments: create preference: %w", err)
	}

	return resource.InitPoint, nil
}
