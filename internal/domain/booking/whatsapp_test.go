package booking

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationMessage_Render(t *testing.T) {
	msg := ConfirmationMessage{
		ClientName:   "João Silva",
		ClientPhone:  "61992030064",
		BarberName:   "Carlos",
		Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), // sábado
		Time:         "14:30",
		ServiceNames: []string{"Corte", "Barba"},
		Total:        decimal.RequireFromString("50.00"),
	}.Render()

	assert.Contains(t, msg, "Olá, meu nome é João Silva.")
	assert.Contains(t, msg, "👤 Barbeiro: Carlos")
	assert.Contains(t, msg, "📅 Data: 14/03/2026 (sábado)")
	assert.Contains(t, msg, "⏰ Horário: 14:30")
	assert.Contains(t, msg, "✂️ Serviços: Corte, Barba")
	assert.Contains(t, msg, "💰 Total: R$ 50,00")
	assert.Contains(t, msg, "📞 Telefone: 61992030064")
	assert.True(t, strings.HasSuffix(msg, "Está disponível?"))
}

func TestConfirmationMessage_AnyBarber(t *testing.T) {
	msg := ConfirmationMessage{
		ClientName: "Ana",
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	}.Render()

	assert.Contains(t, msg, "👤 Barbeiro: Qualquer barbeiro disponível")
	assert.Contains(t, msg, "(segunda-feira)")
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("(61) 99203-0064", "Olá, tudo bem?")

	require.True(t, strings.HasPrefix(link, "https://wa.me/61992030064?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Olá, tudo bem?", u.Query().Get("text"))
}

func TestPersonalizeReminder(t *testing.T) {
	out := PersonalizeReminder("Olá {NOME}! Sentimos sua falta.", "João Silva Santos")
	assert.Equal(t, "Olá João! Sentimos sua falta.", out)

	out = PersonalizeReminder("Sem marcador", "João")
	assert.Equal(t, "Sem marcador", out)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R$ 95,00", FormatPrice(decimal.RequireFromString("95")))
	assert.Equal(t, "R$ 35,50", FormatPrice(decimal.RequireFromString("35.5")))
	assert.Equal(t, "R$ 0,00", FormatPrice(decimal.Zero))
}
