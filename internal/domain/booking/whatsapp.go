package booking

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var weekdaysPtBR = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

// ConfirmationMessage é o resumo que o cliente envia para o WhatsApp da
// barbearia ao finalizar o agendamento.
type ConfirmationMessage struct {
	ClientName   string
	ClientPhone  string
	BarberName   string // vazio = "qualquer barbeiro"
	Date         time.Time
	Time         string
	ServiceNames []string
	Total        decimal.Decimal
}

func (m ConfirmationMessage) Render() string {
	barber := m.BarberName
	if barber == "" {
		barber = "Qualquer barbeiro disponível"
	}

	date := fmt.Sprintf("%s (%s)", m.Date.Format("02/01/2006"), weekdaysPtBR[m.Date.Weekday()])

	var b strings.Builder
	fmt.Fprintf(&b, "Olá, meu nome é %s.\n", m.ClientName)
	b.WriteString("Gostaria de agendar:\n\n")
	fmt.Fprintf(&b, "👤 Barbeiro: %s\n", barber)
	fmt.Fprintf(&b, "📅 Data: %s\n", date)
	fmt.Fprintf(&b, "⏰ Horário: %s\n", m.Time)
	fmt.Fprintf(&b, "✂️ Serviços: %s\n", strings.Join(m.ServiceNames, ", "))
	fmt.Fprintf(&b, "💰 Total: %s\n", FormatPrice(m.Total))
	fmt.Fprintf(&b, "📞 Telefone: %s\n\n", m.ClientPhone)
	b.WriteString("Está disponível?")
	return b.String()
}

// WhatsAppLink monta o deep link wa.me. Não envia nada: o cliente abre o
// link e decide mandar a mensagem.
func WhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone), url.QueryEscape(message))
}

// PersonalizeReminder troca o marcador {NOME} pelo primeiro nome do cliente.
func PersonalizeReminder(template, clientName string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(clientName), " ")
	return strings.ReplaceAll(template, "{NOME}", first)
}

// FormatPrice formata em reais com vírgula decimal.
func FormatPrice(v decimal.Decimal) string {
	return "R$ " + strings.Replace(v.StringFixed(2), ".", ",", 1)
}

// DefaultReminderMessage é usado quando nenhum modelo foi configurado.
const DefaultReminderMessage = "Olá {NOME}! ✂️💈 Já faz um tempo desde seu último corte. Que tal agendar novamente?"
