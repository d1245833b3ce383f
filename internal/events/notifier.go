package events

import "context"

// Tipos de mudança publicados por tabela.
const (
	KindInsert = "INSERT"
	KindUpdate = "UPDATE"
	KindDelete = "DELETE"
)

type Event struct {
	Table   string `json:"table"`
	Kind    string `json:"kind"`
	Payload any    `json:"payload,omitempty"`
}

// Notifier é o canal de tempo real do painel: o servidor publica mudanças e
// os consumidores apenas refazem a leitura quando notificados. Entrega é
// no máximo uma vez, sem ordem garantida.
type Notifier interface {
	Publish(ctx context.Context, ev Event) error
	OnChange(table, kind string, handler func(payload []byte)) error
	Close() error
}

// NopNotifier é usado quando não há Redis configurado (dev e testes).
type NopNotifier struct{}

func (NopNotifier) Publish(ctx context.Context, ev Event) error { return nil }

func (NopNotifier) OnChange(table, kind string, handler func(payload []byte)) error {
	return nil
}

func (NopNotifier) Close() error { return nil }
