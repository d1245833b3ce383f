package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/goldblade/barbershop-api/internal/domain/booking"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
	usecase "github.com/goldblade/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	db        *gorm.DB
	reminders *usecase.RemindClientsUseCase
}

func NewClientHandler(db *gorm.DB, reminders *usecase.RemindClientsUseCase) *ClientHandler {
	return &ClientHandler{db: db, reminders: reminders}
}

// ======================================================
// LISTAGEM E BUSCA
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := h.db.Order("last_visit_at DESC NULLS LAST")

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR phone LIKE ?", like, "%"+domain.NormalizePhone(q)+"%")
	}

	var clients []models.Client
	if err := query.Find(&clients).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// HISTÓRICO (agendamentos pelo telefone do cliente)
// ======================================================

func (h *ClientHandler) History(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var appointments []models.Appointment
	if err := h.db.
		Preload("Services").
		Preload("Barber").
		Where("client_phone = ?", client.Phone).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error; err != nil {
		httperr.Internal(c, "history_failed", "Erro ao carregar o histórico.")
		return
	}

	httpresp.OK(c, gin.H{
		"client":       client,
		"appointments": appointments,
	})
}

// ======================================================
// LEMBRETES
// ======================================================

// Reminders lista os clientes devidos de lembrete com o link wa.me pronto.
// O disparo é manual, feito pelo admin.
func (h *ClientHandler) Reminders(c *gin.Context) {
	candidates, err := h.reminders.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "reminders_failed", "Erro ao calcular lembretes.")
		return
	}
	httpresp.List(c, candidates)
}
