package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
	"github.com/goldblade/barbershop-api/internal/payments"
	usecase "github.com/goldblade/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler atende a página do cliente: conteúdo do site, grade de
// horários e criação de agendamento. Nenhuma rota aqui exige login.
type PublicHandler struct {
	db           *gorm.DB
	availability *usecase.GetAvailabilityUseCase
	createBook   *usecase.CreateBookingUseCase
	checkout     *payments.Checkout
}

func NewPublicHandler(
	db *gorm.DB,
	availability *usecase.GetAvailabilityUseCase,
	createBook *usecase.CreateBookingUseCase,
	checkout *payments.Checkout,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		createBook:   createBook,
		checkout:     checkout,
	}
}

// ======================================================
// SITE (conteúdo agregado da página)
// ======================================================

type siteResponse struct {
	Settings      publicSettings        `json:"settings"`
	Barbers       []models.Barber       `json:"barbers"`
	Services      []models.Service      `json:"services"`
	Gallery       []models.GalleryItem  `json:"gallery"`
	Reviews       []models.Review       `json:"reviews"`
	Subscriptions []models.Subscription `json:"subscriptions"`
}

// publicSettings expõe só o que a página precisa; configuração de lembrete
// e afins ficam de fora.
type publicSettings struct {
	BusinessName string  `json:"business_name"`
	Phone        string  `json:"phone"`
	WhatsApp     string  `json:"whatsapp"`
	Address      string  `json:"address"`
	Instagram    string  `json:"instagram"`
	LogoURL      string  `json:"logo_url"`
	OpeningHour  string  `json:"opening_hour"`
	ClosingHour  string  `json:"closing_hour"`
	WorkingDays  string  `json:"working_days"`
	GPSLat       float64 `json:"gps_lat"`
	GPSLng       float64 `json:"gps_lng"`
}

func (h *PublicHandler) GetSite(c *gin.Context) {
	var settings models.Settings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.Internal(c, "settings_not_found", "Configuração não encontrada.")
		return
	}

	var resp siteResponse
	resp.Settings = publicSettings{
		BusinessName: settings.BusinessName,
		Phone:        settings.Phone,
		WhatsApp:     settings.WhatsApp,
		Address:      settings.Address,
		Instagram:    settings.Instagram,
		LogoURL:      settings.LogoURL,
		OpeningHour:  settings.OpeningHour,
		ClosingHour:  settings.ClosingHour,
		WorkingDays:  settings.WorkingDays,
		GPSLat:       settings.GPSLat,
		GPSLng:       settings.GPSLng,
	}

	h.db.Where("is_active = true").Order("display_order ASC").Find(&resp.Barbers)
	h.db.Where("is_active = true").Order("display_order ASC").Find(&resp.Services)
	h.db.Where("is_active = true").Order("display_order ASC").Find(&resp.Gallery)
	h.db.Where("is_visible = true").Order("created_at DESC").Limit(20).Find(&resp.Reviews)
	h.db.Where("is_active = true").Order("price ASC").Find(&resp.Subscriptions)

	httpresp.OK(c, resp)
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if !isValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), usecase.GetAvailabilityInput{
		Date:     date,
		BarberID: c.Query("barber_id"),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// CRIAÇÃO DE AGENDAMENTO
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var input usecase.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !isValidDate(input.Date) || !isValidSlot(input.Time) {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	out, err := h.createBook.Execute(c.Request.Context(), input)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(201, out)
}

// ======================================================
// REVIEWS (envio público, entra invisível)
// ======================================================

type createReviewRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment"`
}

func (h *PublicHandler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, "invalid_rating", "Avaliação deve ser de 1 a 5.")
		return
	}

	review := models.Review{
		ClientName: req.ClientName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Source:     "site",
		IsVisible:  false,
	}
	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "review_create_failed", "Erro ao salvar avaliação.")
		return
	}

	c.JSON(201, review)
}

// ======================================================
// CHECKOUT DE ASSINATURA
// ======================================================

func (h *PublicHandler) SubscriptionCheckout(c *gin.Context) {
	if h.checkout == nil {
		httperr.Write(c, 503, "checkout_unavailable", "Pagamento indisponível no momento.")
		return
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var sub models.Subscription
	if err := h.db.Where("id = ? AND is_active = true", id).First(&sub).Error; err != nil {
		httperr.NotFound(c, "subscription_not_found", "Plano não encontrado.")
		return
	}

	link, err := h.checkout.SubscriptionLink(c.Request.Context(), &sub)
	if err != nil {
		httperr.Internal(c, "checkout_failed", "Erro ao iniciar o pagamento.")
		return
	}

	httpresp.OK(c, gin.H{"checkout_url": link})
}

// ======================================================
// ERROS DE NEGÓCIO → HTTP
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_client_data"):
		httperr.BadRequest(c, "invalid_client_data", "Nome ou telefone inválido.")
	case httperr.IsBusiness(err, "no_services_selected"):
		httperr.BadRequest(c, "no_services_selected", "Selecione ao menos um serviço.")
	case httperr.IsBusiness(err, "barber_required"):
		httperr.BadRequest(c, "barber_required", "Escolha um barbeiro.")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "time_unavailable"):
		httperr.Conflict(c, "time_unavailable", "Horário indisponível.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Horário acabou de ser ocupado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "invalid_state", "Transição de status inválida.")
	default:
		httperr.Internal(c, "booking_error", "Erro ao processar o agendamento.")
	}
}
