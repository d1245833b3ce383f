package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ExpenseHandler struct {
	db *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{db: db}
}

// ======================================================
// CRUD
// ======================================================

type expenseRequest struct {
	Name        string          `json:"name" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date" binding:"required"`
	ExpenseType string          `json:"expense_type"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes"`
}

func (h *ExpenseHandler) List(c *gin.Context) {
	query := h.db.Order("expense_date DESC")

	// Filtro por competência: from/to no formato 2006-01-02.
	if from := c.Query("from"); from != "" {
		if !isValidDate(from) {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		query = query.Where("expense_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		if !isValidDate(to) {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		query = query.Where("expense_date <= ?", to)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar despesas.")
		return
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	httpresp.OK(c, gin.H{
		"data":  expenses,
		"total": total,
		"count": len(expenses),
	})
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if !isValidDate(req.ExpenseDate) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		httperr.BadRequest(c, "invalid_amount", "Valor deve ser maior que zero.")
		return
	}

	expenseType := req.ExpenseType
	if expenseType != "fixed" && expenseType != "variable" {
		expenseType = "variable"
	}

	expense := models.Expense{
		Name:        req.Name,
		Amount:      req.Amount.Round(2),
		ExpenseDate: req.ExpenseDate,
		ExpenseType: expenseType,
		Category:    req.Category,
		Notes:       req.Notes,
	}
	if err := h.db.Create(&expense).Error; err != nil {
		httperr.Internal(c, "create_failed", "Erro ao criar despesa.")
		return
	}

	c.JSON(201, expense)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var expense models.Expense
	if err := h.db.First(&expense, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "expense_not_found", "Despesa não encontrada.")
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if !isValidDate(req.ExpenseDate) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		httperr.BadRequest(c, "invalid_amount", "Valor deve ser maior que zero.")
		return
	}

	expense.Name = req.Name
	expense.Amount = req.Amount.Round(2)
	expense.ExpenseDate = req.ExpenseDate
	expense.Category = req.Category
	expense.Notes = req.Notes
	if req.ExpenseType == "fixed" || req.ExpenseType == "variable" {
		expense.ExpenseType = req.ExpenseType
	}

	if err := h.db.Save(&expense).Error; err != nil {
		httperr.Internal(c, "update_failed", "Erro ao atualizar despesa.")
		return
	}

	httpresp.OK(c, expense)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	result := h.db.Delete(&models.Expense{}, "id = ?", id)
	if result.Error != nil {
		httperr.Internal(c, "delete_failed", "Erro ao remover despesa.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "expense_not_found", "Despesa não encontrada.")
		return
	}

	c.Status(204)
}
