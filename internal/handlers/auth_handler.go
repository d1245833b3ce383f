package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/config"
	"github.com/goldblade/barbershop-api/internal/httperr"
	"github.com/goldblade/barbershop-api/internal/httpresp"
	"github.com/goldblade/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// ======================================================
// LOGIN
// ======================================================

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string   `json:"token"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var user models.User
	err := h.db.
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	var roles []string
	if err := h.db.Model(&models.UserRole{}).
		Where("user_id = ?", user.ID).
		Pluck("role", &roles).Error; err != nil {
		httperr.Internal(c, "role_lookup_failed", "Erro ao carregar permissões.")
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(7 * 24 * time.Hour).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "token_generation_failed", "Erro ao gerar o token.")
		return
	}

	httpresp.OK(c, loginResponse{
		Token: token,
		Name:  user.Name,
		Roles: roles,
	})
}

// ======================================================
// ME
// ======================================================

func (h *AuthHandler) Me(c *gin.Context) {
	id := actorID(c)
	if id == nil {
		httperr.Unauthorized(c, "invalid_token_payload", "Sessão inválida.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", *id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	var roles []string
	h.db.Model(&models.UserRole{}).Where("user_id = ?", user.ID).Pluck("role", &roles)

	httpresp.OK(c, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"roles": roles,
	})
}
