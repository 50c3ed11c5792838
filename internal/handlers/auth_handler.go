package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
)

type AuthHandler struct {
	state  *state.Manager
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(st *state.Manager, cfg *config.Config, au *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{state: st, config: cfg, audit: au}
}

// --------- Requests ---------

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=4"`
}

// --------- Handlers ---------

// Login é o portão de senha do site: comparação de igualdade em texto
// plano contra a senha guardada no snapshot (semântica herdada e
// mantida de propósito). Acertou, recebe um token de sessão.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !h.state.CheckPassword(req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Senha incorreta.")
		return
	}

	token, err := h.generateToken()
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar o token.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:  "admin",
		Action: "admin_login",
		Entity: "session",
	})

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !h.state.CheckPassword(req.CurrentPassword) {
		httperr.Unauthorized(c, "invalid_credentials", "Senha atual incorreta.")
		return
	}

	if err := h.state.SetAdminPassword(c.Request.Context(), req.NewPassword); err != nil {
		httperr.Internal(c, "failed_to_save_password", "Erro ao salvar a senha.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:  "admin",
		Action: "password_changed",
		Entity: "settings",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
