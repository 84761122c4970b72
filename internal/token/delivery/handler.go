package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recoverylink-backend/internal/token/usecase"
	"recoverylink-backend/pkg/apperror"
)

// TokenHandler handles calendar authorization HTTP requests
type TokenHandler struct {
	tokenUsecase usecase.TokenUsecase
}

// NewTokenHandler creates a new TokenHandler
func NewTokenHandler(tokenUsecase usecase.TokenUsecase) *TokenHandler {
	return &TokenHandler{tokenUsecase: tokenUsecase}
}

// StoreTokenRequest accepts either an authorization code to exchange or a
// raw token the frontend already obtained.
type StoreTokenRequest struct {
	Code        string `json:"code"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// GetAuthURL returns the provider consent URL
// GET /api/calendar/auth-url
func (h *TokenHandler) GetAuthURL(c *gin.Context) {
	patientID := c.GetString("patientID")
	c.JSON(http.StatusOK, gin.H{"auth_url": h.tokenUsecase.AuthURL(patientID)})
}

// StoreToken stores a calendar credential for the patient
// POST /api/calendar/token
func (h *TokenHandler) StoreToken(c *gin.Context) {
	patientID := c.GetString("patientID")

	var req StoreTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Code != "" {
		token, err := h.tokenUsecase.ExchangeCode(c.Request.Context(), patientID, req.Code)
		if err != nil {
			c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, token)
		return
	}

	token, err := h.tokenUsecase.Store(patientID, req.AccessToken, req.ExpiresIn)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, token)
}

// GetTokenStatus reports whether a usable credential exists, without
// revealing the secret
// GET /api/calendar/token
func (h *TokenHandler) GetTokenStatus(c *gin.Context) {
	patientID := c.GetString("patientID")

	connected, expiresAt, err := h.tokenUsecase.Status(patientID)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":  connected,
		"expires_at": expiresAt,
	})
}

// RevokeToken deletes the stored credential
// DELETE /api/calendar/token
func (h *TokenHandler) RevokeToken(c *gin.Context) {
	patientID := c.GetString("patientID")

	if err := h.tokenUsecase.Revoke(patientID); err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Calendar disconnected"})
}
