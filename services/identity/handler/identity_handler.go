package handler

import (
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/services/identity/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_identity_handler.go -package=handler auction-house/services/identity/handler IdentityServiceInterface,TokenIssuer

type IdentityServiceInterface interface {
	Login(email, password string) (models.User, error)
	Register(name, email, password string) (models.User, error)
	Logout()
	Current() (models.User, bool)
}

// TokenIssuer signs session tokens for a freshly signed-in user
type TokenIssuer interface {
	Issue(user models.User) (string, error)
}

type IdentityHandler struct {
	service IdentityServiceInterface
	tokens  TokenIssuer
}

func NewIdentityHandler(service IdentityServiceInterface, tokens TokenIssuer) *IdentityHandler {
	return &IdentityHandler{service: service, tokens: tokens}
}

// LoginHandler handles POST /auth/login
func (h *IdentityHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, req.Email)
		return
	}

	h.respondWithToken(c, "LoginHandler", user, http.StatusOK, "login successful")
}

// RegisterHandler handles POST /auth/register
func (h *IdentityHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, req.Email)
		return
	}

	h.respondWithToken(c, "RegisterHandler", user, http.StatusCreated, "registration successful")
}

func (h *IdentityHandler) respondWithToken(c *gin.Context, handlerName string, user models.User, status int, message string) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		helpers.RespondError(c, handlerName, err, user.Email)
		return
	}

	utils.JSONResponse(c, status, helpers.AuthResponse{User: user, Token: token}, message)
	utils.Info(handlerName+": "+message, map[string]any{"user_id": user.ID})
}

// LogoutHandler handles POST /auth/logout. It always succeeds.
func (h *IdentityHandler) LogoutHandler(c *gin.Context) {
	h.service.Logout()
	utils.JSONResponse(c, http.StatusOK, nil, "logged out")
	utils.Info("LogoutHandler: logged out", nil)
}

// MeHandler handles GET /auth/me
func (h *IdentityHandler) MeHandler(c *gin.Context) {
	user, ok := h.service.Current()
	if !ok {
		helpers.RespondError(c, "MeHandler", auctionerrors.ErrUnauthenticated, "")
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "identity retrieved successfully")
}
