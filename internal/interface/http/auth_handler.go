package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/application"
)

// AuthHandler serves /signup and /signin with the legacy wire contract:
// signup failures are 200s carrying a body-level success flag, and the
// signin token comes back prefixed with the "JWT " scheme. Do not normalize
// these; existing clients depend on them.
type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "msg": "Please include both username and password to signup."})
		return
	}
	err := h.Svc.Signup(c.Request.Context(), req.Name, req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Successfully created new user."})
	case errors.Is(err, application.ErrMissingCredentials):
		c.JSON(http.StatusOK, gin.H{"success": false, "msg": "Please include both username and password to signup."})
	case errors.Is(err, application.ErrDuplicateUsername):
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "A user with that username already exists."})
	default:
		// Other store failures are passed through in the body, still a 200.
		if h.Logger != nil {
			h.Logger.WithError(err).Error("signup failed")
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
	}
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "Authentication failed."})
		return
	}
	token, err := h.Svc.Signin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrAuthenticationFailed) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "Authentication failed."})
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("signin failed")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": "JWT " + token})
}
