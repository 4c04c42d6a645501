package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AkhilKonduru1/Eventure/internal/config"
	"github.com/AkhilKonduru1/Eventure/internal/middleware"
	"github.com/AkhilKonduru1/Eventure/internal/session"
	"github.com/AkhilKonduru1/Eventure/internal/store"
	"github.com/AkhilKonduru1/Eventure/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler serves signup/login/logout and the current-user lookup.
type AuthHandler struct {
	Users      *store.UserStore
	Secret     string
	CookieName string
	TokenTTL   time.Duration
}

func NewAuthHandler(users *store.UserStore, cfg config.SessionConfig) *AuthHandler {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = session.DefaultCookieName
	}
	ttlHours := cfg.ExpireHours
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Users:      users,
		Secret:     cfg.Secret,
		CookieName: cookieName,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
	}
}

// setSessionCookie binds a signed session token to the client.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(h.CookieName, token, int(h.TokenTTL.Seconds()), "/", "", false, true)
}

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Location == "" {
		util.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := h.Users.Create(req.Name, req.Email, req.Password, req.Location)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			util.Error(c, http.StatusBadRequest, "Email already registered")
			return
		}
		util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Signup failed: %v", err))
		return
	}

	token, err := session.Issue(h.Secret, user, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Signup failed: %v", err))
		return
	}
	h.setSessionCookie(c, token)

	util.Success(c, util.Response{
		"success": true,
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"location": user.Location,
		},
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}
	if req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Login failed: %v", err))
		}
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := session.Issue(h.Secret, user, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Login failed: %v", err))
		return
	}
	h.setSessionCookie(c, token)

	util.Success(c, util.Response{
		"success": true,
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"location": user.Location,
		},
	})
}

// Logout clears the session cookie. It succeeds whether or not the caller
// was authenticated.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.CookieName, "", -1, "/", "", false, true)
	util.Success(c, util.Response{"success": true})
}

// Me returns the authenticated user's stored record.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.Users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// session outlived the row
			util.Error(c, http.StatusNotFound, "User not found")
		} else {
			util.Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to get user: %v", err))
		}
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"location":   user.Location,
			"created_at": user.CreatedAt,
		},
	})
}
