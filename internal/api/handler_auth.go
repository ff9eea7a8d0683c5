package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/auth"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/model"
)

type signUpRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Name       string `json:"name" binding:"required"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	Gender     string `json:"gender" binding:"required"`
	Profession string `json:"profession"`
	Age        int    `json:"age"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sessionResponse struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// StudentSignUp registers a student account and opens a session.
func (h *Handler) StudentSignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	user := model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Contact:      req.Contact,
		Address:      req.Address,
		Gender:       req.Gender,
		Profession:   req.Profession,
		Age:          req.Age,
	}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "an account with this email already exists"})
		return
	}

	h.openSession(c, user.ID, auth.RoleStudent)
}

// StudentSignIn authenticates a student by email and password.
func (h *Handler) StudentSignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
		return
	}

	h.openSession(c, user.ID, auth.RoleStudent)
}

// WardenSignUp registers a warden account and opens a session.
func (h *Handler) WardenSignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	warden := model.Warden{
		WardenID:     uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Contact:      req.Contact,
		Address:      req.Address,
		Gender:       req.Gender,
		Profession:   req.Profession,
		Age:          req.Age,
	}
	if err := h.store.CreateWarden(c.Request.Context(), &warden); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "an account with this email already exists"})
		return
	}

	h.openSession(c, warden.WardenID, auth.RoleWarden)
}

// WardenSignIn authenticates a warden by email and password.
func (h *Handler) WardenSignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	warden, err := h.store.GetWardenByEmail(c.Request.Context(), req.Email)
	if err != nil || !auth.CheckPassword(warden.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
		return
	}

	h.openSession(c, warden.WardenID, auth.RoleWarden)
}

// SignOut ends the session. Tokens are stateless, so this is a client-side
// discard; the endpoint exists so callers have a uniform auth surface.
func (h *Handler) SignOut(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (h *Handler) openSession(c *gin.Context, id, role string) {
	token, err := h.auth.Issue(id, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open session"})
		return
	}
	c.JSON(http.StatusOK, sessionResponse{ID: id, Role: role, Token: token})
}
