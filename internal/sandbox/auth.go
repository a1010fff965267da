package sandbox

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Surname  string `json:"surname" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	s.store.mu.RLock()
	acct, found := s.store.admins[strings.ToLower(strings.TrimSpace(req.Email))]
	s.store.mu.RUnlock()
	if !found || bcrypt.CompareHashAndPassword(acct.hash, []byte(req.Password)) != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	s.issue(c, http.StatusOK, acct.admin, "Login successful")
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid registration details")
		return
	}

	s.store.mu.RLock()
	_, exists := s.store.admins[strings.ToLower(req.Email)]
	s.store.mu.RUnlock()
	if exists {
		fail(c, http.StatusConflict, "Admin with this email already exists")
		return
	}

	admin := models.Admin{Name: req.Name, Surname: req.Surname, Email: req.Email, Role: "admin"}
	if err := s.AddAdmin(admin, req.Password); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create admin")
		return
	}
	s.store.mu.RLock()
	admin = s.store.admins[strings.ToLower(req.Email)].admin
	s.store.mu.RUnlock()
	s.issue(c, http.StatusCreated, admin, "Admin registered successfully")
}

func (s *Server) issue(c *gin.Context, status int, admin models.Admin, message string) {
	token, err := s.IssueToken(admin.Email, tokenTTL)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	c.JSON(status, gin.H{"success": true, "message": message, "token": token, "admin": admin})
}

func (s *Server) verify(c *gin.Context) {
	email := c.GetString("email")
	s.store.mu.RLock()
	acct, found := s.store.admins[strings.ToLower(email)]
	s.store.mu.RUnlock()
	if !found {
		fail(c, http.StatusUnauthorized, "Admin not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "admin": acct.admin})
}
