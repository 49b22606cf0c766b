package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the login and registration endpoints.
type Handler struct {
	service *Service
	tokens  TokenService
}

func NewHandler(service *Service, tokens TokenService) *Handler {
	return &Handler{service: service, tokens: tokens}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signUpRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	PhoneNumber     string `json:"phoneNumber" binding:"required"`
	UserRole        string `json:"userRole" binding:"required"`
}

// Login handles POST /auth/login. Unknown users and wrong passwords produce
// the same response so callers cannot probe which emails are registered.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, roles, err := h.service.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidCredentials.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	token, err := h.tokens.GenerateToken(u, roles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	signup := SignUp{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		UserRole:    req.UserRole,
	}

	if err := h.service.Register(c.Request.Context(), signup); err != nil {
		switch {
		case errors.Is(err, ErrUnknownRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("UserRole '%s' does not exist.", req.UserRole)})
		case errors.Is(err, ErrCreateFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Something went wrong. Failed to create user."})
		case errors.Is(err, ErrRoleAssignFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Couldn't assign user a role"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User has been added successfully."})
}
