package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the user listing and current-user endpoints.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// GetUsers handles GET /users. The route is Admin-gated by middleware.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"description": "List of Users",
		"value":       ToDTOs(users),
	})
}

// GetSignedInUser handles GET /users/me. Everything comes from the token
// claims the auth middleware stored on the context; no store lookup.
func (h *Handler) GetSignedInUser(c *gin.Context) {
	roles, _ := c.Get("roles")
	roleNames, _ := roles.([]string)

	isAdmin := false
	for _, r := range roleNames {
		if r == "Admin" {
			isAdmin = true
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"firstName": c.GetString("firstName"),
		"lastName":  c.GetString("lastName"),
		"phone":     c.GetString("phoneNumber"),
		"isAdmin":   isAdmin,
	})
}
