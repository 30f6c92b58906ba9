package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toy-marketplace/internal/logger"
	"toy-marketplace/internal/models"
)

type UserHandler struct {
	store UserStore
	log   *logger.Logger
}

func NewUserHandler(store UserStore, log *logger.Logger) *UserHandler {
	return &UserHandler{store: store, log: log}
}

// GetUser looks an account up by email.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.store.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeRepoError(c, h.log, err, "users.get")
		return
	}
	c.JSON(http.StatusOK, user)
}

// CheckOwner reports whether the account's role is exactly "Owner". An
// unknown email is a normal false, never an error.
func (h *UserHandler) CheckOwner(c *gin.Context) {
	owner, err := h.store.IsOwner(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeRepoError(c, h.log, err, "users.checkOwner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"owner": owner})
}

// CreateUser records a signup. The store does not enforce email
// uniqueness; the client signs each account up once.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.store.Create(c.Request.Context(), &user)
	if err != nil {
		writeRepoError(c, h.log, err, "users.create")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}
