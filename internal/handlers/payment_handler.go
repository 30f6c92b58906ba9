package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"toy-marketplace/internal/logger"
	"toy-marketplace/internal/payments"
)

type PaymentHandler struct {
	store   PaymentStore
	intents payments.IntentCreator
	log     *logger.Logger
}

func NewPaymentHandler(store PaymentStore, intents payments.IntentCreator, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{store: store, intents: intents, log: log}
}

type createIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreateIntent asks the processor for a card payment intent in USD. The
// price arrives in major units and is converted to minor units here.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	secret, err := h.intents.CreateIntent(c.Request.Context(), payments.MinorUnits(req.Price), "usd")
	if err != nil {
		h.log.Error().Err(err).Msg("payment intent creation failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "payment intent creation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// RecordPayment appends a completed charge to the payments collection. The
// body is stored exactly as sent: payments are never read back through this
// API, so client fields pass through opaquely.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payment bson.M
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.store.Create(c.Request.Context(), payment)
	if err != nil {
		writeRepoError(c, h.log, err, "payments.record")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}
