package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toy-marketplace/internal/logger"
	"toy-marketplace/internal/models"
)

// CollectionHandler serves the "my collection" wishlist.
type CollectionHandler struct {
	store CollectionStore
	log   *logger.Logger
}

func NewCollectionHandler(store CollectionStore, log *logger.Logger) *CollectionHandler {
	return &CollectionHandler{store: store, log: log}
}

func (h *CollectionHandler) ListMyCollection(c *gin.Context) {
	buyerEmail := c.Query("buyerEmail")
	if buyerEmail == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "buyerEmail query parameter is required"})
		return
	}

	items, err := h.store.ListByBuyer(c.Request.Context(), buyerEmail)
	if err != nil {
		writeRepoError(c, h.log, err, "collection.list")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CollectionHandler) SortMyCollection(c *gin.Context) {
	buyerEmail := c.Query("buyerEmail")
	if buyerEmail == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "buyerEmail query parameter is required"})
		return
	}

	ascending, ok := parseSortOrder(c.Query("order"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "order must be Ascending or Descending"})
		return
	}

	items, err := h.store.ListByBuyerSorted(c.Request.Context(), buyerEmail, ascending)
	if err != nil {
		writeRepoError(c, h.log, err, "collection.sort")
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddToCollection inserts the entry or, when the toy is already collected,
// bumps its quantity by one. The submitted quantity only matters on first
// insert.
func (h *CollectionHandler) AddToCollection(c *gin.Context) {
	var item models.CollectionItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.store.AddOrIncrement(c.Request.Context(), item)
	if err != nil {
		writeRepoError(c, h.log, err, "collection.add")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
		"upsertedId":    res.UpsertedID,
	})
}
