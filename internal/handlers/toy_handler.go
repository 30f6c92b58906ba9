package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"toy-marketplace/internal/cache"
	"toy-marketplace/internal/logger"
	"toy-marketplace/internal/models"
)

// Toy cache keys share a prefix so every write can invalidate the detail
// and listing entries in one sweep.
const (
	toyCachePrefix  = "toys:"
	galleryCacheKey = "toys:list"

	toyCacheTTL  = 5 * time.Minute
	listCacheTTL = 2 * time.Minute
)

type ToyHandler struct {
	store ToyStore
	cache *cache.Cache
	log   *logger.Logger
}

func NewToyHandler(store ToyStore, c *cache.Cache, log *logger.Logger) *ToyHandler {
	return &ToyHandler{store: store, cache: c, log: log}
}

// capitalize normalizes a category path parameter to the stored convention:
// first letter upper, remainder lower ("acTION" -> "Action").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// ListToys serves the public gallery, capped at 20 items.
func (h *ToyHandler) ListToys(c *gin.Context) {
	if cached, found := h.cache.Get(galleryCacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	toys, err := h.store.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, h.log, err, "toys.list")
		return
	}

	h.cache.Set(galleryCacheKey, toys, listCacheTTL)
	c.JSON(http.StatusOK, toys)
}

// ListMyToys serves a seller's own listings.
func (h *ToyHandler) ListMyToys(c *gin.Context) {
	sellerEmail := c.Query("sellerEmail")
	if sellerEmail == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "sellerEmail query parameter is required"})
		return
	}

	toys, err := h.store.ListBySeller(c.Request.Context(), sellerEmail)
	if err != nil {
		writeRepoError(c, h.log, err, "toys.listBySeller")
		return
	}
	c.JSON(http.StatusOK, toys)
}

// SortMyToys serves a seller's listings ordered by price.
func (h *ToyHandler) SortMyToys(c *gin.Context) {
	sellerEmail := c.Query("sellerEmail")
	if sellerEmail == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "sellerEmail query parameter is required"})
		return
	}

	ascending, ok := parseSortOrder(c.Query("sortOrder"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "sortOrder must be Ascending or Descending"})
		return
	}

	toys, err := h.store.ListBySellerSorted(c.Request.Context(), sellerEmail, ascending)
	if err != nil {
		writeRepoError(c, h.log, err, "toys.sortBySeller")
		return
	}
	c.JSON(http.StatusOK, toys)
}

// SearchToys matches toy names by case-insensitive substring.
func (h *ToyHandler) SearchToys(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name query parameter is required"})
		return
	}

	toys, err := h.store.SearchByName(c.Request.Context(), name)
	if err != nil {
		writeRepoError(c, h.log, err, "toys.search")
		return
	}
	c.JSON(http.StatusOK, toys)
}

// ListBySubcategory filters the gallery by category tab. The path value is
// normalized to the stored capitalization, so "action" and "Action" give
// the same result.
func (h *ToyHandler) ListBySubcategory(c *gin.Context) {
	subCategory := capitalize(c.Param("name"))
	cacheKey := fmt.Sprintf("toys:list:subcategory:%s", subCategory)

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	toys, err := h.store.ListBySubcategory(c.Request.Context(), subCategory)
	if err != nil {
		writeRepoError(c, h.log, err, "toys.listBySubcategory")
		return
	}

	h.cache.Set(cacheKey, toys, listCacheTTL)
	c.JSON(http.StatusOK, toys)
}

// GetToy serves the toy detail page, cached.
func (h *ToyHandler) GetToy(c *gin.Context) {
	id := c.Param("id")
	cacheKey := fmt.Sprintf("toys:detail:%s", id)

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	toy, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, h.log, err, "toys.get")
		return
	}

	h.cache.Set(cacheKey, toy, toyCacheTTL)
	c.JSON(http.StatusOK, toy)
}

// CreateToy inserts a new listing.
func (h *ToyHandler) CreateToy(c *gin.Context) {
	var toy models.Toy
	if err := c.ShouldBindJSON(&toy); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	toy.SubCategory = capitalize(toy.SubCategory)

	id, err := h.store.Create(c.Request.Context(), &toy)
	if err != nil {
		writeRepoError(c, h.log, err, "toys.create")
		return
	}

	h.cache.DeleteByPrefix(toyCachePrefix)
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// UpdateToy changes price, quantity and description on an existing listing.
func (h *ToyHandler) UpdateToy(c *gin.Context) {
	var update models.ToyUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if update.Price == nil && update.Quantity == nil && update.Description == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no valid fields to update"})
		return
	}

	id := c.Param("id")
	res, err := h.store.Update(c.Request.Context(), id, update)
	if err != nil {
		writeRepoError(c, h.log, err, "toys.update")
		return
	}

	h.cache.DeleteByPrefix(toyCachePrefix)
	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
	})
}

// DecrementToy takes one unit off a listing's stock when an order goes
// through. Stock at zero is a conflict, not a negative quantity.
func (h *ToyHandler) DecrementToy(c *gin.Context) {
	id := c.Param("id")

	toy, err := h.store.DecrementQuantity(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, h.log, err, "toys.decrement")
		return
	}

	h.cache.DeleteByPrefix(toyCachePrefix)
	c.JSON(http.StatusOK, gin.H{
		"modifiedCount": 1,
		"quantity":      toy.Quantity,
	})
}

// DeleteToy removes a listing. Deleting an unknown id reports a zero count.
func (h *ToyHandler) DeleteToy(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, h.log, err, "toys.delete")
		return
	}

	h.cache.DeleteByPrefix(toyCachePrefix)
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
