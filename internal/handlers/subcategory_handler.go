package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"toy-marketplace/internal/cache"
	"toy-marketplace/internal/logger"
)

const (
	subcategoryCacheKey = "subcategories"
	subcategoryCacheTTL = 10 * time.Minute
)

// SubcategoryHandler serves the category tabs. The collection is read-only
// through this API, so the list caches aggressively.
type SubcategoryHandler struct {
	store SubcategoryStore
	cache *cache.Cache
	log   *logger.Logger
}

func NewSubcategoryHandler(store SubcategoryStore, c *cache.Cache, log *logger.Logger) *SubcategoryHandler {
	return &SubcategoryHandler{store: store, cache: c, log: log}
}

func (h *SubcategoryHandler) ListSubcategories(c *gin.Context) {
	if cached, found := h.cache.Get(subcategoryCacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	subcategories, err := h.store.List(c.Request.Context())
	if err != nil {
		writeRepoError(c, h.log, err, "subcategories.list")
		return
	}

	h.cache.Set(subcategoryCacheKey, subcategories, subcategoryCacheTTL)
	c.JSON(http.StatusOK, subcategories)
}
