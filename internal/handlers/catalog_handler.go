package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/freshcut-app/freshcut-api/internal/catalog"
	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/httpresp"
)

// CatalogHandler serves the public, cached catalog reads.
type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

func (h *CatalogHandler) Barbers(c *gin.Context) {
	barbers, err := h.catalog.ListActiveBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to load barbers")
		return
	}
	httpresp.List(c, barbers)
}

func (h *CatalogHandler) Services(c *gin.Context) {
	services, err := h.catalog.ListActiveServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to load services")
		return
	}
	httpresp.List(c, services)
}
