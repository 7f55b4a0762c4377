package api

import (
	"net/http"

	"futuresign-backend/internal/delivery/http/response"
	"futuresign-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// ServicesHandler serves the fixed service catalog the contact form's
// service selector is populated from.
type ServicesHandler struct{}

func NewServicesHandler(public *gin.RouterGroup) {
	handler := &ServicesHandler{}
	public.GET("/services", handler.ListServices)
}

// ListServices godoc
// @Summary      List Services
// @Description  Return the catalog of offered services.
// @Tags         services
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ServiceOption}
// @Router       /services [get]
func (h *ServicesHandler) ListServices(c *gin.Context) {
	response.Success(c, http.StatusOK, "Service catalog", domain.ServiceCatalog)
}
