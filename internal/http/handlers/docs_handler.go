package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"transtour/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/orders/:id/invoice
func GetOrderInvoicePDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id order tidak valid", err)
		return
	}

	pdf, filename, err := services.DocsService{}.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
