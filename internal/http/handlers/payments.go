package handlers

import (
	"net/http"
	"strconv"

	"transtour/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/payments?status=
func GetPayments(c *gin.Context) {
	list, err := repositories.PaymentRepository{}.List(c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PUT /api/payments/:id/confirm
func ConfirmPayment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return
	}

	if err := (repositories.PaymentRepository{}).Confirm(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pembayaran berhasil divalidasi"})
}
