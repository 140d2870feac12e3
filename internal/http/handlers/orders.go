package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"transtour/internal/domain/models"
	"transtour/internal/repositories"
	"transtour/internal/services"
	"transtour/internal/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/orders/transport
//
// The order wizard submits a flat form: destinations[<idx>].address|lat|lng|
// arrivalTime|departureDate|departureTime|isPickupLocation|sequence|dayIndex
// plus vehicleTypeId, vehicleCount, roundTrip, totalDistance (meters),
// totalPrice, orderType, fullName, phoneNumber, email, totalPassengers, note.
func CreateTransportOrder(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_form", "payload tidak valid", nil)
		return
	}
	form := c.Request.PostForm

	orderType := strings.ToUpper(strings.TrimSpace(form.Get("orderType")))
	if orderType != "" && orderType != models.OrderTypeTransport {
		respondError(c, http.StatusBadRequest, "invalid_order_type", "orderType harus TRANSPORT", nil)
		return
	}

	vehicleTypeID, err := strconv.ParseInt(strings.TrimSpace(form.Get("vehicleTypeId")), 10, 64)
	if err != nil || vehicleTypeID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "vehicleTypeId tidak valid", nil)
		return
	}

	req := services.TransportOrderRequest{
		FullName:             form.Get("fullName"),
		PhoneNumber:          form.Get("phoneNumber"),
		Email:                form.Get("email"),
		Note:                 form.Get("note"),
		VehicleTypeID:        vehicleTypeID,
		VehicleCount:         formInt(form.Get("vehicleCount"), 1),
		TotalPassengers:      formInt(form.Get("totalPassengers"), 0),
		RoundTrip:            formBool(form.Get("roundTrip")),
		ClientDistanceMeters: formFloat(form.Get("totalDistance")),
		ClientPrice:          formMoney(form.Get("totalPrice")),
		Destinations:         services.ParseDestinationForm(form),
	}

	detail, err := orderService(c).CreateTransportOrder(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "order berhasil dibuat",
		"data":    detail,
	})
}

// POST /api/orders/package
func CreatePackageOrder(c *gin.Context) {
	var req services.PackageOrderRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	detail, err := orderService(c).CreatePackageOrder(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "order paket berhasil dibuat",
		"data":    detail,
	})
}

// POST /api/orders/quote
//
// Same form shape as the transport endpoint; nothing is persisted. The wizard
// shows these figures and later submits them back for cross-validation.
func QuoteTransportOrder(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_form", "payload tidak valid", nil)
		return
	}
	form := c.Request.PostForm

	vehicleTypeID, err := strconv.ParseInt(strings.TrimSpace(form.Get("vehicleTypeId")), 10, 64)
	if err != nil || vehicleTypeID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "vehicleTypeId tidak valid", nil)
		return
	}

	quote, err := orderService(c).Quote(c.Request.Context(), vehicleTypeID,
		formInt(form.Get("vehicleCount"), 1), services.ParseDestinationForm(form))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "estimasi harga", "data": quote})
}

// GET /api/orders?q=&page=&limit=
func GetOrders(c *gin.Context) {
	page := formInt(c.Query("page"), 1)
	limit := formInt(c.Query("limit"), 50)

	list, err := repositories.OrderRepository{}.List(c.Query("q"), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/orders/:id
func GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id order tidak valid", nil)
		return
	}

	detail, err := repositories.OrderRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func formInt(s string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return def
}

func formFloat(s string) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f
	}
	return 0
}

// formMoney accepts both a plain number and a formatted rupiah string
// ("Rp 556.800") since older client builds submit the rendered amount.
func formMoney(s string) int64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return int64(math.Round(f))
	}
	if n, err := utils.ParseRupiahToInt(s); err == nil {
		return n
	}
	return 0
}

func formBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "on"
}
