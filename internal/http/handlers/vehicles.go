package handlers

import (
	"net/http"
	"strconv"

	"transtour/internal/domain/models"
	"transtour/internal/repositories"
	"transtour/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

type vehicleTypePayload struct {
	Name         string `json:"name" binding:"required"`
	SeatCapacity int    `json:"seatCapacity"`
	PricePerKm   int64  `json:"pricePerKm"`
	ImageURL     string `json:"imageUrl"`
}

// GET /api/vehicle-types?q=
func GetVehicleTypes(c *gin.Context) {
	list, err := repositories.VehicleTypeRepository{}.List(c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/vehicle-types
func CreateVehicleType(c *gin.Context) {
	var payload vehicleTypePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	name := utils.NormalizeSpace(payload.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name wajib diisi"})
		return
	}

	id, err := repositories.VehicleTypeRepository{}.Create(models.VehicleType{
		Name:         name,
		SeatCapacity: payload.SeatCapacity,
		PricePerKm:   payload.PricePerKm,
		ImageURL:     payload.ImageURL,
	})
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "Nama tipe kendaraan sudah terdaftar (duplikat)."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal menambah tipe kendaraan: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "tipe kendaraan berhasil ditambahkan", "id": id})
}

// PUT /api/vehicle-types/:id
func UpdateVehicleType(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id tidak valid"})
		return
	}

	var payload vehicleTypePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	err = repositories.VehicleTypeRepository{}.Update(id, models.VehicleType{
		Name:         utils.NormalizeSpace(payload.Name),
		SeatCapacity: payload.SeatCapacity,
		PricePerKm:   payload.PricePerKm,
		ImageURL:     payload.ImageURL,
	})
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "Nama tipe kendaraan sudah terdaftar (duplikat)."})
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "tipe kendaraan berhasil diupdate"})
}

// DELETE /api/vehicle-types/:id
func DeleteVehicleType(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id tidak valid"})
		return
	}

	if err := (repositories.VehicleTypeRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tipe kendaraan berhasil dihapus"})
}
