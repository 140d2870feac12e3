package handlers

import (
	"net/http"
	"strconv"

	"transtour/internal/domain/models"
	"transtour/internal/repositories"
	"transtour/internal/utils"

	"github.com/gin-gonic/gin"
)

type tourPackagePayload struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	DurationDays int    `json:"durationDays"`
	ImageURL     string `json:"imageUrl"`
}

// GET /api/packages?q=
func GetTourPackages(c *gin.Context) {
	list, err := repositories.TourPackageRepository{}.List(c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/packages/:id
func GetTourPackageByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id tidak valid"})
		return
	}

	pkg, err := repositories.TourPackageRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// POST /api/packages
func CreateTourPackage(c *gin.Context) {
	var payload tourPackagePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	name := utils.NormalizeSpace(payload.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name wajib diisi"})
		return
	}
	if payload.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price tidak boleh negatif"})
		return
	}

	id, err := repositories.TourPackageRepository{}.Create(models.TourPackage{
		Name:         name,
		Description:  payload.Description,
		Price:        payload.Price,
		DurationDays: payload.DurationDays,
		ImageURL:     payload.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal menambah paket wisata: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "paket wisata berhasil ditambahkan", "id": id})
}

// PUT /api/packages/:id
func UpdateTourPackage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id tidak valid"})
		return
	}

	var payload tourPackagePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	err = repositories.TourPackageRepository{}.Update(id, models.TourPackage{
		Name:         utils.NormalizeSpace(payload.Name),
		Description:  payload.Description,
		Price:        payload.Price,
		DurationDays: payload.DurationDays,
		ImageURL:     payload.ImageURL,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "paket wisata berhasil diupdate"})
}

// DELETE /api/packages/:id
func DeleteTourPackage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id tidak valid"})
		return
	}

	if err := (repositories.TourPackageRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "paket wisata berhasil dihapus"})
}
