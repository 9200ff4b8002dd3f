package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/familyexpressec/courier-api/internal/httperr"
	"github.com/familyexpressec/courier-api/internal/models"
)

// CatalogHandler maneja el catálogo de artículos declarables. La lista
// pública alimenta el formulario de envío; el resto es mantenimiento.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

type PackageItemRequest struct {
	Slug     string `json:"slug" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Active   *bool  `json:"active"`
}

// ListActive es público: solo artículos activos, ordenados por nombre.
func (h *CatalogHandler) ListActive(c *gin.Context) {
	var items []models.PackageItem
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "catalog_list_failed", "No se pudo listar el catálogo.")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) ListAll(c *gin.Context) {
	var items []models.PackageItem
	if err := h.db.Order("name ASC").Find(&items).Error; err != nil {
		httperr.Internal(c, "catalog_list_failed", "No se pudo listar el catálogo.")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req PackageItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.PackageItem{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "Ya existe un artículo con ese slug.")
		return
	}

	item := models.PackageItem{
		Slug:     slug,
		Name:     req.Name,
		Icon:     req.Icon,
		Category: req.Category,
		Active:   true,
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "catalog_create_failed", "No se pudo crear el artículo.")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var item models.PackageItem
	if err := h.db.First(&item, id).Error; err != nil {
		httperr.NotFound(c, "item_not_found", "Artículo no encontrado.")
		return
	}

	var req PackageItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	item.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	item.Name = req.Name
	item.Icon = req.Icon
	item.Category = req.Category
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "catalog_update_failed", "No se pudo actualizar el artículo.")
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete solo desactiva: los envíos viejos referencian el nombre.
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var item models.PackageItem
	if err := h.db.First(&item, id).Error; err != nil {
		httperr.NotFound(c, "item_not_found", "Artículo no encontrado.")
		return
	}

	item.Active = false
	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "catalog_update_failed", "No se pudo desactivar el artículo.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deactivated": true})
}
