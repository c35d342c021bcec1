package handlers

import (
	"mime/multipart"
	"net/http"

	"tourguide/models"
	"tourguide/services/catalog"
	"tourguide/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves destinations, hotels and cabs. Writes are admin-only at the route level.
type CatalogHandler struct {
	Service *catalog.Service
}

func NewCatalogHandler(s *catalog.Service) *CatalogHandler {
	return &CatalogHandler{Service: s}
}

func writeList[T any](c *gin.Context, key string, items []T, err error) {
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{key: items})
}

func writeItem[T any](c *gin.Context, status int, key, message string, item *T, err error) {
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	body := gin.H{key: item}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

func writeDeleted(c *gin.Context, message string, err error) {
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// imageFile opens the multipart "image" field.
func imageFile(c *gin.Context) (multipart.File, bool) {
	header, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("An image file is required", map[string]string{"image": "is required"}))
		return nil, false
	}
	file, err := header.Open()
	if err != nil {
		utils.GetLogger().Error("Failed to open uploaded image", zap.Error(err))
		utils.RespondError(c, utils.NewValidationError("Could not read uploaded image", nil))
		return nil, false
	}
	return file, true
}

// Destinations

func (h *CatalogHandler) ListDestinations(c *gin.Context) {
	items, err := h.Service.ListDestinations(c.Request.Context())
	writeList(c, "destinations", items, err)
}

func (h *CatalogHandler) SearchDestinations(c *gin.Context) {
	items, err := h.Service.SearchDestinations(c.Request.Context(), c.Query("name"))
	writeList(c, "destinations", items, err)
}

func (h *CatalogHandler) PopularDestinations(c *gin.Context) {
	items, err := h.Service.PopularDestinations(c.Request.Context())
	writeList(c, "destinations", items, err)
}

func (h *CatalogHandler) GetDestination(c *gin.Context) {
	item, err := h.Service.GetDestination(c.Request.Context(), c.Param("id"))
	writeItem(c, http.StatusOK, "destination", "", item, err)
}

func (h *CatalogHandler) CreateDestination(c *gin.Context) {
	var d models.Destination
	if !bindJSON(c, &d) {
		return
	}
	item, err := h.Service.CreateDestination(c.Request.Context(), d)
	writeItem(c, http.StatusCreated, "destination", "Destination created successfully", item, err)
}

func (h *CatalogHandler) UpdateDestination(c *gin.Context) {
	var d models.Destination
	if !bindJSON(c, &d) {
		return
	}
	item, err := h.Service.UpdateDestination(c.Request.Context(), c.Param("id"), d)
	writeItem(c, http.StatusOK, "destination", "Destination updated successfully", item, err)
}

func (h *CatalogHandler) DeleteDestination(c *gin.Context) {
	writeDeleted(c, "Destination deleted successfully", h.Service.DeleteDestination(c.Request.Context(), c.Param("id")))
}

func (h *CatalogHandler) UploadDestinationImage(c *gin.Context) {
	file, ok := imageFile(c)
	if !ok {
		return
	}
	defer file.Close()
	item, err := h.Service.SetDestinationImage(c.Request.Context(), c.Param("id"), file)
	writeItem(c, http.StatusOK, "destination", "Image uploaded successfully", item, err)
}

// Hotels

func (h *CatalogHandler) ListHotels(c *gin.Context) {
	items, err := h.Service.ListHotels(c.Request.Context())
	writeList(c, "hotels", items, err)
}

func (h *CatalogHandler) SearchHotels(c *gin.Context) {
	items, err := h.Service.SearchHotels(c.Request.Context(), c.Query("location"))
	writeList(c, "hotels", items, err)
}

func (h *CatalogHandler) AvailableHotels(c *gin.Context) {
	items, err := h.Service.AvailableHotels(c.Request.Context())
	writeList(c, "hotels", items, err)
}

func (h *CatalogHandler) GetHotel(c *gin.Context) {
	item, err := h.Service.GetHotel(c.Request.Context(), c.Param("id"))
	writeItem(c, http.StatusOK, "hotel", "", item, err)
}

func (h *CatalogHandler) CreateHotel(c *gin.Context) {
	var hotel models.Hotel
	if !bindJSON(c, &hotel) {
		return
	}
	item, err := h.Service.CreateHotel(c.Request.Context(), hotel)
	writeItem(c, http.StatusCreated, "hotel", "Hotel created successfully", item, err)
}

func (h *CatalogHandler) UpdateHotel(c *gin.Context) {
	var hotel models.Hotel
	if !bindJSON(c, &hotel) {
		return
	}
	item, err := h.Service.UpdateHotel(c.Request.Context(), c.Param("id"), hotel)
	writeItem(c, http.StatusOK, "hotel", "Hotel updated successfully", item, err)
}

func (h *CatalogHandler) DeleteHotel(c *gin.Context) {
	writeDeleted(c, "Hotel deleted successfully", h.Service.DeleteHotel(c.Request.Context(), c.Param("id")))
}

func (h *CatalogHandler) UploadHotelImage(c *gin.Context) {
	file, ok := imageFile(c)
	if !ok {
		return
	}
	defer file.Close()
	item, err := h.Service.SetHotelImage(c.Request.Context(), c.Param("id"), file)
	writeItem(c, http.StatusOK, "hotel", "Image uploaded successfully", item, err)
}

// Cabs

func (h *CatalogHandler) ListCabs(c *gin.Context) {
	items, err := h.Service.ListCabs(c.Request.Context())
	writeList(c, "cabs", items, err)
}

// FilterCabs handles GET /cabs/filter?vehicleType=&minPrice=&maxPrice=.
func (h *CatalogHandler) FilterCabs(c *gin.Context) {
	f, err := catalog.ParseCabFilter(c.Query("vehicleType"), c.Query("minPrice"), c.Query("maxPrice"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	items, err := h.Service.FilterCabs(c.Request.Context(), f)
	writeList(c, "cabs", items, err)
}

func (h *CatalogHandler) GetCab(c *gin.Context) {
	item, err := h.Service.GetCab(c.Request.Context(), c.Param("id"))
	writeItem(c, http.StatusOK, "cab", "", item, err)
}

func (h *CatalogHandler) CreateCab(c *gin.Context) {
	var cab models.Cab
	if !bindJSON(c, &cab) {
		return
	}
	item, err := h.Service.CreateCab(c.Request.Context(), cab)
	writeItem(c, http.StatusCreated, "cab", "Cab created successfully", item, err)
}

func (h *CatalogHandler) UpdateCab(c *gin.Context) {
	var cab models.Cab
	if !bindJSON(c, &cab) {
		return
	}
	item, err := h.Service.UpdateCab(c.Request.Context(), c.Param("id"), cab)
	writeItem(c, http.StatusOK, "cab", "Cab updated successfully", item, err)
}

func (h *CatalogHandler) DeleteCab(c *gin.Context) {
	writeDeleted(c, "Cab deleted successfully", h.Service.DeleteCab(c.Request.Context(), c.Param("id")))
}

func (h *CatalogHandler) UploadCabImage(c *gin.Context) {
	file, ok := imageFile(c)
	if !ok {
		return
	}
	defer file.Close()
	item, err := h.Service.SetCabImage(c.Request.Context(), c.Param("id"), file)
	writeItem(c, http.StatusOK, "cab", "Image uploaded successfully", item, err)
}
