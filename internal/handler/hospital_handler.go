package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hospital-bed-backend/internal/geo"
	"hospital-bed-backend/internal/models"
	"hospital-bed-backend/internal/pipeline"
	"hospital-bed-backend/internal/repository"
	"hospital-bed-backend/internal/service"
	"hospital-bed-backend/internal/validation"
	"hospital-bed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// ListHospitals handles GET /api/hospitals with optional search and region
// query filters. Responds with a raw JSON array, newest submission first.
func (h *HospitalHandler) ListHospitals(c *gin.Context) {
	search := c.Query("search")
	region := c.Query("region")

	hospitals, err := h.hospitalService.List(search, region)
	if err != nil {
		log.Printf("Failed to list hospitals: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve hospital data.")
		return
	}

	c.JSON(http.StatusOK, hospitals)
}

// SubmitHospital handles POST /api/hospitals. The write is an upsert keyed on
// case-insensitive hospital name: 201 on create, 200 on update, body is the
// saved row as stored.
func (h *HospitalHandler) SubmitHospital(c *gin.Context) {
	var input models.HospitalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorResponse(c, []string{"Request body must be valid JSON with known fields only."})
		return
	}

	if messages := validation.HospitalInput(&input); len(messages) > 0 {
		utils.ValidationErrorResponse(c, messages)
		return
	}

	hospital, created, err := h.hospitalService.Submit(&input, currentUserID(c))
	if err != nil {
		log.Printf("Failed to save hospital %q: %v", input.Name, err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to save hospital data due to an internal server error.")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, hospital)
}

// GetHistory handles GET /api/hospitals/:id/history?days=N. Returns daily
// average bed counts for the window, oldest date first.
func (h *HospitalHandler) GetHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID provided.")
		return
	}

	days := 7
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Days parameter must be a positive number.")
			return
		}
	}

	daily, err := h.hospitalService.History(uint(id), days)
	if err != nil {
		log.Printf("Failed to load history for hospital %d: %v", id, err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load historical data.")
		return
	}

	c.JSON(http.StatusOK, daily)
}

// DeleteHospital handles DELETE /api/hospitals/:id, removing the hospital and
// its entire snapshot history.
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "A valid hospital ID is required for deletion.")
		return
	}

	if err := h.hospitalService.Delete(uint(id), currentUserID(c)); err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Hospital not found or already deleted.")
			return
		}
		log.Printf("Failed to delete hospital %d: %v", id, err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete hospital.")
		return
	}

	utils.MessageResponse(c, "Hospital deleted successfully.")
}

// GetStats handles GET /api/hospitals/stats, the dashboard totals.
func (h *HospitalHandler) GetStats(c *gin.Context) {
	stats, err := h.hospitalService.Stats()
	if err != nil {
		log.Printf("Failed to compute stats: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve hospital data.")
		return
	}

	c.JSON(http.StatusOK, stats)
}

type viewResponse struct {
	pipeline.Page
	Notice string `json:"notice,omitempty"`
}

// ViewHospitals handles GET /api/hospitals/view: the server-rendered variant
// of the list view. Applies the full stage order (bed-type filter, distance
// filter, sort, paginate) on top of the search/region database filters.
// When a distance filter is requested without usable coordinates, the filter
// is skipped and a notice is included instead of failing the request.
func (h *HospitalHandler) ViewHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.List(c.Query("search"), c.Query("region"))
	if err != nil {
		log.Printf("Failed to list hospitals for view: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve hospital data.")
		return
	}

	state := pipeline.State{
		BedType:  c.Query("bedType"),
		Sort:     c.DefaultQuery("sort", pipeline.SortLatest),
		Page:     1,
		PageSize: pipeline.DefaultPageSize,
	}

	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			state.Page = page
		}
	}
	if raw := c.Query("pageSize"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			state.PageSize = size
		}
	}

	var notice string
	if raw := c.Query("maxDistanceKm"); raw != "" {
		maxDistance, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxDistance <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "maxDistanceKm must be a positive number.")
			return
		}

		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
		if latErr != nil || lngErr != nil {
			notice = "Distance filter ignored: user location unavailable."
		} else {
			state.MaxDistanceKm = maxDistance
			state.UserLocation = &geo.Point{Lat: lat, Lng: lng}
		}
	}

	page := pipeline.Render(hospitals, state, geo.HospitalCoords)
	c.JSON(http.StatusOK, viewResponse{Page: page, Notice: notice})
}

// currentUserID reads the authenticated user id set by the auth middleware.
// Nil for unauthenticated requests.
func currentUserID(c *gin.Context) *uint {
	value, exists := c.Get("userID")
	if !exists {
		return nil
	}
	userID, ok := value.(uint)
	if !ok {
		return nil
	}
	return &userID
}
