package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/httpresp"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

// AdminCatalogHandler manages the service and barber catalog plus any
// barber's schedules. Routes are ADMIN-gated by the policy table.
type AdminCatalogHandler struct {
	db *gorm.DB
}

func NewAdminCatalogHandler(db *gorm.DB) *AdminCatalogHandler {
	return &AdminCatalogHandler{db: db}
}

type ServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=1"`
	PriceCents      int    `json:"priceCents" binding:"required,min=0"`
	Active          *bool  `json:"active"`
}

type CreateBarberRequest struct {
	Name            string   `json:"name" binding:"required"`
	Specialties     []string `json:"specialties"`
	Bio             string   `json:"bio"`
	ExperienceYears *int     `json:"experienceYears"`
	CutTypes        []string `json:"cutTypes"`
	Active          *bool    `json:"active"`
}

type AdminScheduleRequest struct {
	BarberID  string `json:"barberId" binding:"required"`
	DayOfWeek *int   `json:"dayOfWeek" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// --------- services ---------

func (h *AdminCatalogHandler) ListServices(c *gin.Context) {
	var services []models.ServiceItem
	if err := h.db.WithContext(c.Request.Context()).Order("name").Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to load services")
		return
	}
	httpresp.List(c, services)
}

func (h *AdminCatalogHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
		return
	}

	service := models.ServiceItem{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		Active:          req.Active == nil || *req.Active,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create service")
		return
	}
	httpresp.Created(c, service)
}

func (h *AdminCatalogHandler) UpdateService(c *gin.Context) {
	var service models.ServiceItem
	if err := h.db.WithContext(c.Request.Context()).First(&service, "id = ?", c.Param("id")).Error; err != nil {
		httperr.Business(c, err)
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
		return
	}

	service.Name = req.Name
	service.DurationMinutes = req.DurationMinutes
	service.PriceCents = req.PriceCents
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update service")
		return
	}
	httpresp.OK(c, service)
}

func (h *AdminCatalogHandler) DeleteService(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).Delete(&models.ServiceItem{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "failed to delete service")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "service not found")
		return
	}
	httpresp.OK(c, gin.H{"message": "service deleted"})
}

// --------- barbers ---------

func (h *AdminCatalogHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.WithContext(c.Request.Context()).Order("name").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to load barbers")
		return
	}
	httpresp.List(c, barbers)
}

func (h *AdminCatalogHandler) CreateBarber(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
		return
	}

	barber := models.Barber{
		Name:            req.Name,
		Specialties:     req.Specialties,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		CutTypes:        req.CutTypes,
		Active:          req.Active == nil || *req.Active,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&barber).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create barber")
		return
	}
	httpresp.Created(c, barber)
}

func (h *AdminCatalogHandler) UpdateBarber(c *gin.Context) {
	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).First(&barber, "id = ?", c.Param("id")).Error; err != nil {
		httperr.Business(c, err)
		return
	}

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
		return
	}

	barber.Name = req.Name
	barber.Specialties = req.Specialties
	barber.Bio = req.Bio
	barber.ExperienceYears = req.ExperienceYears
	barber.CutTypes = req.CutTypes
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&barber).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update barber")
		return
	}
	httpresp.OK(c, barber)
}

func (h *AdminCatalogHandler) DeleteBarber(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).Delete(&models.Barber{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "failed to delete barber")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "barber not found")
		return
	}
	httpresp.OK(c, gin.H{"message": "barber deleted"})
}

// --------- schedules ---------

func (h *AdminCatalogHandler) ListSchedules(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Order("barber_id, day_of_week, start_time")
	if barberID := c.Query("barberId"); barberID != "" {
		q = q.Where("barber_id = ?", barberID)
	}

	var schedules []models.Schedule
	if err := q.Find(&schedules).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to load schedules")
		return
	}
	httpresp.List(c, schedules)
}

func (h *AdminCatalogHandler) CreateSchedule(c *gin.Context) {
	var req AdminScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
		return
	}
	if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		httperr.BadRequest(c, httperr.CodeValidation, "dayOfWeek must be 0..6")
		return
	}
	if !validClock(req.StartTime) || !validClock(req.EndTime) || req.StartTime >= req.EndTime {
		httperr.BadRequest(c, httperr.CodeValidation, "times must be HH:MM with start before end")
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).First(&barber, "id = ?", req.BarberID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Write(c, httperr.Status(httperr.CodeInvalidReference),
				httperr.CodeInvalidReference, "unknown barber")
			return
		}
		httperr.Business(c, err)
		return
	}

	schedule := models.Schedule{
		BarberID:  barber.ID,
		DayOfWeek: time.Weekday(*req.DayOfWeek),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&schedule).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create schedule")
		return
	}
	httpresp.Created(c, schedule)
}

func (h *AdminCatalogHandler) DeleteSchedule(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).Delete(&models.Schedule{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "failed to delete schedule")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "schedule not found")
		return
	}
	httpresp.OK(c, gin.H{"message": "schedule deleted"})
}
