package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/httpresp"
	"github.com/freshcut-app/freshcut-api/internal/middleware"
	"github.com/freshcut-app/freshcut-api/internal/models"
	usecase "github.com/freshcut-app/freshcut-api/internal/usecase/booking"
)

// BarberHandler is the self-service surface for BARBER users: own profile,
// own agenda and own weekly windows. Every operation resolves the caller's
// linked Barber row first; a BARBER account without one is a data error.
type BarberHandler struct {
	db   *gorm.DB
	list *usecase.ListBookings
}

func NewBarberHandler(db *gorm.DB, list *usecase.ListBookings) *BarberHandler {
	return &BarberHandler{db: db, list: list}
}

type UpdateBarberRequest struct {
	Name            string   `json:"name"`
	Specialties     []string `json:"specialties"`
	Bio             string   `json:"bio"`
	ExperienceYears *int     `json:"experienceYears"`
	CutTypes        []string `json:"cutTypes"`
}

type ScheduleRequest struct {
	DayOfWeek *int   `json:"dayOfWeek" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

func (h *BarberHandler) Me(c *gin.Context) {
	barber, ok := h.currentBarber(c)
	if !ok {
		return
	}
	httpresp.OK(c, barber)
}

func (h *BarberHandler) UpdateMe(c *gin.Context) {
	barber, ok := h.currentBarber(c)
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
		return
	}

	if req.Name != "" {
		barber.Name = req.Name
	}
	barber.Specialties = req.Specialties
	barber.Bio = req.Bio
	barber.ExperienceYears = req.ExperienceYears
	barber.CutTypes = req.CutTypes

	if err := h.db.WithContext(c.Request.Context()).Save(barber).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update profile")
		return
	}
	httpresp.OK(c, barber)
}

func (h *BarberHandler) Bookings(c *gin.Context) {
	barber, ok := h.currentBarber(c)
	if !ok {
		return
	}

	bookings, err := h.list.ByBarber(c.Request.Context(), barber.Name)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BarberHandler) Schedules(c *gin.Context) {
	barber, ok := h.currentBarber(c)
	if !ok {
		return
	}

	var schedules []models.Schedule
	err := h.db.WithContext(c.Request.Context()).
		Where("barber_id = ?", barber.ID).
		Order("day_of_week, start_time").
		Find(&schedules).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to load schedules")
		return
	}
	httpresp.List(c, schedules)
}

func (h *BarberHandler) CreateSchedule(c *gin.Context) {
	barber, ok := h.currentBarber(c)
	if !ok {
		return
	}

	req, ok := bindSchedule(c)
	if !ok {
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

func (h *BarberHandler) UpdateSchedule(c *gin.Context) {
	barber, ok := h.currentBarber(c)
	if !ok {
		return
	}

	schedule, ok := h.ownedSchedule(c, barber.ID)
	if !ok {
		return
	}

	req, ok := bindSchedule(c)
	if !ok {
		return
	}

	schedule.DayOfWeek = time.Weekday(*req.DayOfWeek)
	schedule.StartTime = req.StartTime
	schedule.EndTime = req.EndTime

	if err := h.db.WithContext(c.Request.Context()).Save(schedule).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update schedule")
		return
	}
	httpresp.OK(c, schedule)
}

func (h *BarberHandler) DeleteSchedule(c *gin.Context) {
	barber, ok := h.currentBarber(c)
	if !ok {
		return
	}

	schedule, ok := h.ownedSchedule(c, barber.ID)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(schedule).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to delete schedule")
		return
	}
	httpresp.OK(c, gin.H{"message": "schedule deleted"})
}

// --------- helpers ---------

func (h *BarberHandler) currentBarber(c *gin.Context) (*models.Barber, bool) {
	email := middleware.CurrentEmail(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Business(c, err)
		return nil, false
	}
	if user.BarberID == "" {
		httperr.NotFound(c, httperr.CodeNotFound, "no barber profile linked")
		return nil, false
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).First(&barber, "id = ?", user.BarberID).Error; err != nil {
		httperr.Business(c, err)
		return nil, false
	}
	return &barber, true
}

// ownedSchedule loads the :id schedule and hides other barbers' rows
// behind a 404.
func (h *BarberHandler) ownedSchedule(c *gin.Context, barberID string) (*models.Schedule, bool) {
	var schedule models.Schedule
	err := h.db.WithContext(c.Request.Context()).
		First(&schedule, "id = ? AND barber_id = ?", c.Param("id"), barberID).Error
	if err != nil {
		httperr.Business(c, err)
		return nil, false
	}
	return &schedule, true
}

func bindSchedule(c *gin.Context) (*ScheduleRequest, bool) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
		return nil, false
	}
	if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		httperr.BadRequest(c, httperr.CodeValidation, "dayOfWeek must be 0..6")
		return nil, false
	}
	if !validClock(req.StartTime) || !validClock(req.EndTime) || req.StartTime >= req.EndTime {
		httperr.BadRequest(c, httperr.CodeValidation, "times must be HH:MM with start before end")
		return nil, false
	}
	return &req, true
}

func validClock(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}
