package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/httpresp"
	"github.com/freshcut-app/freshcut-api/internal/middleware"
	"github.com/freshcut-app/freshcut-api/internal/models"
	usecase "github.com/freshcut-app/freshcut-api/internal/usecase/booking"
)

type BookingHandler struct {
	db       *gorm.DB
	create   *usecase.CreateBooking
	update   *usecase.UpdateBooking
	cancel   *usecase.CancelBooking
	complete *usecase.CompleteBooking
	delete   *usecase.DeleteBooking
	list     *usecase.ListBookings
}

func NewBookingHandler(
	db *gorm.DB,
	create *usecase.CreateBooking,
	update *usecase.UpdateBooking,
	cancel *usecase.CancelBooking,
	complete *usecase.CompleteBooking,
	del *usecase.DeleteBooking,
	list *usecase.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		db:       db,
		create:   create,
		update:   update,
		cancel:   cancel,
		complete: complete,
		delete:   del,
		list:     list,
	}
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.All(c.Request.Context())
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.List(c, bookings)
}

// My lists the caller's bookings. Bookings carry the client display name,
// so the authenticated email is resolved to the user's name first.
func (h *BookingHandler) My(c *gin.Context) {
	email := middleware.CurrentEmail(c)
	if email == "" {
		httperr.Unauthorized(c, "unauthenticated", "authentication required")
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Business(c, err)
		return
	}

	bookings, err := h.list.ByClient(c.Request.Context(), user.Name)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.list.One(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.OK(c, booking)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var in usecase.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
		return
	}

	booking, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.Created(c, booking)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var in usecase.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
		return
	}

	booking, err := h.update.Execute(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.OK(c, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	booking, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.OK(c, booking)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	booking, err := h.complete.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.OK(c, booking)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.OK(c, gin.H{"message": "booking deleted"})
}
