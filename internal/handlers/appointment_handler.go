package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/dto"
	"github.com/BruksfildServices01/dental-admin/internal/export"
	"github.com/BruksfildServices01/dental-admin/internal/forms"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
	"github.com/BruksfildServices01/dental-admin/internal/usecase/actions"
	"github.com/BruksfildServices01/dental-admin/internal/usecase/lists"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list    *lists.ListAppointments
	actions *actions.RunRowAction
	forms   *forms.Registry
	loc     *time.Location
}

func NewAppointmentHandler(
	list *lists.ListAppointments,
	actions *actions.RunRowAction,
	registry *forms.Registry,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:    list,
		actions: actions,
		forms:   registry,
		loc:     loc,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	query, status := filters(c)

	v, err := h.list.Execute(c.Request.Context(), query, status)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, v.Records, v.Query, string(v.Status))
}

func (h *AppointmentHandler) Export(c *gin.Context) {
	query, status := filters(c)

	v, err := h.list.Execute(c.Request.Context(), query, status)
	if err != nil {
		writeError(c, err)
		return
	}

	writeWorkbook(c, "appointments", h.loc, export.Appointments(v.Records))
}

// ======================================================
// FORM
// ======================================================

func (h *AppointmentHandler) Options(c *gin.Context) {
	f, err := h.forms.Appointment(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	opts := f.Options()
	httpresp.OK(c, dto.AppointmentOptionsDTO{
		Patients:       opts.Patients,
		Dentists:       opts.Dentists,
		TreatmentTypes: opts.TreatmentTypes,
		TimeSlots:      opts.TimeSlots,
	})
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req forms.AppointmentValues
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	f, err := h.forms.Appointment(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	sub, err := f.Submit(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	awaitSubmission(c, sub)
}

// ======================================================
// ROW ACTIONS
// ======================================================

func (h *AppointmentHandler) Action(c *gin.Context) {
	res, err := h.actions.Execute(
		c.Request.Context(),
		domain.EntityAppointment,
		c.Param("id"),
		domain.Action(c.Param("action")),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
