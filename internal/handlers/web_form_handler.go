package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/forms"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
	"github.com/BruksfildServices01/dental-admin/internal/usecase/actions"
)

// WebFormHandler serves the dialogs as pages and the row menu buttons.
type WebFormHandler struct {
	pages   *WebHandler
	forms   *forms.Registry
	actions *actions.RunRowAction
}

func NewWebFormHandler(pages *WebHandler, registry *forms.Registry, actions *actions.RunRowAction) *WebFormHandler {
	return &WebFormHandler{
		pages:   pages,
		forms:   registry,
		actions: actions,
	}
}

const msgMalformedForm = "The form could not be read. Please check the values and try again."

// malformed turns a binding failure into a form-level message.
func malformed(c *gin.Context, err error) error {
	_ = c.Error(err)
	return &forms.ValidationError{Message: msgMalformedForm}
}

func cancelled(c *gin.Context) bool {
	return c.PostForm("cancel") != ""
}

// formStatus picks the status code a re-rendered dialog is sent with.
func formStatus(err error) int {
	if errors.Is(err, forms.ErrSubmitting) {
		return http.StatusConflict
	}
	return http.StatusUnprocessableEntity
}

// ======================================================
// APPOINTMENT DIALOG
// ======================================================

func (h *WebFormHandler) NewAppointment(c *gin.Context) {
	f, err := h.forms.Appointment(c.Request.Context())
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	h.renderAppointment(c, http.StatusOK, f, f.Defaults(), nil)
}

func (h *WebFormHandler) SubmitAppointment(c *gin.Context) {
	ctx := c.Request.Context()
	f, err := h.forms.Appointment(ctx)
	if err != nil {
		h.pages.fail(c, err)
		return
	}

	if cancelled(c) {
		f.Cancel(ctx)
		c.Redirect(http.StatusSeeOther, "/appointments")
		return
	}

	var v forms.AppointmentValues
	if err := c.ShouldBind(&v); err != nil {
		h.renderAppointment(c, http.StatusBadRequest, f, v, malformed(c, err))
		return
	}

	sub, err := f.Submit(ctx, v)
	if err != nil {
		if !isFormError(err) {
			h.pages.fail(c, err)
			return
		}
		h.renderAppointment(c, formStatus(err), f, v, err)
		return
	}

	redirectWhenSaved(c, sub, "/appointments")
}

func (h *WebFormHandler) renderAppointment(c *gin.Context, status int, f *forms.AppointmentForm, v forms.AppointmentValues, err error) {
	opts := f.Options()
	h.pages.render(c, status, "appointment_form", "Schedule New Appointment", gin.H{
		"Message":    formMessage(err),
		"Values":     v,
		"Options":    opts,
		"Errors":     fieldErrors(err),
		"Submitting": f.Submitting(),
		"Today":      timezone.StartOfDay(opts.Now().In(opts.Location)).Format(timezone.DateLayout),
	})
}

// ======================================================
// DENTIST DIALOG
// ======================================================

func (h *WebFormHandler) DentistForm(c *gin.Context) {
	f, err := h.forms.Dentist(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.formLookupFailed(c, err)
		return
	}
	h.renderDentist(c, http.StatusOK, f, f.Defaults(), nil)
}

func (h *WebFormHandler) SubmitDentist(c *gin.Context) {
	ctx := c.Request.Context()
	f, err := h.forms.Dentist(ctx, c.Param("id"))
	if err != nil {
		h.formLookupFailed(c, err)
		return
	}

	if cancelled(c) {
		f.Cancel(ctx)
		c.Redirect(http.StatusSeeOther, "/dentists")
		return
	}

	var v forms.DentistValues
	if err := c.ShouldBind(&v); err != nil {
		h.renderDentist(c, http.StatusBadRequest, f, v, malformed(c, err))
		return
	}

	sub, err := f.Submit(ctx, v)
	if err != nil {
		if !isFormError(err) {
			h.pages.fail(c, err)
			return
		}
		h.renderDentist(c, formStatus(err), f, v, err)
		return
	}

	redirectWhenSaved(c, sub, "/dentists")
}

func (h *WebFormHandler) renderDentist(c *gin.Context, status int, f *forms.DentistForm, v forms.DentistValues, err error) {
	title := "Add New Dentist"
	if f.Mode() == forms.ModeEdit {
		title = "Edit Dentist"
	}
	h.pages.render(c, status, "dentist_form", title, gin.H{
		"Action":          c.Request.URL.Path,
		"Message":         formMessage(err),
		"Mode":            f.Mode(),
		"Values":          v,
		"Specializations": f.Specializations(),
		"Errors":          fieldErrors(err),
		"Submitting":      f.Submitting(),
	})
}

// ======================================================
// USER DIALOG
// ======================================================

func (h *WebFormHandler) UserForm(c *gin.Context) {
	f, err := h.forms.User(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.formLookupFailed(c, err)
		return
	}
	h.renderUser(c, http.StatusOK, f, f.Defaults(), "")
}

func (h *WebFormHandler) SubmitUser(c *gin.Context) {
	ctx := c.Request.Context()
	f, err := h.forms.User(ctx, c.Param("id"))
	if err != nil {
		h.formLookupFailed(c, err)
		return
	}

	if cancelled(c) {
		f.Cancel(ctx)
		c.Redirect(http.StatusSeeOther, "/users")
		return
	}

	var v forms.UserValues
	if err := c.ShouldBind(&v); err != nil {
		_ = c.Error(err)
		h.renderUser(c, http.StatusBadRequest, f, v, msgMalformedForm)
		return
	}

	sub, err := f.Submit(ctx, v)
	if err != nil {
		if !isFormError(err) {
			h.pages.fail(c, err)
			return
		}
		msg := ""
		if ve, ok := forms.AsValidation(err); ok {
			msg = ve.Message
		}
		h.renderUser(c, formStatus(err), f, v, msg)
		return
	}

	redirectWhenSaved(c, sub, "/users")
}

func (h *WebFormHandler) renderUser(c *gin.Context, status int, f *forms.UserForm, v forms.UserValues, message string) {
	title := "Add New User"
	if f.Mode() == forms.ModeEdit {
		title = "Edit User"
	}
	v.Password = ""
	h.pages.render(c, status, "user_form", title, gin.H{
		"Action":  c.Request.URL.Path,
		"Mode":    f.Mode(),
		"Values":  v,
		"Roles":   models.Roles(),
		"Message": message,
	})
}

// ======================================================
// ROW ACTIONS
// ======================================================

// RowAction runs a menu entry and returns to the list. Edit entries open the
// edit dialog instead.
func (h *WebFormHandler) RowAction(entity domain.Entity, listPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("id")

		res, err := h.actions.Execute(ctx, entity, id, domain.Action(c.Param("action")))
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.pages.NotFound(c)
			return
		case err != nil:
			be, ok := httperr.AsBusiness(err)
			if !ok {
				h.pages.fail(c, err)
				return
			}
			if nerr := h.pages.feed.Notify(ctx, notify.Error("Error", be.Message())); nerr != nil {
				h.pages.log.Error("failed to publish notification", "error", nerr)
			}
		case res.Record != nil && res.Action == domain.ActionEdit && entity != domain.EntityAppointment:
			c.Redirect(http.StatusSeeOther, listPath+"/"+id+"/edit")
			return
		}

		c.Redirect(http.StatusSeeOther, back(c, listPath))
	}
}

func (h *WebFormHandler) formLookupFailed(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.pages.NotFound(c)
		return
	}
	h.pages.fail(c, err)
}

func isFormError(err error) bool {
	_, ok := forms.AsValidation(err)
	return ok || errors.Is(err, forms.ErrSubmitting)
}

func formMessage(err error) string {
	if ve, ok := forms.AsValidation(err); ok {
		return ve.Message
	}
	return ""
}

func fieldErrors(err error) map[string]string {
	if ve, ok := forms.AsValidation(err); ok {
		return ve.Fields
	}
	return nil
}
