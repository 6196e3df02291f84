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
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/usecase/actions"
	"github.com/BruksfildServices01/dental-admin/internal/usecase/lists"
)

type DentistHandler struct {
	list    *lists.ListDentists
	actions *actions.RunRowAction
	forms   *forms.Registry
	loc     *time.Location
}

func NewDentistHandler(
	list *lists.ListDentists,
	actions *actions.RunRowAction,
	registry *forms.Registry,
	loc *time.Location,
) *DentistHandler {
	return &DentistHandler{
		list:    list,
		actions: actions,
		forms:   registry,
		loc:     loc,
	}
}

func (h *DentistHandler) List(c *gin.Context) {
	query, status := filters(c)

	v, err := h.list.Execute(c.Request.Context(), query, status)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, v.Records, v.Query, string(v.Status))
}

func (h *DentistHandler) Export(c *gin.Context) {
	query, status := filters(c)

	v, err := h.list.Execute(c.Request.Context(), query, status)
	if err != nil {
		writeError(c, err)
		return
	}

	writeWorkbook(c, "dentists", h.loc, export.Dentists(v.Records))
}

func (h *DentistHandler) Options(c *gin.Context) {
	f, err := h.forms.Dentist(c.Request.Context(), "")
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.DentistOptionsDTO{
		Specializations: f.Specializations(),
		Statuses:        []string{string(models.StatusActive), string(models.StatusInactive)},
	})
}

// Defaults returns the values the dialog opens with; an empty id is the add
// dialog.
func (h *DentistHandler) Defaults(c *gin.Context) {
	f, err := h.forms.Dentist(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.FormDefaultsDTO{Mode: string(f.Mode()), Values: f.Defaults()})
}

func (h *DentistHandler) Create(c *gin.Context) {
	h.submit(c, "")
}

func (h *DentistHandler) Update(c *gin.Context) {
	h.submit(c, c.Param("id"))
}

func (h *DentistHandler) submit(c *gin.Context, id string) {
	var req forms.DentistValues
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	f, err := h.forms.Dentist(c.Request.Context(), id)
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

func (h *DentistHandler) Action(c *gin.Context) {
	res, err := h.actions.Execute(
		c.Request.Context(),
		domain.EntityDentist,
		c.Param("id"),
		domain.Action(c.Param("action")),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
