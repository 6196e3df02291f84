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

type UserHandler struct {
	list    *lists.ListUsers
	actions *actions.RunRowAction
	forms   *forms.Registry
	loc     *time.Location
}

func NewUserHandler(
	list *lists.ListUsers,
	actions *actions.RunRowAction,
	registry *forms.Registry,
	loc *time.Location,
) *UserHandler {
	return &UserHandler{
		list:    list,
		actions: actions,
		forms:   registry,
		loc:     loc,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	query, status := filters(c)

	v, err := h.list.Execute(c.Request.Context(), query, status)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, v.Records, v.Query, string(v.Status))
}

func (h *UserHandler) Export(c *gin.Context) {
	query, status := filters(c)

	v, err := h.list.Execute(c.Request.Context(), query, status)
	if err != nil {
		writeError(c, err)
		return
	}

	writeWorkbook(c, "users", h.loc, export.Users(v.Records))
}

func (h *UserHandler) Options(c *gin.Context) {
	roles := make([]string, 0, len(models.Roles()))
	for _, r := range models.Roles() {
		roles = append(roles, string(r))
	}

	httpresp.OK(c, dto.UserOptionsDTO{
		Roles:    roles,
		Statuses: []string{string(models.StatusActive), string(models.StatusInactive)},
	})
}

func (h *UserHandler) Defaults(c *gin.Context) {
	f, err := h.forms.User(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.FormDefaultsDTO{Mode: string(f.Mode()), Values: f.Defaults()})
}

func (h *UserHandler) Create(c *gin.Context) {
	h.submit(c, "")
}

func (h *UserHandler) Update(c *gin.Context) {
	h.submit(c, c.Param("id"))
}

// submit reports a failed validation both as the error notification the
// dialog shows and as a 422 body.
func (h *UserHandler) submit(c *gin.Context, id string) {
	var req forms.UserValues
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	f, err := h.forms.User(c.Request.Context(), id)
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

func (h *UserHandler) Action(c *gin.Context) {
	res, err := h.actions.Execute(
		c.Request.Context(),
		domain.EntityUser,
		c.Param("id"),
		domain.Action(c.Param("action")),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
