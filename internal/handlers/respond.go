package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/dto"
	"github.com/BruksfildServices01/dental-admin/internal/export"
	"github.com/BruksfildServices01/dental-admin/internal/forms"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/httpresp"
)

// writeError maps use case and form errors onto the JSON error shape.
func writeError(c *gin.Context, err error) {
	if ve, ok := forms.AsValidation(err); ok {
		httperr.Validation(c, ve.Message, ve.Fields)
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		httperr.NotFound(c, "not_found", "Record not found.")
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		switch be.Code {
		case "submission_in_progress", "invalid_state":
			httperr.Conflict(c, be.Code, be.Message())
		default:
			httperr.BadRequest(c, be.Code, be.Message())
		}
		return
	}

	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Something went wrong.")
}

// awaitSubmission answers once the simulated save has completed. A client
// that goes away does not abort the save.
func awaitSubmission(c *gin.Context, sub *forms.Submission) {
	if err := sub.Wait(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.Created(c, dto.SubmissionDTO{
		ID:           sub.ID,
		Notification: sub.Notification,
	})
}

// redirectWhenSaved sends the browser back to path once the save completed.
// A client that went away gets nothing; the error is kept on the context.
func redirectWhenSaved(c *gin.Context, sub *forms.Submission, path string) {
	if err := sub.Wait(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}
	c.Redirect(http.StatusSeeOther, path)
}

// writeWorkbook streams t as an .xlsx attachment.
func writeWorkbook(c *gin.Context, entity string, loc *time.Location, t export.Table) {
	var buf bytes.Buffer
	if err := export.Write(&buf, t); err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "export_failed", "Could not build the export.")
		return
	}

	filename := export.Filename(entity, time.Now().In(loc).Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// filters reads the shared ?query=&status= pair.
func filters(c *gin.Context) (string, domain.StatusFilter) {
	return c.Query("query"), domain.StatusFilter(c.DefaultQuery("status", domain.StatusAll))
}
