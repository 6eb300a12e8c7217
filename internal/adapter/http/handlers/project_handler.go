package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	request "survey_tracker/internal/adapter/http/dto/request"
	response "survey_tracker/internal/adapter/http/dto/response"
	"survey_tracker/internal/domain/entities"
	"survey_tracker/internal/usecase"
	"survey_tracker/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentFormat describes the file produced by the schedule export.
type DocumentFormat interface {
	ContentType() string
	FileExtension() string
}

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
	format  DocumentFormat
}

func NewProjectHandler(uc usecase.IProjectUseCase, format DocumentFormat) *ProjectHandler {
	return &ProjectHandler{usecase: uc, format: format}
}

// CreateProject godoc
// @Summary      Add a project by hand
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      request.ProjectRequest  true  "Project"
// @Success      201      {object}  response.ProjectResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}

	p, err := h.usecase.AddProject(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// ListProjects godoc
// @Summary      List projects in insertion order
// @Tags         projects
// @Produce      json
// @Success      200  {array}  response.ProjectResponse
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	list, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(list))
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.ProjectResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// ExportSchedule godoc
// @Summary      Download the project schedule as a spreadsheet
// @Tags         projects
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      501  {object}  pkg.HTTPError
// @Router       /projects/export [get]
func (h *ProjectHandler) ExportSchedule(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.usecase.ExportSchedule(c.Request.Context(), &buf); err != nil {
		writeError(c, mapProjectError(err))
		return
	}

	contentType, ext := "application/octet-stream", ""
	if h.format != nil {
		contentType, ext = h.format.ContentType(), h.format.FileExtension()
	}
	filename := fmt.Sprintf("project_schedule_%s%s", time.Now().UTC().Format("20060102_150405"), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// UpdateDates godoc
// @Summary      Set or clear one milestone date
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id     path      string                       true  "Project ID"
// @Param        dates  body      request.ProjectDatesRequest  true  "Milestone"
// @Success      200    {object}  response.ProjectResponse
// @Success      204    "Unknown project, nothing changed"
// @Failure      400    {object}  pkg.HTTPError
// @Router       /projects/{id}/dates [patch]
func (h *ProjectHandler) UpdateDates(c *gin.Context) {
	var payload request.ProjectDatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	date, err := request.ParseOptionalDate(payload.Date)
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}

	h.respond(c)(h.usecase.UpdateDates(c.Request.Context(), c.Param("id"), payload.Milestone(), date))
}

// SetStatus godoc
// @Summary      Change the project status
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id      path      string                        true  "Project ID"
// @Param        status  body      request.ProjectStatusRequest  true  "Status"
// @Success      200     {object}  response.ProjectResponse
// @Success      204     "Unknown project, nothing changed"
// @Router       /projects/{id}/status [patch]
func (h *ProjectHandler) SetStatus(c *gin.Context) {
	var payload request.ProjectStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c)(h.usecase.SetStatus(c.Request.Context(), c.Param("id"), entities.ProjectStatus(payload.Status)))
}

// SetNotes godoc
// @Summary      Replace the project notes
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id     path      string                       true  "Project ID"
// @Param        notes  body      request.ProjectNotesRequest  true  "Notes"
// @Success      200    {object}  response.ProjectResponse
// @Router       /projects/{id}/notes [patch]
func (h *ProjectHandler) SetNotes(c *gin.Context) {
	var payload request.ProjectNotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c)(h.usecase.SetNotes(c.Request.Context(), c.Param("id"), payload.Notes))
}

// SetMultipleDates godoc
// @Summary      Flag whether the project spans several visit dates
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string                               true  "Project ID"
// @Param        flag  body      request.ProjectMultipleDatesRequest  true  "Flag"
// @Success      200   {object}  response.ProjectResponse
// @Router       /projects/{id}/multiple-dates [patch]
func (h *ProjectHandler) SetMultipleDates(c *gin.Context) {
	var payload request.ProjectMultipleDatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c)(h.usecase.SetMultipleDates(c.Request.Context(), c.Param("id"), *payload.MultipleDates))
}

// respond renders the result of a project mutation; a zero project means the id was unknown.
func (h *ProjectHandler) respond(c *gin.Context) func(entities.Project, error) {
	return func(p entities.Project, err error) {
		if err != nil {
			writeError(c, mapProjectError(err))
			return
		}
		if p.ID == "" {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, response.FromProject(p))
	}
}

func mapProjectError(err error) *pkg.AppError {
	if appErr, ok := mapInputError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExporterNotConfigured):
		return pkg.NewDomainErrorSimple("EXPORT_NOT_CONFIGURED", "Schedule export is not available", http.StatusNotImplemented)
	default:
		return internalError(err)
	}
}
