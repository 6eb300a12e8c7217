package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "survey_tracker/internal/adapter/http/dto/request"
	response "survey_tracker/internal/adapter/http/dto/response"
	"survey_tracker/internal/usecase"
	"survey_tracker/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for quotes and their instruction workflow.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary      Create a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      request.QuoteRequest  true  "Quote"
// @Success      201    {object}  response.QuoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	q, err := h.usecase.AddQuote(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// ListQuotes godoc
// @Summary      List quotes in insertion order
// @Tags         quotes
// @Produce      json
// @Success      200  {array}  response.QuoteResponse
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	list, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(list))
}

// GroupQuotes godoc
// @Summary      List quotes grouped by discipline and survey type
// @Tags         quotes
// @Produce      json
// @Success      200  {array}  response.QuoteGroupResponse
// @Router       /quotes/grouped [get]
func (h *QuoteHandler) GroupQuotes(c *gin.Context) {
	groups, err := h.usecase.GroupQuotes(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteGroups(groups))
}

// GetQuote godoc
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateQuote godoc
// @Summary      Replace the editable fields of a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id     path      string                true  "Quote ID"
// @Param        quote  body      request.QuoteRequest  true  "Quote"
// @Success      200    {object}  response.QuoteResponse
// @Success      204    "Unknown quote, nothing changed"
// @Failure      400    {object}  pkg.HTTPError
// @Router       /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	q, err := h.usecase.EditQuote(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	if q.ID == "" {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// SetInstruction godoc
// @Summary      Record the organization's decision on a quote
// @Description  Moving to "yes" creates the project; moving away from "yes" removes it.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id           path      string                      true  "Quote ID"
// @Param        instruction  body      request.InstructionRequest  true  "Decision"
// @Success      200          {object}  response.QuoteResponse
// @Success      204          "Unknown quote, nothing changed"
// @Failure      400          {object}  pkg.HTTPError
// @Router       /quotes/{id}/instruction [patch]
func (h *QuoteHandler) SetInstruction(c *gin.Context) {
	var payload request.InstructionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	q, err := h.usecase.SetInstruction(c.Request.Context(), c.Param("id"), payload.Decision())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	if q.ID == "" {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// DeleteQuote godoc
// @Summary      Delete a quote
// @Description  Requires confirm=true. Projects derived from the quote are kept.
// @Tags         quotes
// @Param        id       path   string  true  "Quote ID"
// @Param        confirm  query  bool    true  "Explicit confirmation"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	if _, err := h.usecase.DeleteQuote(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr, ok := mapInputError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeleteNotConfirmed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_CONFIRMED", "Deleting a quote requires confirm=true", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
