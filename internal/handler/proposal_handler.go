package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"propwrite/internal/errors"
	"propwrite/internal/service"
)

// ProposalHandler handles proposal generation and retrieval endpoints.
type ProposalHandler struct {
	proposalService service.ProposalService
}

// NewProposalHandler creates a new proposal handler.
func NewProposalHandler(proposalService service.ProposalService) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService}
}

// GenerateRequest represents a proposal generation request.
type GenerateRequest struct {
	UserPrompt   string `json:"userPrompt"`
	SelectedTone string `json:"selectedTone"`
}

// GenerateResponse represents a successful generation response.
type GenerateResponse struct {
	Proposal string `json:"proposal"`
}

// GenerateFailedResponse is returned when the proposal was generated but could
// not be saved; the generated text is still delivered alongside the error.
type GenerateFailedResponse struct {
	Error    string `json:"error"`
	Proposal string `json:"proposal"`
}

// Generate godoc
// @Summary Generate a proposal from a free-text description and tone
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateRequest true "Description and tone"
// @Success 200 {object} GenerateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /proposals/generate [post]
func (h *ProposalHandler) Generate(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	content, err := h.proposalService.Generate(c.Request().Context(), userID, req.UserPrompt, req.SelectedTone)
	if err != nil {
		var saveErr *errors.SaveFailedError
		if stderrors.As(err, &saveErr) {
			// Generated but not saved: deliver the text with the error.
			return c.JSON(http.StatusInternalServerError, GenerateFailedResponse{
				Error:    saveErr.Error(),
				Proposal: saveErr.Content,
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, GenerateResponse{Proposal: content})
}

// ListProposals godoc
// @Summary List the authenticated user's proposals, newest first
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Proposal
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /proposals [get]
func (h *ProposalHandler) ListProposals(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	proposals, err := h.proposalService.ListProposals(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, proposals)
}

// GetProposal godoc
// @Summary Get one of the authenticated user's proposals by ID
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} model.Proposal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid proposal id",
			Code:  "INVALID_UUID",
		})
	}

	proposal, err := h.proposalService.GetProposal(c.Request().Context(), userID, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, proposal)
}
