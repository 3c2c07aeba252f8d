package handlers

import (
	"io"
	"net/http"
	"strconv"

	"mathsolver-backend/application/commands"
	"mathsolver-backend/application/commands/bus"
	cmdhandlers "mathsolver-backend/application/commands/handlers"
	"mathsolver-backend/application/queries"
	querybus "mathsolver-backend/application/queries/bus"
	"mathsolver-backend/domain/core/entities"
	"mathsolver-backend/domain/core/valueobjects"
	"mathsolver-backend/pkg/auth"
	"mathsolver-backend/pkg/common"
	pkgerrors "mathsolver-backend/pkg/errors"
	"mathsolver-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProblemHandler handles problem-related HTTP requests
type ProblemHandler struct {
	orchestrator *cmdhandlers.SolveProblemOrchestrator
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewProblemHandler creates a new problem handler
func NewProblemHandler(
	orchestrator *cmdhandlers.SolveProblemOrchestrator,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *ProblemHandler {
	return &ProblemHandler{
		orchestrator: orchestrator,
		commandBus:   commandBus,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// SolveResponse represents the response for solving a problem
type SolveResponse struct {
	Question string              `json:"question"`
	Answer   entities.MathAnswer `json:"answer"`
}

// HistoryRequest represents the query parameters for a history listing
type HistoryRequest struct {
	Limit int `validate:"min=1,max=100"`
}

// DeleteResponse represents the response for deleting a history entry
type DeleteResponse struct {
	Message   string `json:"message"`
	ProblemID string `json:"problem_id"`
	UserID    string `json:"user_id"`
	DeletedAt string `json:"deleted_at"`
}

// Solve handles POST /solve. The problem image arrives as a multipart
// form field named "file".
func (h *ProblemHandler) Solve(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		pkgerrors.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	// Cap the parse buffer at the upload limit plus form overhead
	if err := r.ParseMultipartForm(valueobjects.MaxImageBytes + 1<<20); err != nil {
		pkgerrors.WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		pkgerrors.WriteError(w, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, valueobjects.MaxImageBytes+1))
	if err != nil {
		pkgerrors.WriteError(w, http.StatusBadRequest, "Failed to read file upload")
		return
	}

	contentType := header.Header.Get("Content-Type")
	upload, err := valueobjects.NewImageUpload(data, contentType, header.Filename)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	cmd := commands.SolveProblemCommand{
		UserID: userCtx.UserID,
		Upload: upload,
	}

	problem, err := h.orchestrator.Handle(r.Context(), cmd)
	if err != nil {
		h.logger.Error("Failed to solve problem",
			zap.String("userID", userCtx.UserID),
			zap.String("filename", header.Filename),
			zap.Error(err),
		)
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, SolveResponse{
		Question: problem.Question(),
		Answer:   problem.Answer(),
	})
}

// GetHistory handles GET /history
func (h *ProblemHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		pkgerrors.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	histReq := HistoryRequest{Limit: queries.DefaultHistoryLimit}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			pkgerrors.WriteError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		histReq.Limit = parsed
	}
	if err := utils.ValidateStruct(histReq); err != nil {
		pkgerrors.WriteError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	query := queries.GetHistoryQuery{
		UserID: userCtx.UserID,
		Limit:  histReq.Limit,
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	history, ok := result.(*queries.GetHistoryResult)
	if !ok {
		pkgerrors.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	common.RespondJSON(w, http.StatusOK, history)
}

// DeleteProblem handles DELETE /history/{problemID}
func (h *ProblemHandler) DeleteProblem(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		pkgerrors.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	problemID := chi.URLParam(r, "problemID")
	if problemID == "" {
		pkgerrors.WriteError(w, http.StatusBadRequest, "Problem ID is required")
		return
	}
	if _, err := uuid.Parse(problemID); err != nil {
		pkgerrors.WriteError(w, http.StatusBadRequest, "Invalid problem ID format")
		return
	}

	cmd := commands.DeleteProblemCommand{
		UserID:    userCtx.UserID,
		ProblemID: problemID,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, DeleteResponse{
		Message:   "Problem deleted successfully",
		ProblemID: problemID,
		UserID:    userCtx.UserID,
		DeletedAt: utils.NowRFC3339(),
	})
}
