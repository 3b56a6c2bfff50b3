package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"centreg/internal/management/models"
	"centreg/internal/management/service"
	"centreg/pkg/domain"
	dErrors "centreg/pkg/domain-errors"
	"centreg/pkg/platform/httputil"
	"centreg/pkg/requestcontext"
)

// Service defines the interface for management request operations.
type Service interface {
	Submit(ctx context.Context, sub service.Submission) (uuid.UUID, error)
	Revoke(ctx context.Context, requestID uuid.UUID, origin models.Origin) (uuid.UUID, error)
	Approve(ctx context.Context, processingID uuid.UUID) error
	Decline(ctx context.Context, processingID uuid.UUID, reason string) error
	Resume(ctx context.Context, processingID uuid.UUID) error
	GetProcessing(ctx context.Context, id uuid.UUID) (*models.Processing, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*models.Request, error)
	ListRequests(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) ([]*models.Request, error)
	Decision(ctx context.Context, processingID uuid.UUID) (models.ProcessingStatus, error)
}

// Handler wires management endpoints to the management service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a management handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the submission and query endpoints on the router. These
// are the endpoints trust parties call.
func (h *Handler) Register(r chi.Router) {
	r.Post("/management/requests", h.HandleSubmit)
	r.Post("/management/requests/{id}/revocation", h.HandleRevoke)
	r.Get("/management/requests", h.HandleListRequests)
	r.Get("/management/requests/{id}", h.HandleGetRequest)
	r.Get("/management/processings/{id}", h.HandleGetProcessing)
	r.Get("/management/processings/{id}/decision", h.HandleGetDecision)
}

// RegisterOperator mounts the decision endpoints. The caller guards the
// router with operator authentication.
func (h *Handler) RegisterOperator(r chi.Router) {
	r.Post("/management/processings/{id}/approval", h.HandleApprove)
	r.Post("/management/processings/{id}/decline", h.HandleDecline)
	r.Post("/management/processings/{id}/resume", h.HandleResume)
}

// HandleSubmit handles POST /management/requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	id, err := h.service.Submit(ctx, req.Parsed())
	if err != nil {
		h.logger.ErrorContext(ctx, "submission rejected",
			"request_id", requestID,
			"kind", req.Kind,
			"origin", req.Origin,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "submission accepted",
		"request_id", requestID,
		"kind", req.Kind,
		"origin", req.Origin,
		"management_request_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusAccepted, SubmitResponse{RequestID: id.String()})
}

// HandleRevoke handles POST /management/requests/{id}/revocation.
func (h *Handler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[RevokeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	compensatingID, err := h.service.Revoke(ctx, id, req.parsedOrigin)
	if err != nil {
		h.logger.ErrorContext(ctx, "revocation rejected",
			"request_id", requestID,
			"management_request_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, RevokeResponse{
		RequestID:             id.String(),
		CompensatingRequestID: optionalID(compensatingID),
	})
}

// HandleApprove handles POST /management/processings/{id}/approval.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "approve", func(ctx context.Context, id uuid.UUID) error {
		return h.service.Approve(ctx, id)
	})
}

// HandleDecline handles POST /management/processings/{id}/decline.
func (h *Handler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DeclineRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	h.decide(w, r, "decline", func(ctx context.Context, id uuid.UUID) error {
		return h.service.Decline(ctx, id, req.Reason)
	})
}

// HandleResume handles POST /management/processings/{id}/resume.
func (h *Handler) HandleResume(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "resume", func(ctx context.Context, id uuid.UUID) error {
		return h.service.Resume(ctx, id)
	})
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, action string, fn func(ctx context.Context, id uuid.UUID) error) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := fn(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "decision failed",
			"request_id", requestID,
			"action", action,
			"processing_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	p, err := h.service.GetProcessing(ctx, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "decision recorded",
		"request_id", requestID,
		"action", action,
		"processing_id", id,
		"status", p.Status,
		"operator", requestcontext.Operator(ctx),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromProcessing(p))
}

// HandleGetRequest handles GET /management/requests/{id}.
func (h *Handler) HandleGetRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, err := h.service.GetRequest(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRequest(req))
}

// HandleGetProcessing handles GET /management/processings/{id}.
func (h *Handler) HandleGetProcessing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.service.GetProcessing(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromProcessing(p))
}

// HandleGetDecision handles GET /management/processings/{id}/decision.
func (h *Handler) HandleGetDecision(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	status, err := h.service.Decision(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, DecisionResponse{
		ProcessingID: id.String(),
		Status:       string(status),
	})
}

// HandleListRequests handles GET /management/requests?server=...&client=...
func (h *Handler) HandleListRequests(w http.ResponseWriter, r *http.Request) {
	server, err := domain.ParseSecurityServerID(r.URL.Query().Get("server"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	client, err := domain.ParseClientID(r.URL.Query().Get("client"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	requests, err := h.service.ListRequests(r.Context(), server, client)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	out := make([]RequestResponse, len(requests))
	for i, req := range requests {
		out[i] = FromRequest(req)
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "malformed identifier in path"))
		return uuid.Nil, false
	}
	return id, true
}
