/*
handlers.go - HTTP API handlers for the agreement presentation service

PURPOSE:
  Exposes the presentation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  GET    /health                    Platform health check
  GET    /api/agreements            List cached agreements
  GET    /api/agreements/{id}       Agreement page model by status
  POST   /api/agreements/{id}       Dispatch an action (accept flow)
  GET    /api/scenarios             List demo scenarios
  POST   /api/scenarios/load        Load a demo scenario
  POST   /api/scenarios/reset       Clear the cache

REQUEST FLOW:
  1. Load the agreement: cache first, then backend fetch (cached on
     success) using the caller's x-encrypted-auth token
  2. Select the controller by agreement status and POST action,
     mirroring the offer state machine; a confirmed accept-offer is
     recorded with the backend and the cached document dropped
  3. Build the page model with the render package
  4. Serialize; map sentinel errors onto 400/401/404/500

ERROR HANDLING:
  - 400: Unknown status, unrecognised action, terms not confirmed
  - 401: Backend rejected the auth token
  - 404: Offer not found (backend or cache)
  - 500: Backend/store failures

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"errors"
	"net/http"
	"path"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/warp/agreement-engine/agreement"
	"github.com/warp/agreement-engine/client"
	"github.com/warp/agreement-engine/render"
	"github.com/warp/agreement-engine/store/sqlite"
)

// Actions accepted in POST payloads.
const (
	ActionReviewOffer         = "review-offer"
	ActionDisplayAccept       = "display-accept"
	ActionAcceptOffer         = "accept-offer"
	ActionValidateAcceptOffer = "validate-accept-offer"
)

// ConfirmValue is the checkbox value sent when the applicant has agreed
// to the terms and conditions.
const ConfirmValue = "confirmed"

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   *sqlite.Store
	Backend *client.Client // nil when running cache-only (demo mode)
}

// NewHandler creates a new handler with the given store and backend
// client. Backend may be nil; agreements then come from the cache only.
func NewHandler(store *sqlite.Store, backend *client.Client) *Handler {
	return &Handler{Store: store, Backend: backend}
}

// =============================================================================
// AGREEMENT HANDLERS
// =============================================================================

// Health answers the platform health check.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Message: "success"})
}

// ListAgreements returns the cached agreement documents.
func (h *Handler) ListAgreements(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListAgreements(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list agreements", err)
		return
	}

	dtos := make([]AgreementSummaryDTO, len(records))
	for i, rec := range records {
		dtos[i] = AgreementSummaryDTO{
			AgreementID: rec.AgreementID,
			Status:      string(rec.Status),
			FetchedAt:   rec.FetchedAt.Format(time.RFC3339),
		}
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetAgreement renders the page model for the agreement's current
// status: the review-offer model while offered, the view-agreement
// model once accepted or withdrawn.
func (h *Handler) GetAgreement(w http.ResponseWriter, r *http.Request) {
	agreementID := chi.URLParam(r, "agreementId")

	a, err := h.loadAgreement(r.Context(), agreementID, r.Header.Get(client.AuthHeader))
	if err != nil {
		writeAgreementError(w, err)
		return
	}

	switch a.Status {
	case agreement.StatusOffered:
		writeJSON(w, http.StatusOK, render.BuildReviewOfferModel(a))
	case agreement.StatusAccepted, agreement.StatusWithdrawn:
		writeJSON(w, http.StatusOK, render.BuildViewAgreementModel(a))
	default:
		writeError(w, http.StatusBadRequest, "Agreement is in an unknown state", nil)
	}
}

// PostAgreementAction dispatches a POST action against the agreement,
// mirroring the offer state machine: while offered the action selects
// between review, the accept page, and accepting; terminal states
// always render the view-agreement model.
func (h *Handler) PostAgreementAction(w http.ResponseWriter, r *http.Request) {
	agreementID := chi.URLParam(r, "agreementId")

	var req ActionRequest
	if r.Body != nil {
		// An empty or malformed body falls through to the default
		// review action, matching the tolerant upstream behaviour.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	a, err := h.loadAgreement(r.Context(), agreementID, r.Header.Get(client.AuthHeader))
	if err != nil {
		writeAgreementError(w, err)
		return
	}

	switch a.Status {
	case agreement.StatusOffered:
		h.dispatchOfferedAction(w, r, agreementID, a, req)
	case agreement.StatusAccepted, agreement.StatusWithdrawn:
		writeJSON(w, http.StatusOK, render.BuildViewAgreementModel(a))
	default:
		writeError(w, http.StatusBadRequest, "Agreement is in an unknown state", nil)
	}
}

func (h *Handler) dispatchOfferedAction(w http.ResponseWriter, r *http.Request, agreementID string, a *agreement.Agreement, req ActionRequest) {
	switch req.Action {
	case ActionValidateAcceptOffer:
		writeJSON(w, http.StatusOK, ValidationResponse{Valid: req.Confirm == ConfirmValue})

	case ActionDisplayAccept:
		writeJSON(w, http.StatusOK, AcceptPageResponse{PageTitle: "Accept your agreement offer"})

	case ActionAcceptOffer:
		if req.Confirm != ConfirmValue {
			writeError(w, http.StatusBadRequest, "Please agree with the Terms and Conditions", nil)
			return
		}
		if err := h.acceptOffer(r.Context(), agreementID, r.Header.Get(client.AuthHeader), req); err != nil {
			writeAgreementError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, AcceptOfferResponse{
			Accepted: true,
			Redirect: path.Join(baseURL(r), agreementID),
		})

	case ActionReviewOffer, "":
		writeJSON(w, http.StatusOK, render.BuildReviewOfferModel(a))

	default:
		// Unknown actions fall back to the review page rather than
		// failing the request.
		writeJSON(w, http.StatusOK, render.BuildReviewOfferModel(a))
	}
}

// acceptOffer records the acceptance with the grants backend and drops
// the cached document, so the next load refetches the agreement with
// its new status. Cache-only mode has no upstream to record against;
// the response alone stands.
func (h *Handler) acceptOffer(ctx context.Context, agreementID, auth string, req ActionRequest) error {
	if h.Backend == nil {
		return nil
	}
	if err := h.Backend.PostAction(ctx, agreementID, auth, req); err != nil {
		return err
	}
	// A stale offered document would keep masking an agreement that is
	// now accepted.
	return h.Store.DeleteAgreement(ctx, agreementID)
}

// loadAgreement returns the agreement document: cache first, then a
// backend fetch which is cached on success.
func (h *Handler) loadAgreement(ctx context.Context, agreementID, auth string) (*agreement.Agreement, error) {
	if rec, err := h.Store.GetAgreement(ctx, agreementID); err == nil {
		var a agreement.Agreement
		if err := json.Unmarshal(rec.Payload, &a); err == nil {
			return &a, nil
		}
		// A corrupt cache entry falls through to a refetch.
	}

	if h.Backend == nil {
		return nil, agreement.ErrAgreementNotCached
	}

	a, err := h.Backend.GetAgreement(ctx, agreementID, auth)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(a); err == nil {
		// Cache write failures are not fatal; the page still renders.
		_ = h.Store.SaveAgreement(ctx, sqlite.Record{
			AgreementID: agreementID,
			Status:      a.Status,
			Payload:     payload,
		})
	}
	return a, nil
}

// baseURL reads the reverse-proxy base path from the request headers.
func baseURL(r *http.Request) string {
	if base := r.Header.Get("x-base-url"); base != "" {
		return base
	}
	return "/"
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeAgreementError(w http.ResponseWriter, err error) {
	switch {
	case agreement.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Offer not found", err)
	case errors.Is(err, agreement.ErrNotAuthorised):
		writeError(w, http.StatusUnauthorized, "Your account is not authorised to view/accept this offer agreement", nil)
	default:
		writeError(w, http.StatusInternalServerError, "Unable to load agreement", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
