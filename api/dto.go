/*
dto.go - Request/response data structures for the agreement API

PURPOSE:
  Wire shapes for the HTTP layer. View models themselves live in the
  render package (they ARE the response bodies for agreement pages);
  this file holds everything around them: listings, action payloads,
  scenario metadata, and the error envelope.

SEE ALSO:
  - handlers.go: Producers and consumers of these types
  - render/model.go: The page view models
*/
package api

// AgreementSummaryDTO is one entry in the cached agreement listing.
type AgreementSummaryDTO struct {
	AgreementID string `json:"agreementId"`
	Status      string `json:"status"`
	FetchedAt   string `json:"fetchedAt"`
}

// ActionRequest is the POST payload for an agreement page. Action
// selects the controller; Confirm carries the terms checkbox value for
// accept-offer ("confirmed" when ticked).
type ActionRequest struct {
	Action  string `json:"action"`
	Confirm string `json:"confirm"`
}

// AcceptOfferResponse is returned when an offer is accepted.
type AcceptOfferResponse struct {
	Accepted bool   `json:"accepted"`
	Redirect string `json:"redirect"`
}

// AcceptPageResponse is the "are you sure" page shown before accepting.
type AcceptPageResponse struct {
	PageTitle string `json:"pageTitle"`
}

// ValidationResponse reports accept-offer checkbox validation.
type ValidationResponse struct {
	Valid bool `json:"valid"`
}

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects the scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// HealthResponse is the platform health-check body.
type HealthResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope for all handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
