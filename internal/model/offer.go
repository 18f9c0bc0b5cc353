package model

type OfferStatus string

const (
	OfferDraft    OfferStatus = "draft"
	OfferRouting  OfferStatus = "routing"
	OfferApproved OfferStatus = "approved"
	OfferSent     OfferStatus = "sent"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
)

// OfferIn is the request body for creating an offer.
type OfferIn struct {
	CandidateID    string      `json:"candidate_id" validate:"required"`
	CandidateName  string      `json:"candidate_name" validate:"required"`
	Role           string      `json:"role" validate:"required"`
	ProposedSalary string      `json:"proposed_salary" validate:"required"`
	Status         OfferStatus `json:"status" validate:"omitempty,oneof=draft routing approved sent accepted declined"`
	TemplateName   string      `json:"template_name,omitempty"`
}

func (o *OfferIn) ApplyDefaults() {
	if o.Status == "" {
		o.Status = OfferDraft
	}
}

// OfferStatusUpdate is the body of the narrow offer status-transition endpoint.
type OfferStatusUpdate struct {
	Status OfferStatus `json:"status" validate:"required,oneof=draft routing approved sent accepted declined"`
}
