package api

import "time"

// ProposalStatus tracks a proposal from submission to decision.
type ProposalStatus string

const (
	ProposalPending   ProposalStatus = "PENDING"
	ProposalAccepted  ProposalStatus = "ACCEPTED"
	ProposalRejected  ProposalStatus = "REJECTED"
	ProposalWithdrawn ProposalStatus = "WITHDRAWN"
)

// Proposal is a freelancer's bid on a project.
type Proposal struct {
	ID          int64          `json:"id"`
	ProjectID   int64          `json:"project"`
	CoverLetter string         `json:"cover_letter"`
	Amount      float64        `json:"amount"`
	Status      ProposalStatus `json:"status"`
	DocumentURL string         `json:"document_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// SubmitProposalRequest bids on a project via POST /proposals/.
type SubmitProposalRequest struct {
	ProjectID   int64   `json:"project"      validate:"required"`
	CoverLetter string  `json:"cover_letter" validate:"required"`
	Amount      float64 `json:"amount"       validate:"required,gt=0"`
}

// ProposalFilter narrows GET /proposals/. Zero values are not sent at all.
type ProposalFilter struct {
	Page    int
	Project int64
	Status  ProposalStatus
}
