package model

import "time"

// DomainKind distinguishes platform-generated domains from customer ones.
type DomainKind string

const (
	DomainGenerated DomainKind = "generated"
	DomainCustom    DomainKind = "custom"
)

// DomainStatus is the verification state of a domain.
type DomainStatus string

const (
	DomainStatusActive   DomainStatus = "active"
	DomainStatusPending  DomainStatus = "pending" // custom domain awaiting DNS verification
	DomainStatusDisabled DomainStatus = "disabled"
)

// Domain is a hostname routing traffic to a project's active deployment.
type Domain struct {
	ID        string
	ProjectID string
	Hostname  string
	Kind      DomainKind
	Status    DomainStatus

	// VerificationToken is the TXT record value for custom domain ownership.
	VerificationToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}
