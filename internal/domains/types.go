package domains

import "skylift/internal/model"

type GenerateOutput struct {
	Domain model.Domain
	// Existed reports whether the generated domain was already there.
	Existed bool
}

type AddCustomInput struct {
	ProjectID string
	Hostname  string
}

type AddCustomOutput struct {
	Domain model.Domain
	// TXTRecord is the record name the owner must create, e.g.
	// "_skylift-verify.api.example.com".
	TXTRecord string
}
