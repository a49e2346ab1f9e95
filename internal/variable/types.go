package variable

import "skylift/internal/model"

type SetInput struct {
	ProjectID string
	// Pairs preserves the K=V pairs exactly as supplied.
	Pairs map[string]string
}

type SetOutput struct {
	Updated int
}

type ListOutput struct {
	Variables []model.Variable
}

type UnsetInput struct {
	ProjectID string
	Key       string
}
