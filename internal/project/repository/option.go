package repository

import "skylift/internal/model"

type CreateOptions struct {
	Name        string
	Slug        string
	OwnerID     string
	Environment model.Environment
}

// GetOneOptions filters are AND-combined; zero values are ignored.
type GetOneOptions struct {
	ID      string
	Slug    string
	OwnerID string
}

type ListOptions struct {
	OwnerID string
}
