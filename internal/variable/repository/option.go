package repository

type UpsertOptions struct {
	ProjectID string
	Key       string
	Value     string
	Injected  bool
}

type GetOneOptions struct {
	ProjectID string
	Key       string
}
