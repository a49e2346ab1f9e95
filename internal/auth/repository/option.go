package repository

type CreateUserOptions struct {
	Email        string
	PasswordHash string
}

type GetUserOptions struct {
	ID    string
	Email string
}

type CreateTokenOptions struct {
	UserID    string
	Name      string
	TokenHash string
}
