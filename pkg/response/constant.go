package response

// Message and code defaults for the standard envelope.
const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "internal server error"

	InternalServerErrorCode = 500
)
