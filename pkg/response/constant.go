package response

// Shared response constants.
const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "internal server error"

	DateFormat     = "02/01/2006"
	DateTimeFormat = "02/01/2006 15:04"
)
