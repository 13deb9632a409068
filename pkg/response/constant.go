package response

const (
	MessageSuccess = "Success"

	ValidationErrorCode     = 1
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429

	DefaultErrorMessage    = "Something went wrong"
	TooManyRequestsMessage = "Too many requests, please slow down"
)
