package handler

const (
	errInternalServer     = "Internal server error"
	errRegistrationFailed = "Registration Failed"
	errInvalidCredentials = "Invalid Email or Password"
)
