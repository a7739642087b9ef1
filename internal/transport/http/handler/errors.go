package handler

const (
	errInternalServer = "Internal server error"
	errJobNotFound    = "Job not found"
	errEmailTaken     = "This email is already registered"
	errBadCredentials = "Invalid email or password"
)
