package constants

// Context keys
const (
	ContextKeyUser = "currentUser"
)

// Pagination limits
const (
	MinPage     = 1
	MaxPageSize = 500
)
