package app

// Constants
const (
	DefaultPort     = "8080"
	DefaultTimezone = "America/New_York"
	TimezoneEnvVar  = "TODAY_TZ"

	// Date layouts
	DateLayout     = "2006-01-02"
	LongDateLayout = "Monday, January 2, 2006"

	// Error messages
	ErrInvalidYear      = "Invalid year"
	ErrInvalidFormat    = "Invalid format"
	ErrInternalServer   = "Internal server error"
	ErrMethodNotAllowed = "Method not allowed"

	// Health status
	StatusHealthy = "Healthy"

	// ICS constants
	ICSProductID    = "-//TodayAPI//Special Days//EN"
	ICSCalendarName = "Special Days"
	ICSDomain       = "today-api.local"
)
