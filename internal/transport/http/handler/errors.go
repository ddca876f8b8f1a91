package handler

const (
	errInternalServer   = "Internal server error"
	errUnauthorized     = "Unauthorized"
	errUsernameTaken    = "Username is already taken"
	errEntryNotFound    = "Entry not found"
	errUnknownEntryType = "entry_type must be one of: work, business_trip, vacation, sick_leave"
	errInvalidDate      = "date must be formatted as YYYY-MM-DD"
	errInvalidWorkHours = "work_hours is required for work entries and not allowed for other entry types"
)
