package constants

const (
	UnknownRoom = "Unknown Room"

	MessageWorkingFromHome = "You are working from home today."
	MessageOfficeNotFound  = "Could not find office information."
	MessageDeskNotFound    = "Could not find desk information."
	MessageAssignedFormat  = "You are assigned to %s today."
	MessageErrorFormat     = "Error: %s"

	DefaultSlackChannel = "android-dev"
)
