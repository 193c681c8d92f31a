package domain

// ViewerState is the top-level mode of the library view
type ViewerState int

const (
	// ViewerGrid shows the header, search box and grid
	ViewerGrid ViewerState = iota
	// ViewerPlaying shows the embedded view for the open item
	ViewerPlaying
)

func (s ViewerState) String() string {
	switch s {
	case ViewerGrid:
		return "grid"
	case ViewerPlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// NotificationLevel classifies a user-visible notification
type NotificationLevel string

const (
	NotifyInfo    NotificationLevel = "info"
	NotifyWarning NotificationLevel = "warning"
)

// Notification is a transient message shown to the user
type Notification struct {
	Message string
	Level   NotificationLevel
}
