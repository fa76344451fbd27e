package modules

// Application info - centralized
const (
	AppName        = "EngageDeck"
	AppVersion     = "0.1.0"
	AppDescription = "Terminal dashboard for B2B customer engagement"
)
