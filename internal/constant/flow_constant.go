package constant

const (
	// Notice kinds pushed over the session websocket.
	NoticeSelectionLimit       = "selection_limit"
	NoticeGuidedFiltersApplied = "guided_filters_applied"

	// Module names used for structured log entries.
	ModuleFlow    = "flow"
	ModuleCatalog = "catalog"
	ModuleAdmin   = "admin"

	// Release identity reported by the meta endpoint.
	AppVersion  = 9
	AppCodename = "Apple"

	AdminUserId = "admin"
	AdminRole   = "admin"
)
