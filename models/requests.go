package models

// CreateAppRequest is the body of POST /api/console/apps.
type CreateAppRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Mode           AppMode `json:"mode"`
	Status         string  `json:"status"`
	IsHidden       string  `json:"is_hidden"`
	Icon           string  `json:"icon"`
	IconType       string  `json:"icon_type"`
	IconBackground string  `json:"icon_background"`
}

// UpdateAppRequest is the body of PUT /api/console/apps/{appID}.
type UpdateAppRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	IconType       string `json:"icon_type"`
	IconBackground string `json:"icon_background"`
}

// StatusRequest toggles an app or banner between "normal" and "abnormal".
type StatusRequest struct {
	Status string `json:"status"`
}

// HiddenRequest toggles app visibility between "hidden" and "display".
type HiddenRequest struct {
	IsHidden string `json:"is_hidden"`
}

// NameRequest renames an app, a tag, or a conversation.
type NameRequest struct {
	Name string `json:"name"`
}

// SiteStatusRequest toggles the app's published web UI.
type SiteStatusRequest struct {
	EnableSite bool `json:"enable_site"`
}

// APIStatusRequest toggles the app's service API.
type APIStatusRequest struct {
	EnableAPI bool `json:"enable_api"`
}

// IconRequest replaces an app icon.
type IconRequest struct {
	Icon           string `json:"icon"`
	IconBackground string `json:"icon_background"`
}

// CreateAdvertisingRequest is the body of POST /api/console/advertising.
type CreateAdvertisingRequest struct {
	Name        string `json:"name"`
	Weigh       int    `json:"weigh"`
	Icon        string `json:"icon"`
	IconType    string `json:"icon_type"`
	StartedTime string `json:"started_time"`
	EndedTime   string `json:"ended_time"`
	RedirectURL string `json:"redirect_url"`
}

// UpdateAdvertisingRequest is the body of PUT /api/console/advertising/{adID}.
type UpdateAdvertisingRequest struct {
	Name        string `json:"name"`
	Weigh       int    `json:"weigh"`
	Icon        string `json:"icon"`
	StartedTime string `json:"started_time"`
	EndedTime   string `json:"ended_time"`
	RedirectURL string `json:"redirect_url"`
}

// CreateTagRequest is the body of POST /api/console/tags.
type CreateTagRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// SaveTagBindingsRequest binds a set of tags to one target resource.
// Pairs that already exist are skipped silently.
type SaveTagBindingsRequest struct {
	TagIDs   []string `json:"tag_ids"`
	TargetID string   `json:"target_id"`
	Type     string   `json:"type"`
}

// RemoveTagBindingRequest detaches one tag from one target resource.
type RemoveTagBindingRequest struct {
	TagID    string `json:"tag_id"`
	TargetID string `json:"target_id"`
	Type     string `json:"type"`
}

// BulkDeleteConversationsRequest is the body of
// DELETE /api/console/apps/{appID}/conversations/delete_bulk.
type BulkDeleteConversationsRequest struct {
	ConversationIDs []string `json:"c_ids"`
}
