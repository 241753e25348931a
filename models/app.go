package models

import "time"

// AppMode enumerates the kinds of applications the console can build.
type AppMode string

const (
	AppModeChat         AppMode = "chat"
	AppModeAgentChat    AppMode = "agent-chat"
	AppModeAdvancedChat AppMode = "advanced-chat"
	AppModeWorkflow     AppMode = "workflow"
	AppModeCompletion   AppMode = "completion"
)

// ChatModes are the modes for which conversation endpoints are available.
var ChatModes = map[AppMode]struct{}{
	AppModeChat:         {},
	AppModeAgentChat:    {},
	AppModeAdvancedChat: {},
}

// IconType distinguishes uploaded image icons from emoji icons. Only image
// icons are propagated to the consumer service; emoji icons sync as "".
type IconType string

const (
	IconTypeImage IconType = "image"
	IconTypeEmoji IconType = "emoji"
)

// App statuses and visibility values accepted by the console API.
const (
	AppStatusNormal   = "normal"
	AppStatusAbnormal = "abnormal"

	AppHidden  = "hidden"
	AppDisplay = "display"
)

// App is a tenant-scoped application built in the console.
type App struct {
	ID       string  `json:"id"`
	TenantID string  `json:"tenant_id"`
	Name     string  `json:"name"`
	Mode     AppMode `json:"mode"`

	Description string `json:"description"`
	Status      string `json:"status"`
	IsHidden    string `json:"is_hidden"`

	// EnableSite and EnableAPI toggle the app's published web UI and its
	// service API. Both default to enabled on creation.
	EnableSite bool `json:"enable_site"`
	EnableAPI  bool `json:"enable_api"`

	Icon           string   `json:"icon"`
	IconType       IconType `json:"icon_type"`
	IconBackground string   `json:"icon_background"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the App model.
func (a App) TableName() string {
	return "apps"
}

// AppFilter narrows the app list query. Zero values mean "no filter".
type AppFilter struct {
	Page     int
	Limit    int
	Status   string
	IsHidden string
	Mode     AppMode
	Name     string
	TagIDs   []string
}

// DefaultAppSetting is the payload cached in Redis when an operator pins an
// application as the workspace default.
type DefaultAppSetting struct {
	AppID string `json:"app_id"`
	Mode  string `json:"model"`
}
