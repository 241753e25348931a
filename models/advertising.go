package models

import "time"

// Advertising is a banner shown in the end-user application. Banners are
// tenant-independent: they are managed by platform operators and displayed
// across workspaces, weighted by Weigh.
type Advertising struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Weigh       int      `json:"weigh"`
	Icon        string   `json:"icon"`
	IconType    IconType `json:"icon_type"`
	StartedTime string   `json:"started_time"`
	EndedTime   string   `json:"ended_time"`
	RedirectURL string   `json:"redirect_url"`
	Status      string   `json:"status"`

	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Advertising model.
func (a Advertising) TableName() string {
	return "advertising"
}
