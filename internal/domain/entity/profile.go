package entity

import "time"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Profile is the users row keyed by the auth provider's user id.
type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Username  *string   `json:"username"`
	Theme     Theme     `json:"theme" gorm:"not null;default:system"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Profile) TableName() string {
	return "users"
}
