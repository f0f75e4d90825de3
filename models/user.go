// models/user.go
package models

import (
	"time"
)

// DefaultRegion is assigned to every new user until region selection ships.
const DefaultRegion = "North America"

// User is the profile row backing one identity-provider account.
// The primary key is the uid issued by the identity provider, not a local id.
type User struct {
	ID          string `json:"id" gorm:"primaryKey"`
	DisplayName string `json:"display_name" gorm:"index;not null"`
	Region      string `json:"user_region" gorm:"not null;default:'North America'"`

	// Charity the user plays for. Empty until /api/set_charity (or registration)
	// picks one.
	CharityID *string  `json:"charity_id,omitempty" gorm:"index"`
	Charity   *Charity `json:"-" gorm:"belongsTo;foreignKey:CharityID;references:ID"`

	// CharityPoints only ever grows through match ingestion; updates go through
	// a SQL expression, never a pre-fetched snapshot.
	CharityPoints int64 `json:"charity_points" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
