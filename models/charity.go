// models/charity.go
package models

import (
	"time"
)

// Charity is reference data created once via the add-charity flow and never
// mutated afterwards. Name is stored normalized (lowercase, spaces stripped)
// and is the uniqueness key.
type Charity struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
	Slug string `json:"slug" gorm:"index"`

	Description  string `json:"description"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	FoundingYear string `json:"year"`

	// CharityID is the sequential display number, assigned on insert.
	CharityID int `json:"charity_id" gorm:"uniqueIndex"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
