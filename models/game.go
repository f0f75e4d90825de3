// models/game.go
package models

import (
	"time"
)

// GameLeagueOfLegends is the only seeded game right now.
const GameLeagueOfLegends = "League of Legends"

// Game is static reference data. Rows are seeded at startup and looked up by
// name; nothing in the API creates games.
type Game struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
