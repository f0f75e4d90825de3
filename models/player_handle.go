// models/player_handle.go
package models

import (
	"time"
)

// PlayerHandle links a user to their in-game identifier for one game.
// At most one row per (user, game); setting a handle again overwrites the
// existing row instead of inserting a second one.
type PlayerHandle struct {
	ID     string `json:"id" gorm:"primaryKey"`
	UserID string `json:"user_id" gorm:"uniqueIndex:idx_player_handles_user_game;not null"`
	GameID string `json:"game_id" gorm:"uniqueIndex:idx_player_handles_user_game;not null"`
	Handle string `json:"handle" gorm:"index;not null"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
	Game *Game `json:"-" gorm:"foreignKey:GameID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
