// models/match_record.go
package models

import (
	"time"
)

// MatchRecord stores one ingested match for one player handle. The
// (player_handle_id, match_id) pair is unique — ingesting a match a second
// time is a silent no-op, so points are never double counted.
type MatchRecord struct {
	ID             string `json:"id" gorm:"primaryKey"`
	PlayerHandleID string `json:"player_handle_id" gorm:"uniqueIndex:idx_match_records_handle_match;not null"`
	MatchID        string `json:"match_id" gorm:"uniqueIndex:idx_match_records_handle_match;not null"`

	Kills   int  `json:"kills" gorm:"not null;default:0"`
	Deaths  int  `json:"deaths" gorm:"not null;default:0"`
	Assists int  `json:"assists" gorm:"not null;default:0"`
	Win     bool `json:"win" gorm:"not null;default:false"`

	PlayerHandle *PlayerHandle `json:"-" gorm:"foreignKey:PlayerHandleID"`

	AddedAt time.Time `json:"added_at" gorm:"autoCreateTime"`
}
