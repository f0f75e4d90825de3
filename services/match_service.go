// services/match_service.go
package services

import (
	"errors"
	"fmt"
	"math"

	"charity-gaming-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchService struct {
	DB *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{DB: db}
}

// MatchStats is one match's scoring input.
type MatchStats struct {
	Kills   int  `json:"kills"`
	Deaths  int  `json:"deaths"`
	Assists int  `json:"assists"`
	Win     bool `json:"win"`
}

// ScoreMatch computes the charity points a single match is worth, before
// rounding: 2 per kill, 1 per assist, -0.5 per death, doubled on a win.
func ScoreMatch(stats MatchStats) float64 {
	points := 2*float64(stats.Kills) + float64(stats.Assists) - 0.5*float64(stats.Deaths)
	if stats.Win {
		points *= 2
	}
	return points
}

// RoundPoints collapses a raw score sum to whole points. Ties round away from
// zero: 19.5 → 20.
func RoundPoints(points float64) int64 {
	return int64(math.Round(points))
}

// Ingest records new matches for a handle and credits the owning user.
//
// Matches already recorded for the handle are skipped and score nothing, so
// replaying the same payload is harmless. The new records and the points
// increment commit as one transaction, and the increment is a SQL expression
// against the stored value — two racing ingestions both land.
func (s *MatchService) Ingest(rawHandle string, matches map[string]MatchStats) (int64, error) {
	var handle models.PlayerHandle
	err := s.DB.Where("handle = ?", rawHandle).First(&handle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: %s", ErrPlayerHandleNotFound, rawHandle)
	}
	if err != nil {
		return 0, err
	}

	var awarded int64
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var newRecords []models.MatchRecord
		var total float64

		for matchID, stats := range matches {
			var count int64
			if err := tx.Model(&models.MatchRecord{}).
				Where("player_handle_id = ? AND match_id = ?", handle.ID, matchID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			newRecords = append(newRecords, models.MatchRecord{
				ID:             uuid.NewString(),
				PlayerHandleID: handle.ID,
				MatchID:        matchID,
				Kills:          stats.Kills,
				Deaths:         stats.Deaths,
				Assists:        stats.Assists,
				Win:            stats.Win,
			})
			total += ScoreMatch(stats)
		}

		if len(newRecords) == 0 {
			return nil
		}

		if err := tx.Create(&newRecords).Error; err != nil {
			return err
		}

		// A negative batch total (all losses, heavy deaths) credits nothing;
		// charity_points never goes down through this path.
		rounded := RoundPoints(total)
		if rounded <= 0 {
			return nil
		}
		awarded = rounded
		return tx.Model(&models.User{}).
			Where("id = ?", handle.UserID).
			Update("charity_points", gorm.Expr("charity_points + ?", awarded)).Error
	})
	if err != nil {
		return 0, err
	}
	return awarded, nil
}
