// services/leaderboard_service.go
package services

import (
	"errors"
	"fmt"

	"charity-gaming-system/models"

	"gorm.io/gorm"
)

// MiniLeaderboardSize is how many entries the "mini" scope keeps.
const MiniLeaderboardSize = 3

type LeaderboardService struct {
	DB *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{DB: db}
}

// LeaderboardEntry is one row of the per-game leaderboard.
type LeaderboardEntry struct {
	Handle        string `json:"handle"`
	DisplayName   string `json:"display_name"`
	CharityPoints int64  `json:"charity_points"`
}

// GlobalEntry is one row of the cross-game leaderboard.
type GlobalEntry struct {
	DisplayName   string `json:"display_name"`
	CharityPoints int64  `json:"charity_points"`
}

// orderedUsers returns all users ranked by points. Ties keep a stable order
// (oldest account first) so "mini" is always a prefix of "complete".
func (s *LeaderboardService) orderedUsers() ([]models.User, error) {
	var users []models.User
	err := s.DB.Order("charity_points DESC, created_at ASC, id ASC").Find(&users).Error
	return users, err
}

// Leaderboard ranks users by charity points for one game. Users without a
// handle for that game are skipped; scope "mini" truncates to the top 3.
func (s *LeaderboardService) Leaderboard(gameName, scope string) ([]LeaderboardEntry, error) {
	var game models.Game
	if err := s.DB.Where("name = ?", gameName).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameName)
		}
		return nil, err
	}

	users, err := s.orderedUsers()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, user := range users {
		var handle models.PlayerHandle
		err := s.DB.Where("user_id = ? AND game_id = ?", user.ID, game.ID).First(&handle).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Player doesn't play this game.
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{
			Handle:        handle.Handle,
			DisplayName:   user.DisplayName,
			CharityPoints: user.CharityPoints,
		})
	}

	if scope == "mini" && len(entries) > MiniLeaderboardSize {
		entries = entries[:MiniLeaderboardSize]
	}
	return entries, nil
}

// Global ranks every user by charity points, no game filter.
func (s *LeaderboardService) Global() ([]GlobalEntry, error) {
	users, err := s.orderedUsers()
	if err != nil {
		return nil, err
	}

	entries := make([]GlobalEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, GlobalEntry{
			DisplayName:   user.DisplayName,
			CharityPoints: user.CharityPoints,
		})
	}
	return entries, nil
}
