// services/user_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"charity-gaming-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	DB        *gorm.DB
	Identity  *IdentityClient
	Charities *CharityService
}

func NewUserService(db *gorm.DB, identity *IdentityClient, charities *CharityService) *UserService {
	return &UserService{DB: db, Identity: identity, Charities: charities}
}

// GamerHandle is one (game, handle) pair from the registration form.
type GamerHandle struct {
	Game   string
	Handle string
}

type RegisterRequest struct {
	Email           string
	Password        string
	ConfirmPassword string
	DisplayName     string
	Charity         string
	Handles         []GamerHandle
}

// Validate applies the pre-flight checks that must fail before anything is
// created at the identity provider.
func (r RegisterRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	if r.Password != r.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if len(r.Handles) == 0 {
		return fmt.Errorf("%w: at least one gamer handle is required", ErrValidation)
	}
	for _, h := range r.Handles {
		if h.Handle == "" {
			return fmt.Errorf("%w: empty handle for game %q", ErrValidation, h.Game)
		}
	}
	return nil
}

// Register creates the account at the identity provider, signs the new user
// in, creates the profile row, then sets handles and the charity.
//
// Account creation is the only irreversible external step. If a later step
// fails there is no compensation: the provider account stays, the error is
// returned, and the uid is logged so the half-registered account can be found.
func (s *UserService) Register(req RegisterRequest) (*models.User, *Session, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	uid, err := s.Identity.SignUp(req.Email, req.Password)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.Identity.SignIn(req.Email, req.Password)
	if err != nil {
		log.Printf("register: account %s created but sign-in failed: %v", uid, err)
		return nil, nil, err
	}

	user := models.User{
		ID:          uid,
		DisplayName: req.DisplayName,
		Region:      models.DefaultRegion,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		log.Printf("register: account %s created but profile insert failed: %v", uid, err)
		return nil, nil, err
	}

	for _, h := range req.Handles {
		if err := s.SetPlayerHandle(*session, h.Handle, h.Game); err != nil {
			log.Printf("register: account %s created but handle setup failed: %v", uid, err)
			return nil, nil, err
		}
	}

	if req.Charity != "" {
		if err := s.Charities.SetForUser(*session, req.Charity); err != nil {
			log.Printf("register: account %s created but charity setup failed: %v", uid, err)
			return nil, nil, err
		}
	}

	return &user, session, nil
}

func (s *UserService) gameByName(name string) (*models.Game, error) {
	var game models.Game
	if err := s.DB.Where("name = ?", name).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrGameNotFound, name)
		}
		return nil, err
	}
	return &game, nil
}

// SetPlayerHandle upserts the session user's handle for a game: update in
// place if a row exists for the (user, game) pair, insert otherwise.
func (s *UserService) SetPlayerHandle(session Session, handle, gameName string) error {
	if handle == "" {
		return fmt.Errorf("%w: handle is required", ErrValidation)
	}

	game, err := s.gameByName(gameName)
	if err != nil {
		return err
	}

	var existing models.PlayerHandle
	err = s.DB.Where("user_id = ? AND game_id = ?", session.UserID, game.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.DB.Create(&models.PlayerHandle{
			ID:     uuid.NewString(),
			UserID: session.UserID,
			GameID: game.ID,
			Handle: handle,
		}).Error
	}
	if err != nil {
		return err
	}

	return s.DB.Model(&existing).Update("handle", handle).Error
}

// UserProfile is the /api/get_user_data payload. Field names match what the
// web client has always consumed.
type UserProfile struct {
	Region        string    `json:"user_region"`
	CreatedAt     time.Time `json:"created_at"`
	CharityPoints int64     `json:"charity_points"`
	Charity       string    `json:"charity"`
	GamerHandle   string    `json:"gamer_handle"`
	DisplayName   string    `json:"display_name"`
}

// Profile returns the session user's data, with the charity resolved to its
// name (empty string when unset) and the handle for the requested game.
// A user with no handle for that game has no profile to show.
func (s *UserService) Profile(session Session, gameName string) (*UserProfile, error) {
	var user models.User
	if err := s.DB.Preload("Charity").Where("id = ?", session.UserID).First(&user).Error; err != nil {
		return nil, err
	}

	handle, _, err := s.HandleAndRegion(session, gameName)
	if err != nil {
		return nil, err
	}

	profile := &UserProfile{
		Region:        user.Region,
		CreatedAt:     user.CreatedAt,
		CharityPoints: user.CharityPoints,
		GamerHandle:   handle,
		DisplayName:   user.DisplayName,
	}
	if user.Charity != nil {
		profile.Charity = user.Charity.Name
	}
	return profile, nil
}

// HandleAndRegion resolves the session user's handle for a game plus their
// region — the two inputs the stats gateway needs.
func (s *UserService) HandleAndRegion(session Session, gameName string) (string, string, error) {
	game, err := s.gameByName(gameName)
	if err != nil {
		return "", "", err
	}

	var handle models.PlayerHandle
	err = s.DB.Where("user_id = ? AND game_id = ?", session.UserID, game.ID).First(&handle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", fmt.Errorf("%w: no handle for %s", ErrPlayerHandleNotFound, gameName)
	}
	if err != nil {
		return "", "", err
	}

	var user models.User
	if err := s.DB.Where("id = ?", session.UserID).First(&user).Error; err != nil {
		return "", "", err
	}

	return handle.Handle, user.Region, nil
}
