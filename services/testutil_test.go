package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"charity-gaming-system/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named in-memory database with a shared cache: every pooled connection
	// sees the same data, but tests stay isolated from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Charity{},
		&models.Game{},
		&models.User{},
		&models.PlayerHandle{},
		&models.MatchRecord{},
	))
	return db
}

func seedGame(t *testing.T, db *gorm.DB, name string) models.Game {
	t.Helper()
	game := models.Game{ID: uuid.NewString(), Name: name}
	require.NoError(t, db.Create(&game).Error)
	return game
}

func seedUser(t *testing.T, db *gorm.DB, id, displayName string, points int64) models.User {
	t.Helper()
	user := models.User{
		ID:            id,
		DisplayName:   displayName,
		Region:        models.DefaultRegion,
		CharityPoints: points,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedHandle(t *testing.T, db *gorm.DB, userID, gameID, handle string) models.PlayerHandle {
	t.Helper()
	row := models.PlayerHandle{
		ID:     uuid.NewString(),
		UserID: userID,
		GameID: gameID,
		Handle: handle,
	}
	require.NoError(t, db.Create(&row).Error)
	return row
}

// fakeIdentity stands in for the identity provider. It accepts one known
// email/password pair and counts calls so tests can assert that validation
// failures never reach the provider.
type fakeIdentity struct {
	Email    string
	Password string
	UID      string

	SignUpCalls int
	SignInCalls int
	Revoked     int
	Disabled    bool

	server *httptest.Server
}

func newFakeIdentity(t *testing.T, email, password, uid string) *fakeIdentity {
	t.Helper()
	f := &fakeIdentity{Email: email, Password: password, UID: uid}

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		writeErr := func(status int, message string) {
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": status, "message": message},
			})
		}

		switch r.URL.Path {
		case "/v1/accounts:signUp":
			f.SignUpCalls++
			if body["email"] == f.Email {
				writeErr(http.StatusBadRequest, "EMAIL_EXISTS")
				return
			}
			f.Email, _ = body["email"].(string)
			f.Password, _ = body["password"].(string)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"localId": f.UID,
				"idToken": "token-" + f.UID,
			})
		case "/v1/accounts:signInWithPassword":
			f.SignInCalls++
			if body["email"] != f.Email || body["password"] != f.Password {
				writeErr(http.StatusBadRequest, "INVALID_LOGIN_CREDENTIALS")
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"localId":      f.UID,
				"email":        f.Email,
				"idToken":      "token-" + f.UID,
				"refreshToken": "refresh-" + f.UID,
				"expiresIn":    "3600",
			})
		case "/v1/accounts:lookup":
			token, _ := body["idToken"].(string)
			if token != "token-"+f.UID {
				writeErr(http.StatusBadRequest, "INVALID_ID_TOKEN")
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"users": []map[string]any{{"localId": f.UID, "email": f.Email, "disabled": f.Disabled}},
			})
		case "/v1/accounts:update":
			f.Revoked++
			_ = json.NewEncoder(w).Encode(map[string]any{"localId": f.UID})
		default:
			writeErr(http.StatusNotFound, "UNKNOWN_ENDPOINT")
		}
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeIdentity) client() *IdentityClient {
	return NewIdentityClient(f.server.URL, "test-key")
}
