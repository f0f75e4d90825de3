// services/identity_client.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"charity-gaming-system/utils"
)

// DefaultIdentityBaseURL is the Google Identity Toolkit endpoint. Tests and
// self-hosted emulators override it via IDENTITY_BASE_URL.
const DefaultIdentityBaseURL = "https://identitytoolkit.googleapis.com"

// IdentityClient talks to the identity provider's REST API. It owns account
// creation, email/password sign-in, token verification and refresh-token
// revocation; passwords and tokens never touch our own storage.
type IdentityClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewIdentityClient(baseURL, apiKey string) *IdentityClient {
	if baseURL == "" {
		baseURL = DefaultIdentityBaseURL
	}
	return &IdentityClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  utils.HTTPClient,
	}
}

type identityError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"` // the provider sends seconds as a string
}

type lookupResponse struct {
	Users []struct {
		LocalID  string `json:"localId"`
		Email    string `json:"email"`
		Disabled bool   `json:"disabled"`
	} `json:"users"`
}

func (c *IdentityClient) post(endpoint string, reqBody any, out any) (int, string, error) {
	url := fmt.Sprintf("%s/v1/%s?key=%s", c.BaseURL, endpoint, c.APIKey)

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return 0, "", err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		var provErr identityError
		_ = json.Unmarshal(body, &provErr)
		return resp.StatusCode, provErr.Error.Message, nil
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, "", err
		}
	}
	return resp.StatusCode, "", nil
}

// SignUp creates an email/password account and returns the provider uid.
func (c *IdentityClient) SignUp(email, password string) (string, error) {
	var out signInResponse
	status, reason, err := c.post("accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		if reason == "EMAIL_EXISTS" {
			return "", fmt.Errorf("%w: %s", ErrDuplicateAccount, email)
		}
		log.Printf("identity signUp failed (%d): %s", status, reason)
		return "", fmt.Errorf("%w: %s", ErrNotAuthenticated, reason)
	}
	return out.LocalID, nil
}

// SignIn verifies email/password at the provider and returns a fresh Session.
func (c *IdentityClient) SignIn(email, password string) (*Session, error) {
	var out signInResponse
	status, reason, err := c.post("accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		// Wrong password and unknown email come back the same way on purpose.
		return nil, fmt.Errorf("%w: %s", ErrNotAuthenticated, reason)
	}

	expiresIn, _ := strconv.Atoi(out.ExpiresIn)
	return &Session{
		UserID:       out.LocalID,
		Email:        out.Email,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		IssuedAt:     time.Now().UTC(),
		ExpiresIn:    expiresIn,
	}, nil
}

// VerifyToken checks an ID token with the provider and returns the uid it
// belongs to. Malformed, expired, revoked tokens and disabled accounts all
// come back as ErrTokenInvalid, wrapped with the provider's reason.
func (c *IdentityClient) VerifyToken(idToken string) (string, error) {
	if idToken == "" {
		return "", fmt.Errorf("%w: empty token", ErrTokenInvalid)
	}

	var out lookupResponse
	status, reason, err := c.post("accounts:lookup", map[string]any{
		"idToken": idToken,
	}, &out)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: %s", ErrTokenInvalid, reason)
	}
	if len(out.Users) == 0 {
		return "", fmt.Errorf("%w: no account for token", ErrTokenInvalid)
	}
	if out.Users[0].Disabled {
		return "", fmt.Errorf("%w: account disabled", ErrTokenInvalid)
	}
	return out.Users[0].LocalID, nil
}

// Revoke invalidates the account's refresh tokens. Outstanding ID tokens keep
// working until they expire — the provider has no way to kill those early.
func (c *IdentityClient) Revoke(idToken string) error {
	status, reason, err := c.post("accounts:update", map[string]any{
		"idToken":    idToken,
		"validSince": strconv.FormatInt(time.Now().UTC().Unix(), 10),
	}, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrTokenInvalid, reason)
	}
	return nil
}
