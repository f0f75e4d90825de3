// services/riot_client.go
package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"charity-gaming-system/utils"
)

// platformRoutes maps the human region names users pick at registration to the
// provider's platform routing codes (summoner endpoints).
var platformRoutes = map[string]string{
	"North America":        "NA1",
	"Europe West":          "EUW1",
	"Europe Nordic & East": "EUN1",
	"Brazil":               "BR1",
	"Korea":                "KR",
	"Japan":                "JP1",
	"Latin America North":  "LA1",
	"Latin America South":  "LA2",
	"Oceania":              "OC1",
	"Russia":               "RU",
	"Turkey":               "TR1",
}

// Match endpoints route by macro region instead of platform.
var americasRegions = map[string]bool{
	"North America":       true,
	"Latin America North": true,
	"Latin America South": true,
	"Brazil":              true,
}

var asiaRegions = map[string]bool{
	"Japan": true,
	"Korea": true,
}

// RegionalRoute converts a human region name to the macro routing zone used by
// the match endpoints. Anything not in the Americas or Asia sets routes to
// Europe, matching the provider's partition.
func RegionalRoute(region string) string {
	switch {
	case americasRegions[region]:
		return "AMERICAS"
	case asiaRegions[region]:
		return "ASIA"
	default:
		return "EUROPE"
	}
}

// RiotClient is a thin wrapper over the match-stats provider. It resolves
// summoner names to player ids, lists recent match ids, and extracts a chosen
// subset of per-participant stats from full match payloads.
type RiotClient struct {
	// BaseURL with a %s placeholder for the routing host segment, e.g.
	// "https://%s.api.riotgames.com". Tests override it without a placeholder.
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// DefaultRiotBaseURL hits the real provider; RIOT_BASE_URL overrides for tests.
const DefaultRiotBaseURL = "https://%s.api.riotgames.com"

func NewRiotClient(baseURL, apiKey string) *RiotClient {
	if baseURL == "" {
		baseURL = DefaultRiotBaseURL
	}
	return &RiotClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  utils.HTTPClient,
	}
}

func (c *RiotClient) get(route, path string, out any) error {
	host := c.BaseURL
	if strings.Contains(host, "%s") {
		host = fmt.Sprintf(host, route)
	}

	req, err := http.NewRequest("GET", host+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Riot-Token", c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return json.Unmarshal(body, out)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrSummonerNotFound, path)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: retry later", ErrRateLimited)
	default:
		return fmt.Errorf("stats provider returned %d: %s", resp.StatusCode, string(body))
	}
}

// ResolvePlayerID looks up a summoner by name on the platform host for the
// given human region name and returns the provider's player id (puuid).
func (c *RiotClient) ResolvePlayerID(name, region string) (string, error) {
	platform, ok := platformRoutes[region]
	if !ok {
		return "", fmt.Errorf("%w: unknown region %q", ErrSummonerNotFound, region)
	}

	var out struct {
		PUUID string `json:"puuid"`
	}
	path := "/lol/summoner/v4/summoners/by-name/" + url.PathEscape(name)
	if err := c.get(platform, path, &out); err != nil {
		return "", err
	}
	return out.PUUID, nil
}

// RecentMatchIDs returns up to count most-recent match ids for a player.
func (c *RiotClient) RecentMatchIDs(puuid, region string, count int) ([]string, error) {
	var ids []string
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d", url.PathEscape(puuid), count)
	if err := c.get(RegionalRoute(region), path, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

type matchPayload struct {
	Info struct {
		Participants []map[string]any `json:"participants"`
	} `json:"info"`
}

// MatchStats fetches each match and extracts the requested participant fields
// for the player's own seat. Missing or falsy values come back as 0, which is
// what the scoring code expects for empty stat lines.
func (c *RiotClient) MatchStats(puuid, region string, matchIDs []string, fields []string) (map[string]map[string]any, error) {
	stats := make(map[string]map[string]any, len(matchIDs))
	route := RegionalRoute(region)

	for _, matchID := range matchIDs {
		var payload matchPayload
		path := "/lol/match/v5/matches/" + url.PathEscape(matchID)
		if err := c.get(route, path, &payload); err != nil {
			return nil, err
		}

		var seat map[string]any
		for _, p := range payload.Info.Participants {
			if id, _ := p["puuid"].(string); id == puuid {
				seat = p
				break
			}
		}
		if seat == nil {
			return nil, fmt.Errorf("%w: player %s absent from match %s", ErrSummonerNotFound, puuid, matchID)
		}

		picked := make(map[string]any, len(fields))
		for _, field := range fields {
			picked[field] = normalizeStat(seat[field])
		}
		stats[matchID] = picked
	}
	return stats, nil
}

// normalizeStat keeps truthy values as-is and collapses missing/zero/false
// ones to 0. A lost game therefore reports win as 0, not false.
func normalizeStat(v any) any {
	switch val := v.(type) {
	case nil:
		return 0
	case bool:
		if !val {
			return 0
		}
		return val
	case float64:
		return val
	case string:
		if val == "" {
			return 0
		}
		return val
	default:
		return val
	}
}
