package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionalRoute(t *testing.T) {
	assert.Equal(t, "AMERICAS", RegionalRoute("North America"))
	assert.Equal(t, "AMERICAS", RegionalRoute("Brazil"))
	assert.Equal(t, "ASIA", RegionalRoute("Korea"))
	assert.Equal(t, "ASIA", RegionalRoute("Japan"))
	assert.Equal(t, "EUROPE", RegionalRoute("Europe West"))
	assert.Equal(t, "EUROPE", RegionalRoute("Russia"))
}

func newRiotTestServer(t *testing.T, handler http.HandlerFunc) *RiotClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewRiotClient(server.URL, "test-key")
}

func TestResolvePlayerID(t *testing.T) {
	client := newRiotTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Riot-Token"))
		require.Equal(t, "/lol/summoner/v4/summoners/by-name/topo", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"puuid": "puuid-123"})
	})

	puuid, err := client.ResolvePlayerID("topo", "North America")
	require.NoError(t, err)
	assert.Equal(t, "puuid-123", puuid)
}

func TestResolvePlayerIDUnknownRegion(t *testing.T) {
	client := NewRiotClient("", "test-key")
	_, err := client.ResolvePlayerID("topo", "Atlantis")
	assert.ErrorIs(t, err, ErrSummonerNotFound)
}

func TestResolvePlayerIDErrorKinds(t *testing.T) {
	status := http.StatusNotFound
	client := newRiotTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})

	_, err := client.ResolvePlayerID("topo", "North America")
	assert.ErrorIs(t, err, ErrSummonerNotFound)

	status = http.StatusTooManyRequests
	_, err = client.ResolvePlayerID("topo", "North America")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestRecentMatchIDs(t *testing.T) {
	client := newRiotTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/lol/match/v5/matches/by-puuid/puuid-123/ids", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("count"))
		_ = json.NewEncoder(w).Encode([]string{"NA1_3", "NA1_2", "NA1_1"})
	})

	ids, err := client.RecentMatchIDs("puuid-123", "North America", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"NA1_3", "NA1_2", "NA1_1"}, ids)
}

func TestMatchStatsExtractsPlayerSeat(t *testing.T) {
	client := newRiotTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.URL.Path, "/lol/match/v5/matches/"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"info": map[string]any{
				"participants": []map[string]any{
					{"puuid": "someone-else", "kills": 10, "deaths": 0, "assists": 2, "win": false},
					{"puuid": "puuid-123", "kills": 4, "deaths": 5, "assists": 14, "win": true},
				},
			},
		})
	})

	stats, err := client.MatchStats("puuid-123", "North America", []string{"NA1_1"}, []string{"kills", "deaths", "assists", "win"})
	require.NoError(t, err)
	require.Contains(t, stats, "NA1_1")
	assert.Equal(t, float64(4), stats["NA1_1"]["kills"])
	assert.Equal(t, float64(5), stats["NA1_1"]["deaths"])
	assert.Equal(t, float64(14), stats["NA1_1"]["assists"])
	assert.Equal(t, true, stats["NA1_1"]["win"])
}

func TestMatchStatsLossCollapsesWinToZero(t *testing.T) {
	client := newRiotTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"info": map[string]any{
				"participants": []map[string]any{
					{"puuid": "puuid-123", "kills": 0, "deaths": 3, "assists": 2, "win": false},
				},
			},
		})
	})

	stats, err := client.MatchStats("puuid-123", "North America", []string{"NA1_1"}, []string{"kills", "assists", "win"})
	require.NoError(t, err)
	assert.Equal(t, 0, stats["NA1_1"]["win"])
	assert.Equal(t, float64(0), stats["NA1_1"]["kills"])
	assert.Equal(t, float64(2), stats["NA1_1"]["assists"])
}

func TestMatchStatsMissingFieldBecomesZero(t *testing.T) {
	client := newRiotTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"info": map[string]any{
				"participants": []map[string]any{
					{"puuid": "puuid-123", "kills": 1},
				},
			},
		})
	})

	stats, err := client.MatchStats("puuid-123", "North America", []string{"NA1_1"}, []string{"kills", "deaths", "doubleKills"})
	require.NoError(t, err)
	assert.Equal(t, float64(1), stats["NA1_1"]["kills"])
	assert.Equal(t, 0, stats["NA1_1"]["deaths"])
	assert.Equal(t, 0, stats["NA1_1"]["doubleKills"])
}

func TestMatchStatsPlayerNotInMatch(t *testing.T) {
	client := newRiotTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"info": map[string]any{
				"participants": []map[string]any{
					{"puuid": "someone-else"},
				},
			},
		})
	})

	_, err := client.MatchStats("puuid-123", "North America", []string{"NA1_1"}, []string{"kills"})
	assert.ErrorIs(t, err, ErrSummonerNotFound)
}
