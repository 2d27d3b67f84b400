package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTokens struct {
	token   string
	cleared bool
}

func (m *memTokens) Token() (string, error) { return m.token, nil }

func (m *memTokens) Clear() error {
	m.token = ""
	m.cleared = true
	return nil
}

type fakeAPI struct {
	plays          []PlayEvent
	genresByArtist map[string][]string

	playsStatus   int
	artistsStatus int

	playsCalls   int
	artistsCalls int
	artistsIDs   [][]string
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/me/player/recently-played", func(w http.ResponseWriter, r *http.Request) {
		f.playsCalls++
		if f.playsStatus != 0 {
			w.WriteHeader(f.playsStatus)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"items": f.plays})
	})

	mux.HandleFunc("/artists", func(w http.ResponseWriter, r *http.Request) {
		f.artistsCalls++
		ids := strings.Split(r.URL.Query().Get("ids"), ",")
		f.artistsIDs = append(f.artistsIDs, ids)
		if f.artistsStatus != 0 {
			w.WriteHeader(f.artistsStatus)
			return
		}
		var artists []map[string]any
		for _, id := range ids {
			artists = append(artists, map[string]any{"id": id, "genres": f.genresByArtist[id]})
		}
		json.NewEncoder(w).Encode(map[string]any{"artists": artists})
	})

	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(UserProfile{ID: "u1", DisplayName: "Rodrigo"})
	})

	return mux
}

func newTestClient(t *testing.T, api *fakeAPI, tokens *memTokens) *Client {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return NewClient(tokens, WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func play(playedAt time.Time, trackID string, artistIDs ...string) PlayEvent {
	var artists []Artist
	for _, id := range artistIDs {
		artists = append(artists, Artist{ID: id, Name: "artist " + id})
	}
	return PlayEvent{
		PlayedAt: playedAt,
		Track:    Track{ID: trackID, Name: "track " + trackID, Artists: artists},
	}
}

func TestGenresForWindowFiltersDedupesAndSorts(t *testing.T) {
	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	api := &fakeAPI{
		plays: []PlayEvent{
			play(start.Add(10*time.Minute), "t1", "a1"),
			play(start.Add(20*time.Minute), "t2", "a2"),
			// Same artist twice, must be queried once.
			play(start.Add(30*time.Minute), "t3", "a1"),
			// Outside the window, must contribute nothing.
			play(start.Add(-time.Minute), "t4", "a3"),
			play(end.Add(time.Minute), "t5", "a4"),
			// Boundaries are inclusive.
			play(start, "t6", "a5"),
			play(end, "t7", "a5"),
		},
		genresByArtist: map[string][]string{
			"a1": {"rock", "pop"},
			"a2": {"pop", "jazz"},
			"a3": {"forbidden"},
			"a4": {"forbidden"},
			"a5": {"mpb"},
		},
	}
	tokens := &memTokens{token: "tok"}
	client := newTestClient(t, api, tokens)

	genres := client.GenresForWindow(context.Background(), start, end)

	assert.Equal(t, []string{"jazz", "mpb", "pop", "rock"}, genres)
	require.Len(t, api.artistsIDs, 1)
	assert.ElementsMatch(t, []string{"a1", "a2", "a5"}, api.artistsIDs[0])
	assert.False(t, tokens.cleared)
}

func TestGenresForWindowChunksArtistLookups(t *testing.T) {
	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	// One track featuring 60 artists forces two chunks of 50 and 10.
	var ids []string
	for i := 0; i < 60; i++ {
		ids = append(ids, fmt.Sprintf("a%02d", i))
	}
	api := &fakeAPI{
		plays:          []PlayEvent{play(start.Add(time.Minute), "t1", ids...)},
		genresByArtist: map[string][]string{"a00": {"rock"}, "a59": {"jazz"}},
	}
	client := newTestClient(t, api, &memTokens{token: "tok"})

	genres := client.GenresForWindow(context.Background(), start, end)

	assert.Equal(t, []string{"jazz", "rock"}, genres)
	require.Equal(t, 2, api.artistsCalls)
	assert.Len(t, api.artistsIDs[0], 50)
	assert.Len(t, api.artistsIDs[1], 10)
}

func TestGenresForWindowUnauthorizedPlaysClearsToken(t *testing.T) {
	api := &fakeAPI{playsStatus: http.StatusUnauthorized}
	tokens := &memTokens{token: "expired"}
	client := newTestClient(t, api, tokens)

	genres := client.GenresForWindow(context.Background(), time.Now().Add(-time.Hour), time.Now())

	assert.Empty(t, genres)
	assert.True(t, tokens.cleared, "an expired token on the plays fetch must sign out")
	assert.Zero(t, api.artistsCalls)
}

func TestGenresForWindowFailedChunkIsSkipped(t *testing.T) {
	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	api := &fakeAPI{
		plays:         []PlayEvent{play(start.Add(time.Minute), "t1", "a1")},
		artistsStatus: http.StatusUnauthorized,
	}
	tokens := &memTokens{token: "tok"}
	client := newTestClient(t, api, tokens)

	genres := client.GenresForWindow(context.Background(), start, end)

	assert.Empty(t, genres)
	// A dead chunk degrades to no genres, it does not sign the user out.
	assert.False(t, tokens.cleared)
}

func TestGenresForWindowWithoutToken(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api, &memTokens{})

	genres := client.GenresForWindow(context.Background(), time.Now().Add(-time.Hour), time.Now())

	assert.Empty(t, genres)
	assert.Zero(t, api.playsCalls, "no request should go out without a token")
}

func TestGenresForWindowMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{not json")
	}))
	defer srv.Close()

	client := NewClient(&memTokens{token: "tok"}, WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))

	genres := client.GenresForWindow(context.Background(), time.Now().Add(-time.Hour), time.Now())
	assert.Empty(t, genres)
}

func TestMe(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api, &memTokens{token: "tok"})

	profile, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Rodrigo", profile.DisplayName)

	_, err = NewClient(&memTokens{}).Me(context.Background())
	assert.Error(t, err)
}
