package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.spotify.com/v1"

	// The window correlation only ever looks at the most recent page.
	recentlyPlayedLimit = 20

	// Batch limit of the artists endpoint.
	artistChunkSize = 50
)

var errUnauthorized = errors.New("spotify: unauthorized")

// TokenSource provides the stored bearer token. Clear signs the user out
// when the token turns out to be dead.
type TokenSource interface {
	Token() (string, error)
	Clear() error
}

type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Track struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Artists []Artist `json:"artists"`
}

// PlayEvent is one entry of the recently-played feed.
type PlayEvent struct {
	PlayedAt time.Time `json:"played_at"`
	Track    Track     `json:"track"`
}

// UserProfile is the authenticated Spotify account.
type UserProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Client talks to the Spotify Web API. GenresForWindow is deliberately
// infallible: every failure degrades to an empty result so a flaky network
// can never block a workout from being saved.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *slog.Logger
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func NewClient(tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		tokens:  tokens,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenresForWindow returns the deduplicated, lexicographically sorted genres
// of every artist whose track was played inside [start, end]. An expired
// token on the recently-played fetch additionally clears the stored token,
// since the underlying login is dead, not just this request.
func (c *Client) GenresForWindow(ctx context.Context, start, end time.Time) []string {
	token, err := c.tokens.Token()
	if err != nil || token == "" {
		c.log.Info("no spotify token stored, skipping genre lookup")
		return nil
	}

	events, err := c.recentlyPlayed(ctx, token)
	if errors.Is(err, errUnauthorized) {
		c.log.Warn("spotify token rejected, signing out")
		if err := c.tokens.Clear(); err != nil {
			c.log.Warn("failed to clear spotify token", "error", err)
		}
		return nil
	}
	if err != nil {
		c.log.Warn("failed to fetch recent plays", "error", err)
		return nil
	}

	var artistIDs []string
	seen := make(map[string]bool)
	for _, ev := range events {
		if ev.PlayedAt.Before(start) || ev.PlayedAt.After(end) {
			continue
		}
		for _, artist := range ev.Track.Artists {
			if artist.ID != "" && !seen[artist.ID] {
				seen[artist.ID] = true
				artistIDs = append(artistIDs, artist.ID)
			}
		}
	}
	if len(artistIDs) == 0 {
		c.log.Info("no plays inside the session window")
		return nil
	}

	genreSet := make(map[string]bool)
	for i := 0; i < len(artistIDs); i += artistChunkSize {
		chunk := artistIDs[i:min(i+artistChunkSize, len(artistIDs))]
		genres, err := c.artistGenres(ctx, token, chunk)
		if err != nil {
			// A failed chunk loses its genres but never the session.
			c.log.Warn("artist chunk lookup failed", "error", err)
			continue
		}
		for _, g := range genres {
			genreSet[g] = true
		}
	}

	out := make([]string, 0, len(genreSet))
	for g := range genreSet {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// RecentlyPlayed returns the latest page of play events.
func (c *Client) RecentlyPlayed(ctx context.Context) ([]PlayEvent, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("no spotify token stored")
	}
	return c.recentlyPlayed(ctx, token)
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*UserProfile, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("no spotify token stored")
	}

	var profile UserProfile
	if err := c.getJSON(ctx, token, "/me", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) recentlyPlayed(ctx context.Context, token string) ([]PlayEvent, error) {
	path := fmt.Sprintf("/me/player/recently-played?limit=%d", recentlyPlayedLimit)
	var body struct {
		Items []PlayEvent `json:"items"`
	}
	if err := c.getJSON(ctx, token, path, &body); err != nil {
		return nil, err
	}
	return body.Items, nil
}

func (c *Client) artistGenres(ctx context.Context, token string, ids []string) ([]string, error) {
	path := "/artists?ids=" + url.QueryEscape(strings.Join(ids, ","))
	var body struct {
		Artists []struct {
			ID     string   `json:"id"`
			Genres []string `json:"genres"`
		} `json:"artists"`
	}
	if err := c.getJSON(ctx, token, path, &body); err != nil {
		return nil, err
	}

	var genres []string
	for _, artist := range body.Artists {
		genres = append(genres, artist.Genres...)
	}
	return genres, nil
}

func (c *Client) getJSON(ctx context.Context, token, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return errUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
