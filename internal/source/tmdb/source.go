package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"movie_feed/internal/domain"
)

const (
	SourceID       = "tmdb"
	DefaultBaseURL = "https://api.themoviedb.org/"
	apiVersion     = "3"
)

// Config holds TMDB client configuration.
type Config struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client reads people and their credits from the TMDB v3 API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new TMDB client.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		token:          cfg.Token,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

// PersonDetails fetches the person record for personID.
func (c *Client) PersonDetails(ctx context.Context, personID int64) (domain.Person, error) {
	var details PersonDetails
	if err := c.get(ctx, fmt.Sprintf("person/%d", personID), &details); err != nil {
		return domain.Person{}, fmt.Errorf("get person %d: %w", personID, err)
	}

	person := domain.Person{
		ID:        details.ID,
		Name:      details.Name,
		Biography: nonEmpty(details.Biography),
	}
	if person.ID == 0 {
		person.ID = personID
	}
	return person, nil
}

// CombinedCredits fetches every movie and TV credit of personID. Entries
// whose media kind cannot be determined are skipped.
func (c *Client) CombinedCredits(ctx context.Context, personID int64) (cast, crew []domain.Credit, err error) {
	var resp CombinedCredits
	if err := c.get(ctx, fmt.Sprintf("person/%d/combined_credits", personID), &resp); err != nil {
		return nil, nil, fmt.Errorf("get combined credits %d: %w", personID, err)
	}

	cast = c.transform(resp.Cast, domain.RoleCast)
	crew = c.transform(resp.Crew, domain.RoleCrew)

	c.logger.Debug("fetched combined credits",
		"person_id", personID,
		"cast", len(cast),
		"crew", len(crew),
	)

	return cast, crew, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, apiVersion, path)

	return retry.Do(
		func() error {
			return c.doRequest(ctx, endpoint, out)
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxAttempts)),
		retry.Delay(c.initialBackoff),
		retry.MaxDelay(c.maxBackoff),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
		retry.OnRetry(func(attempt uint, err error) {
			c.logger.Warn("request failed, retrying",
				"path", path,
				"attempt", attempt+1,
				"error", err,
			)
		}),
	)
}

func (c *Client) doRequest(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "MovieFeed/1.0")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// retryable reports whether a failed request may succeed when repeated:
// transport failures, 5xx and 429.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr interface{ HTTPStatus() int }
	if errors.As(err, &statusErr) {
		status := statusErr.HTTPStatus()
		return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func (c *Client) transform(entries []CreditEntry, role domain.RoleKind) []domain.Credit {
	credits := make([]domain.Credit, 0, len(entries))

	for _, e := range entries {
		credit, err := e.toCredit(role)
		if err != nil {
			c.logger.Warn("skipping credit",
				"id", e.ID,
				"role", role.String(),
				"error", err,
			)
			continue
		}
		credits = append(credits, credit)
	}

	return credits
}
