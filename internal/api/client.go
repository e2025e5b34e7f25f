package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-quiz/internal/battle"
)

// Client talks to a quiz backend over JSON/HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger.Named("api"),
	}
}

func (c *Client) FetchUser(ctx context.Context) (User, error) {
	var u User
	err := c.do(ctx, http.MethodGet, "/user", nil, &u)
	return u, err
}

func (c *Client) BlockNotifications(ctx context.Context) (User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/user/notifications/block", nil, &u)
	return u, err
}

func (c *Client) GameTypes(ctx context.Context) ([]GameType, error) {
	var types []GameType
	err := c.do(ctx, http.MethodGet, "/game-types", nil, &types)
	return types, err
}

func (c *Client) StartBattle(ctx context.Context, gameType GameType) (battle.Battle, error) {
	var b battle.Battle
	body := struct {
		Type GameType `json:"type"`
	}{Type: gameType}
	err := c.do(ctx, http.MethodPost, "/battles", body, &b)
	return b, err
}

func (c *Client) GetBattle(ctx context.Context, id int) (battle.Battle, error) {
	var b battle.Battle
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/battles/%d", id), nil, &b)
	return b, err
}

func (c *Client) Answer(ctx context.Context, battleID, questionID int, req AnswerRequest) (battle.Question, error) {
	var q battle.Question
	path := fmt.Sprintf("/battles/%d/questions/%d/answer", battleID, questionID)
	err := c.do(ctx, http.MethodPost, path, req, &q)
	return q, err
}

func (c *Client) Scoreboard(ctx context.Context) ([]ScoreboardEntry, error) {
	var entries []ScoreboardEntry
	err := c.do(ctx, http.MethodGet, "/scoreboard", nil, &entries)
	return entries, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("build url for %s: %w", path, err)
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
			payload.Error = http.StatusText(resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
