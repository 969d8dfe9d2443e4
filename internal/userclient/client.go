package userclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Principal is the validated identity returned by the upstream user
// service.
type Principal struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Email  string `json:"email"`
}

type User struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Role      string `json:"role"`
}

// Client talks to the upstream user/auth service. Token validation and
// user lookup propagate errors; the two reward POSTs are best-effort and
// only log failures.
type Client struct {
	http    *http.Client
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

func (c *Client) ValidateToken(ctx context.Context, token string) (*Principal, error) {
	var principal Principal
	if err := c.getJSON(ctx, "/api/auth/validate", token, &principal); err != nil {
		return nil, fmt.Errorf("validate token: %w", err)
	}
	return &principal, nil
}

func (c *Client) GetUser(ctx context.Context, id, token string) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/api/users/"+id, token, &user); err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &user, nil
}

// PostRewardUpdate grants points for an activity. Fire-and-forget: a
// failed call is logged and swallowed.
func (c *Client) PostRewardUpdate(ctx context.Context, userID string, points int, token string) {
	body := map[string]any{"userId": userID, "points": points}
	if err := c.postJSON(ctx, "/api/rewards/update", token, body); err != nil {
		log.Printf("reward update for user %s failed (ignored): %v", userID, err)
	}
}

// PostQuizCompletionAward records a completed quiz upstream. Same
// best-effort contract as PostRewardUpdate.
func (c *Client) PostQuizCompletionAward(ctx context.Context, userID, quizID, token string) {
	body := map[string]any{"userId": userID, "quizId": quizID}
	if err := c.postJSON(ctx, "/api/rewards/quiz-completion", token, body); err != nil {
		log.Printf("quiz completion award for user %s failed (ignored): %v", userID, err)
	}
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path, token string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
