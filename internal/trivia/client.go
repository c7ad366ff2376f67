// Package trivia fetches multiple-choice questions from the remote
// question bank (the-trivia-api.com). The progress engine never talks
// to this service: the quiz screen fetches, runs the session, and hands
// the final tally to the engine.
package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://the-trivia-api.com/v2"

// DefaultQuestionLimit is how many questions one session requests.
const DefaultQuestionLimit = 25

// Question is one multiple-choice question from the bank.
type Question struct {
	ID               string
	Text             string
	CorrectAnswer    string
	IncorrectAnswers []string
	Category         string
	Difficulty       string
}

// Client talks to the trivia API.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a Client for the public trivia API.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiQuestion is the wire shape of a question.
type apiQuestion struct {
	ID       string `json:"id"`
	Question struct {
		Text string `json:"text"`
	} `json:"question"`
	CorrectAnswer    string   `json:"correctAnswer"`
	IncorrectAnswers []string `json:"incorrectAnswers"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
}

// Fetch requests up to limit questions for a category group and
// difficulty. Callers fall back to FallbackQuestions on error.
func (c *Client) Fetch(ctx context.Context, group, difficulty string, limit int) ([]Question, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(limit))
	if subs := SubcategoriesFor(group); len(subs) > 0 {
		q.Set("categories", strings.Join(subs, ","))
	}
	q.Set("difficulties", difficulty)

	reqURL := fmt.Sprintf("%s/questions?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch questions: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var raw []apiQuestion
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	questions := make([]Question, 0, len(raw))
	for _, aq := range raw {
		questions = append(questions, Question{
			ID:               aq.ID,
			Text:             aq.Question.Text,
			CorrectAnswer:    aq.CorrectAnswer,
			IncorrectAnswers: aq.IncorrectAnswers,
			Category:         aq.Category,
			Difficulty:       aq.Difficulty,
		})
	}
	return questions, nil
}
