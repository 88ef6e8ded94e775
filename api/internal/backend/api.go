package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"riseup-bot/api/internal/quiz"
)

const (
	pathLogin  = "/auth/login/"
	pathLinkTG = "/auth/link-telegram/"
	pathTasks  = "/tasks/"
	pathStats  = "/stats/update/"
	maxErrBody = 300
)

// StatusError — API ответил неуспешным статусом.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > maxErrBody {
		body = body[:maxErrBody] + "…"
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, body)
}

// IsUnauthorized — true, если err это StatusError с 401.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusUnauthorized
}

func statusErr(op string, r Response) error {
	return &StatusError{Op: op, Status: r.Status, Body: r.Body()}
}

type LoginResult struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Username string `json:"username"`
}

// Login — POST /auth/login/. Успех только при 200.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	r, err := c.Request(ctx, http.MethodPost, pathLogin, "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}
	if r.Status != http.StatusOK {
		return LoginResult{}, statusErr("login", r)
	}
	var out LoginResult
	if err := r.Decode(&out); err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}
	if out.Access == "" {
		return LoginResult{}, errors.New("login: empty access token")
	}
	return out, nil
}

// LinkTelegram — POST /auth/link-telegram/.
func (c *Client) LinkTelegram(ctx context.Context, token string, telegramID int64) error {
	r, err := c.Request(ctx, http.MethodPost, pathLinkTG, token, map[string]int64{"telegram_id": telegramID})
	if err != nil {
		return err
	}
	if !r.OK() {
		return statusErr("link telegram", r)
	}
	return nil
}

// Tasks — GET /tasks/. Понимает и голый массив, и DRF-страницу {"results": [...]}.
func (c *Client) Tasks(ctx context.Context, token string) ([]quiz.TaskSummary, error) {
	r, err := c.Request(ctx, http.MethodGet, pathTasks, token, nil)
	if err != nil {
		return nil, err
	}
	if r.Status != http.StatusOK {
		return nil, statusErr("tasks", r)
	}
	var list []quiz.TaskSummary
	if err := r.Decode(&list); err == nil {
		return list, nil
	}
	var page struct {
		Results []quiz.TaskSummary `json:"results"`
	}
	if err := r.Decode(&page); err != nil {
		return nil, fmt.Errorf("tasks: %w", err)
	}
	return page.Results, nil
}

// Task — GET /tasks/{id}/.
func (c *Client) Task(ctx context.Context, token string, id int) (quiz.Task, error) {
	r, err := c.Request(ctx, http.MethodGet, fmt.Sprintf("%s%d/", pathTasks, id), token, nil)
	if err != nil {
		return quiz.Task{}, err
	}
	if r.Status != http.StatusOK {
		return quiz.Task{}, statusErr(fmt.Sprintf("task %d", id), r)
	}
	var t quiz.Task
	if err := r.Decode(&t); err != nil {
		return quiz.Task{}, fmt.Errorf("task %d: %w", id, err)
	}
	return t, nil
}

// UpdateStats — POST /stats/update/.
func (c *Client) UpdateStats(ctx context.Context, token string, correct bool) error {
	r, err := c.Request(ctx, http.MethodPost, pathStats, token, map[string]bool{"correct": correct})
	if err != nil {
		return err
	}
	if !r.OK() {
		return statusErr("stats update", r)
	}
	return nil
}
