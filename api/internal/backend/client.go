// Package backend — HTTP-шлюз к REST API платформы RiseUp.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Response — статус и тело ответа. JSON заполнен, если сервер объявил
// application/json и тело валидно; иначе тело лежит в Text.
type Response struct {
	Status int
	JSON   json.RawMessage
	Text   string
}

func (r Response) OK() bool { return r.Status >= 200 && r.Status < 300 }

// Decode разбирает JSON-тело в v.
func (r Response) Decode(v any) error {
	if r.JSON == nil {
		return fmt.Errorf("response is not json (status %d)", r.Status)
	}
	return json.Unmarshal(r.JSON, v)
}

// Body — тело как строка, для логов и ошибок.
func (r Response) Body() string {
	if r.JSON != nil {
		return string(r.JSON)
	}
	return r.Text
}

type Client struct {
	Base string
	pool *Pool
}

func New(base string, pool *Pool) *Client {
	return &Client{Base: strings.TrimRight(base, "/"), pool: pool}
}

// Request выполняет запрос к API. token — bearer (пустой = без авторизации),
// body кодируется в JSON (nil = без тела). Не-2xx статус не считается ошибкой:
// ошибка возвращается только при ErrUnavailable/ErrClosed и некорректном запросе.
func (c *Client) Request(ctx context.Context, method, path, token string, body any) (Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("backend %s %s: encode body: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, rd)
	if err != nil {
		return Response{}, fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.pool.Do(req)
	if err != nil {
		if errors.Is(err, ErrClosed) {
			return Response{}, err
		}
		return Response{}, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	// тело читаем целиком всегда — иначе соединение не вернётся в пул
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %s %s: read body: %w", ErrUnavailable, method, path, err)
	}

	out := Response{Status: resp.StatusCode}
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") && json.Valid(raw) {
		out.JSON = raw
	} else {
		out.Text = string(raw)
	}
	return out, nil
}
