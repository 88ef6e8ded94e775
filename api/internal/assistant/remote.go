package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Remote — внешний AI-эндпоинт вида {message, prompt} -> {status, response}.
type Remote struct {
	URL   string
	Log   *slog.Logger
	httpc *http.Client
}

func NewRemote(endpoint string, timeout time.Duration, log *slog.Logger) *Remote {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Remote{
		URL:   strings.TrimSpace(endpoint),
		Log:   log,
		httpc: &http.Client{Timeout: timeout},
	}
}

type remoteReply struct {
	Status   string `json:"status"`
	Response any    `json:"response"`
}

// Ask: сначала POST JSON; если транспорт упал (кроме таймаута) — один повтор GET с теми же полями в query.
func (r *Remote) Ask(ctx context.Context, question string) string {
	payload := map[string]string{
		"message": question,
		"prompt":  BuildPrompt(question),
	}
	// развёрнутый сервер читает поле с опечаткой
	payload["promt"] = payload["prompt"]

	reply, status, err := r.post(ctx, payload)
	if err != nil {
		if isTimeout(err) {
			r.Log.Warn("ai post timeout", "error", err)
			return msgTimeout
		}
		var de decodeErr
		if errors.As(err, &de) {
			r.Log.Warn("ai post bad body", "error", err)
			return msgTimeout
		}
		r.Log.Warn("ai post failed, falling back to GET", "error", err)
		reply, status, err = r.get(ctx, payload)
		if err != nil {
			r.Log.Warn("ai get failed", "error", err)
			return msgConnError
		}
	}
	if status != http.StatusOK {
		return fmt.Sprintf(msgServerError, status)
	}
	if reply.Status != "success" {
		return msgBadStatus
	}
	switch v := reply.Response.(type) {
	case nil:
		return msgNoAnswer
	case string:
		return v
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

func (r *Remote) post(ctx context.Context, payload map[string]string) (remoteReply, int, error) {
	b, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, bytes.NewReader(b))
	if err != nil {
		return remoteReply{}, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	return r.do(req)
}

func (r *Remote) get(ctx context.Context, payload map[string]string) (remoteReply, int, error) {
	u, err := url.Parse(r.URL)
	if err != nil {
		return remoteReply{}, 0, err
	}
	q := u.Query()
	for k, v := range payload {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return remoteReply{}, 0, err
	}
	return r.do(req)
}

type decodeErr struct{ error }

func (e decodeErr) Unwrap() error { return e.error }

func (r *Remote) do(req *http.Request) (remoteReply, int, error) {
	resp, err := r.httpc.Do(req)
	if err != nil {
		return remoteReply{}, 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return remoteReply{}, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return remoteReply{}, resp.StatusCode, nil
	}
	// content-type не проверяем: сервер иногда отдаёт JSON как text/html
	var out remoteReply
	if err := json.Unmarshal(raw, &out); err != nil {
		return remoteReply{}, resp.StatusCode, decodeErr{err}
	}
	return out, resp.StatusCode, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
