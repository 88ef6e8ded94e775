package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *Pool) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	pool := NewPool(2*time.Second, 4)
	t.Cleanup(pool.Close)
	return New(srv.URL+"/api/", pool), pool
}

func TestRequestJSONAndBearer(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tasks/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID")
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	r, err := c.Request(context.Background(), http.MethodGet, "/tasks/", "tok", nil)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if r.Status != http.StatusOK || !r.OK() {
		t.Errorf("status = %d", r.Status)
	}
	var v struct{ OK bool }
	if err := r.Decode(&v); err != nil || !v.OK {
		t.Errorf("Decode = %+v, %v", v, err)
	}
}

func TestRequestTextBodyAndNoAuth(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("unexpected Authorization header")
		}
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<h1>down</h1>"))
	})

	r, err := c.Request(context.Background(), http.MethodGet, "/x/", "", nil)
	if err != nil {
		t.Fatalf("non-2xx must not be an error: %v", err)
	}
	if r.Status != http.StatusBadGateway || r.OK() {
		t.Errorf("status = %d", r.Status)
	}
	if r.JSON != nil || r.Text != "<h1>down</h1>" {
		t.Errorf("unexpected body: %+v", r)
	}
	if err := r.Decode(&struct{}{}); err == nil {
		t.Error("Decode of text body should fail")
	}
}

func TestRequestSendsJSONBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var in map[string]any
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode: %v", err)
		}
		if in["correct"] != true {
			t.Errorf("body = %v", in)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	if err := c.UpdateStats(context.Background(), "tok", true); err != nil {
		t.Fatalf("UpdateStats: %v", err)
	}
}

func TestRequestTimeoutIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	pool := NewPool(100*time.Millisecond, 2)
	defer pool.Close()
	c := New(srv.URL, pool)

	_, err := c.Request(context.Background(), http.MethodGet, "/slow/", "", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestRequestConnectionRefusedIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	pool := NewPool(time.Second, 2)
	defer pool.Close()
	_, err := New(url, pool).Request(context.Background(), http.MethodGet, "/", "", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestPoolClose(t *testing.T) {
	c, pool := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	pool.Close()
	pool.Close()
	_, err := c.Request(context.Background(), http.MethodGet, "/", "", nil)
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("err = %v, want ErrClosed", err)
	}
	if errors.Is(err, ErrUnavailable) {
		t.Error("closed pool must not look like an unreachable server")
	}
}

func TestLogin(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json")
		if in["email"] != "ali@example.com" || in["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"bad"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access":"A","refresh":"R","username":"ali"}`))
	})

	res, err := c.Login(context.Background(), "ali@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Access != "A" || res.Refresh != "R" || res.Username != "ali" {
		t.Errorf("Login = %+v", res)
	}

	_, err = c.Login(context.Background(), "ali@example.com", "nope")
	if !IsUnauthorized(err) {
		t.Fatalf("err = %v, want 401 StatusError", err)
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("error text = %q", err.Error())
	}
}

func TestTasksListAndPage(t *testing.T) {
	body := `[{"id":1,"title":"A"},{"id":2,"title":"B"}]`
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	list, err := c.Tasks(context.Background(), "tok")
	if err != nil || len(list) != 2 || list[1].Title != "B" {
		t.Fatalf("Tasks = %+v, %v", list, err)
	}

	body = `{"count":1,"results":[{"id":9,"title":"Z"}]}`
	list, err = c.Tasks(context.Background(), "tok")
	if err != nil || len(list) != 1 || list[0].ID != 9 {
		t.Fatalf("Tasks(page) = %+v, %v", list, err)
	}
}

func TestTaskDetail(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tasks/5/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":5,"title":"T","type":"mcq","options":[{"text":"a","correct":true}]}`))
	})

	task, err := c.Task(context.Background(), "tok", 5)
	if err != nil {
		t.Fatalf("Task: %v", err)
	}
	if task.ID != 5 || len(task.Options) != 1 || !task.Options[0].Correct {
		t.Errorf("Task = %+v", task)
	}

	_, err = c.Task(context.Background(), "tok", 6)
	var se *StatusError
	if !errors.As(err, &se) || se.Status != http.StatusNotFound {
		t.Fatalf("err = %v, want 404 StatusError", err)
	}
	if IsUnauthorized(err) {
		t.Error("404 reported as unauthorized")
	}
}

func TestLinkTelegram(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in map[string]int64
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["telegram_id"] != 777 {
			t.Errorf("telegram_id = %d", in["telegram_id"])
		}
		w.WriteHeader(http.StatusOK)
	})
	if err := c.LinkTelegram(context.Background(), "tok", 777); err != nil {
		t.Fatalf("LinkTelegram: %v", err)
	}
}
