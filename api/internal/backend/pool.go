package backend

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrUnavailable — сервер недостижим: ошибка соединения или таймаут.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrClosed — пул уже закрыт.
	ErrClosed = errors.New("backend pool closed")
)

// Pool — единый на процесс пул соединений к API платформы.
// Создаётся один раз при старте и закрывается один раз при остановке.
type Pool struct {
	httpc  *http.Client
	tr     *http.Transport
	closed atomic.Bool
	once   sync.Once
}

// NewPool: timeout покрывает весь обмен (connect + заголовки + тело).
func NewPool(timeout time.Duration, maxConns int) *Pool {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if maxConns <= 0 {
		maxConns = 50
	}
	dialer := &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		MaxConnsPerHost:     maxConns,
		MaxIdleConns:        maxConns,
		MaxIdleConnsPerHost: maxConns,
		IdleConnTimeout:     5 * time.Minute,
		TLSHandshakeTimeout: 10 * time.Second,
		ForceAttemptHTTP2:   true,
	}
	return &Pool{
		httpc: &http.Client{Timeout: timeout, Transport: tr},
		tr:    tr,
	}
}

// Do выполняет запрос через общий клиент.
func (p *Pool) Do(req *http.Request) (*http.Response, error) {
	if p.closed.Load() {
		return nil, ErrClosed
	}
	return p.httpc.Do(req)
}

// Close закрывает простаивающие соединения. Повторный вызов ничего не делает.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		p.tr.CloseIdleConnections()
	})
}
