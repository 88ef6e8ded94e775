// Package session хранит авторизацию пользователей бота в памяти процесса.
package session

import (
	"sync"
	"time"
)

// Session — токены бэкенда, привязанные к telegram-пользователю.
type Session struct {
	UserID     int64
	Access     string
	Refresh    string
	Email      string
	Username   string
	AcquiredAt time.Time
}

// Store — хранилище сессий. Один пользователь — не более одной сессии.
type Store interface {
	Put(userID int64, s Session)
	Get(userID int64) (Session, bool)
	Clear(userID int64)
}

// Memory — Store поверх sync.Map. Переживает только время жизни процесса.
type Memory struct {
	m   sync.Map // userID -> Session
	now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// Put создаёт или перезаписывает сессию (последняя запись побеждает).
func (m *Memory) Put(userID int64, s Session) {
	s.UserID = userID
	if s.AcquiredAt.IsZero() {
		s.AcquiredAt = m.now()
	}
	m.m.Store(userID, s)
}

func (m *Memory) Get(userID int64) (Session, bool) {
	v, ok := m.m.Load(userID)
	if !ok {
		return Session{}, false
	}
	return v.(Session), true
}

func (m *Memory) Clear(userID int64) { m.m.Delete(userID) }

// Len — число активных сессий (для /healthz и логов).
func (m *Memory) Len() int {
	n := 0
	m.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
