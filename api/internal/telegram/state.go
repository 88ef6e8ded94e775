package telegram

import "sync"

type step int

const (
	stateIdle step = iota
	stateAwaitEmail
	stateAwaitPassword
	stateAwaitAnswer
)

func (s step) String() string {
	switch s {
	case stateAwaitEmail:
		return "await_email"
	case stateAwaitPassword:
		return "await_password"
	case stateAwaitAnswer:
		return "await_answer"
	default:
		return "idle"
	}
}

// convState — позиция пользователя в диалоге.
type convState struct {
	Step   step
	Email  string
	TaskID int
}

type stateStore struct {
	mu sync.Mutex
	m  map[int64]convState
}

func newStateStore() *stateStore { return &stateStore{m: make(map[int64]convState)} }

func (s *stateStore) get(userID int64) convState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[userID]
}

func (s *stateStore) set(userID int64, st convState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.Step == stateIdle {
		delete(s.m, userID)
		return
	}
	s.m[userID] = st
}

func (s *stateStore) reset(userID int64) { s.set(userID, convState{}) }
