package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"riseup-bot/api/internal/backend"
	"riseup-bot/api/internal/session"
)

const anonName = "foydalanuvchi"

var titleCaser = cases.Title(language.Und)

func (r *Router) onStart(msg *tgbotapi.Message) {
	uid := userID(msg)
	if s, ok := r.Sessions.Get(uid); ok {
		r.states.reset(uid)
		name := s.Username
		if name == "" {
			name = fullName(msg.From)
		}
		r.send(msg.Chat.ID, fmt.Sprintf(msgAlreadyLinked, name))
		return
	}
	r.states.set(uid, convState{Step: stateAwaitEmail})
	r.send(msg.Chat.ID, msgAskEmail)
}

func (r *Router) onEmail(msg *tgbotapi.Message, email string) {
	r.states.set(userID(msg), convState{Step: stateAwaitPassword, Email: email})
	r.send(msg.Chat.ID, msgAskPassword)
}

// onPassword логинит пользователя. Состояние сбрасывается при любом исходе.
func (r *Router) onPassword(ctx context.Context, msg *tgbotapi.Message, st convState, password string) {
	uid, cid := userID(msg), msg.Chat.ID
	r.states.reset(uid)

	// пароль не должен висеть в переписке
	if _, err := r.Bot.Request(tgbotapi.NewDeleteMessage(cid, msg.MessageID)); err != nil {
		r.Log.Debug("delete password message", "chat_id", cid, "error", err)
	}

	res, err := r.API.Login(ctx, st.Email, password)
	if err != nil {
		r.Log.Info("login failed", "user_id", uid, "error", err)
		if errors.Is(err, backend.ErrUnavailable) {
			r.send(cid, msgUnavailable)
			return
		}
		r.send(cid, msgAuthFailed)
		return
	}

	if err := r.API.LinkTelegram(ctx, res.Access, uid); err != nil {
		r.Log.Warn("link telegram failed", "user_id", uid, "error", err)
	}

	name := res.Username
	if name == "" {
		name = anonName
	}
	r.Sessions.Put(uid, session.Session{
		Access:     res.Access,
		Refresh:    res.Refresh,
		Email:      st.Email,
		Username:   name,
		AcquiredAt: time.Now(),
	})
	r.Log.Info("user linked", "user_id", uid, "username", name)
	r.send(cid, fmt.Sprintf(msgLinked, titleCaser.String(name)))
}

func fullName(u *tgbotapi.User) string {
	if u == nil {
		return anonName
	}
	if n := strings.TrimSpace(u.FirstName + " " + u.LastName); n != "" {
		return n
	}
	return anonName
}
