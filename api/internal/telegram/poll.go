package telegram

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdatesGetter — long polling часть *tgbotapi.BotAPI.
type UpdatesGetter interface {
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
}

var reRetryAfter = regexp.MustCompile(`(?i)retry after\s+(\d+)`)

// RetryDelay — пауза после ошибки getUpdates.
func RetryDelay(err error) time.Duration {
	if err == nil {
		return 0
	}
	var te *tgbotapi.Error
	if errors.As(err, &te) && te.RetryAfter > 0 {
		return time.Duration(te.RetryAfter) * time.Second
	}
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "too many requests") { // HTTP 429 от Telegram
		if m := reRetryAfter.FindStringSubmatch(s); len(m) == 2 {
			if n, _ := strconv.Atoi(m[1]); n > 0 {
				return time.Duration(n) * time.Second
			}
		}
		return 3 * time.Second
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return 2 * time.Second
	}
	return 1 * time.Second
}

// Poller — устойчивый long polling с backoff, без log.Fatal/os.Exit.
type Poller struct {
	Bot      UpdatesGetter
	Log      *slog.Logger
	Timeout  int // секунды long polling
	MinDelay time.Duration
	MaxDelay time.Duration
	Idle     time.Duration
}

func NewPoller(bot UpdatesGetter, log *slog.Logger) *Poller {
	if log == nil {
		log = slog.Default()
	}
	return &Poller{
		Bot:      bot,
		Log:      log,
		Timeout:  30,
		MinDelay: 1 * time.Second,
		MaxDelay: 15 * time.Second,
		Idle:     200 * time.Millisecond,
	}
}

// Run получает апдейты до отмены ctx и отдаёт их в handle по порядку.
func (p *Poller) Run(ctx context.Context, handle func(tgbotapi.Update)) {
	offset := 0
	for {
		if ctx.Err() != nil {
			p.Log.Info("polling stopped")
			return
		}

		u := tgbotapi.NewUpdate(offset)
		u.Timeout = p.Timeout

		updates, err := p.Bot.GetUpdates(u)
		if err != nil {
			d := min(max(RetryDelay(err), p.MinDelay), p.MaxDelay)
			p.Log.Warn("polling error", "error", err, "retry_in", d)
			sleep(ctx, d)
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			handle(upd)
		}

		if len(updates) == 0 {
			sleep(ctx, p.Idle)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
