package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"riseup-bot/api/internal/assistant"
	"riseup-bot/api/internal/backend"
	"riseup-bot/api/internal/config"
	"riseup-bot/api/internal/httpserver"
	"riseup-bot/api/internal/session"
	"riseup-bot/api/internal/store"
	"riseup-bot/api/internal/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("bot stopped", "error", err)
		os.Exit(1)
	}
	log.Info("bot stopped")
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- HTTP pool к API платформы ---
	pool := backend.NewPool(cfg.HTTPTimeout, cfg.HTTPMaxConns)
	defer pool.Close()
	api := backend.New(cfg.APIBase, pool)
	sessions := session.NewMemory()

	// --- Postgres (опционально) ---
	db, attempts := openAttemptLog(ctx, cfg, log)
	if db != nil {
		defer db.Close()
	}

	// --- Telegram bot ---
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return err
	}
	bot.Debug = false
	log.Info("authorized", "bot", bot.Self.UserName)
	setCommands(bot, log)

	r := telegram.NewRouter(bot, api, sessions, newAsker(cfg, log), log)
	r.DonateURL = cfg.DonateURL
	if attempts != nil {
		r.Attempts = attempts
	}

	// обработчики доживают до конца даже после сигнала
	handleCtx := context.WithoutCancel(ctx)
	disp := telegram.NewDispatcher()
	handle := func(upd tgbotapi.Update) {
		disp.Dispatch(telegram.UserKey(upd), func() { r.HandleUpdate(handleCtx, upd) })
	}

	opts := httpserver.Options{Sessions: sessions.Len, Log: log}
	if db != nil {
		opts.DB = db
	}

	// --- Choose mode: Webhook vs Polling ---
	webhookURL := strings.TrimSpace(cfg.WebhookURL)
	if webhookURL != "" {
		path := "/webhook/" + httpserver.ShortHash(bot.Token)
		if err := setWebhook(bot, strings.TrimRight(webhookURL, "/")+path); err != nil {
			return err
		}
		opts.WebhookPath, opts.OnUpdate = path, handle
		log.Info("webhook mode", "path", path)
	} else {
		if _, err := bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			log.Warn("delete webhook", "error", err)
		}
		log.Info("polling mode")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpserver.NewRouter(opts),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if webhookURL == "" {
		g.Go(func() error {
			telegram.NewPoller(bot, log).Run(gctx, handle)
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	disp.Wait()
	return err
}

// openAttemptLog: журнал ответов — не критичная часть, без БД бот работает.
func openAttemptLog(ctx context.Context, cfg *config.Config, log *slog.Logger) (*sql.DB, *store.AttemptRepo) {
	if cfg.DatabaseURL == "" {
		log.Info("attempt log disabled: no DATABASE_URL")
		return nil, nil
	}
	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Warn("attempt log disabled", "error", err)
		return nil, nil
	}
	log.Info("db connected", "dsn", store.SafeDSNSummary(cfg.DatabaseURL))

	repo := store.NewAttemptRepo(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Warn("attempt log disabled: schema", "error", err)
		_ = db.Close()
		return nil, nil
	}
	if n, err := repo.PurgeOlderThan(ctx, cfg.AttemptRetention); err != nil {
		log.Warn("purge attempts", "error", err)
	} else if n > 0 {
		log.Info("purged old attempts", "rows", n)
	}
	return db, repo
}

func newAsker(cfg *config.Config, log *slog.Logger) assistant.Asker {
	if cfg.AIProvider == config.ProviderGemini {
		log.Info("ai provider", "name", "gemini", "model", cfg.GeminiModel)
		return assistant.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, log)
	}
	log.Info("ai provider", "name", "remote", "url", cfg.AIAPIURL)
	return assistant.NewRemote(cfg.AIAPIURL, cfg.AITimeout, log)
}

func setWebhook(bot *tgbotapi.BotAPI, public string) error {
	wh, err := tgbotapi.NewWebhook(public)
	if err != nil {
		return err
	}
	wh.DropPendingUpdates = true
	_, err = bot.Request(wh)
	return err
}

func setCommands(bot *tgbotapi.BotAPI, log *slog.Logger) {
	cmds := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Akkauntni botga bog‘lash"},
		tgbotapi.BotCommand{Command: "task", Description: "Savollar ro‘yxati"},
		tgbotapi.BotCommand{Command: "course", Description: "Kurslar menyusi"},
		tgbotapi.BotCommand{Command: "ai", Description: "RiseUp AI yordamchi"},
		tgbotapi.BotCommand{Command: "stats", Description: "Bot orqali natijalar"},
		tgbotapi.BotCommand{Command: "cancel", Description: "Javob berishni bekor qilish"},
		tgbotapi.BotCommand{Command: "help", Description: "Qo‘llanma"},
		tgbotapi.BotCommand{Command: "hissa", Description: "RiseUp ga hissa qo‘shish"},
	)
	if _, err := bot.Request(cmds); err != nil {
		log.Warn("set commands", "error", err)
	}
}
