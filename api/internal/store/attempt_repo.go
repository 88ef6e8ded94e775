package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Attempt — одна проверенная попытка ответа.
type Attempt struct {
	ID         int64
	CreatedAt  time.Time
	TelegramID int64
	TaskID     int
	TaskType   string
	Answer     string
	Correct    bool
}

// Summary — агрегат по пользователю для /stats.
type Summary struct {
	Total   int
	Correct int
	LastAt  time.Time
}

type AttemptRepo struct{ DB *sql.DB }

func NewAttemptRepo(db *sql.DB) *AttemptRepo { return &AttemptRepo{DB: db} }

var schema = []string{`
create table if not exists answer_attempts (
  id          bigserial primary key,
  created_at  timestamptz not null default now(),
  telegram_id bigint not null,
  task_id     integer not null,
  task_type   text not null default '',
  answer      text not null default '',
  correct     boolean not null
)`,
	`create index if not exists answer_attempts_tg_idx on answer_attempts (telegram_id, created_at desc)`,
}

// EnsureSchema создаёт таблицу при первом запуске.
func (r *AttemptRepo) EnsureSchema(ctx context.Context) error {
	for _, q := range schema {
		if _, err := r.DB.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// Insert сохраняет попытку. Ответ обрезается до 1000 символов.
func (r *AttemptRepo) Insert(ctx context.Context, a Attempt) error {
	ans := []rune(a.Answer)
	if len(ans) > 1000 {
		ans = ans[:1000]
	}
	const q = `
insert into answer_attempts (telegram_id, task_id, task_type, answer, correct)
values ($1,$2,$3,$4,$5)`
	_, err := r.DB.ExecContext(ctx, q, a.TelegramID, a.TaskID, a.TaskType, string(ans), a.Correct)
	return err
}

// Summary считает попытки пользователя. Нет попыток — нулевой Summary без ошибки.
func (r *AttemptRepo) Summary(ctx context.Context, telegramID int64) (Summary, error) {
	const q = `
select count(*),
       count(*) filter (where correct),
       max(created_at)
from answer_attempts
where telegram_id = $1`
	var (
		s    Summary
		last sql.NullTime
	)
	if err := r.DB.QueryRowContext(ctx, q, telegramID).Scan(&s.Total, &s.Correct, &last); err != nil {
		return Summary{}, err
	}
	if last.Valid {
		s.LastAt = last.Time
	}
	return s, nil
}

// PurgeOlderThan удаляет старые попытки, чтобы не раздувать БД.
func (r *AttemptRepo) PurgeOlderThan(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, errors.New("olderThan must be > 0")
	}
	cutoff := time.Now().Add(-olderThan)
	const q = `delete from answer_attempts where created_at < $1`
	res, err := r.DB.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}
