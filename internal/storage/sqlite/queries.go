package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/storage"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// queries implements the read side over either the pool or a transaction
type queries struct {
	db dbtx
}

// tx adds the write side; it only ever wraps a *sql.Tx
type tx struct {
	queries
}

var _ storage.Tx = (*tx)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func toNanos(t time.Time) int64 {
	return t.UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

// Player operations

const playerColumns = `id, display_name, rating, is_admin, created_at`

func scanPlayer(row scanner) (*model.Player, error) {
	var (
		p         model.Player
		createdAt int64
	)
	if err := row.Scan(&p.ID, &p.DisplayName, &p.Rating, &p.IsAdmin, &createdAt); err != nil {
		return nil, err
	}
	p.CreatedAt = fromNanos(createdAt)
	return &p, nil
}

func (q *queries) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	p, err := scanPlayer(q.db.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	return p, nil
}

func (q *queries) GetPlayers(ctx context.Context, ids []model.PlayerID) (map[model.PlayerID]*model.Player, error) {
	result := make(map[model.PlayerID]*model.Player, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	rows, err := q.db.QueryContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("get players: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("get players: %w", err)
		}
		result[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get players: %w", err)
	}
	return result, nil
}

func (q *queries) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	var (
		rp                   model.RegisteredPlayer
		createdAt, updatedAt int64
	)
	err := q.db.QueryRowContext(ctx, `
		SELECT player_id, username, password_hash, created_at, updated_at
		FROM registered_players WHERE username = ?
	`, username).Scan(&rp.PlayerID, &rp.Username, &rp.PasswordHash, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get registered player: %w", err)
	}
	rp.CreatedAt = fromNanos(createdAt)
	rp.UpdatedAt = fromNanos(updatedAt)
	return &rp, nil
}

func (t *tx) SavePlayer(ctx context.Context, player *model.Player) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO players (id, display_name, rating, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			display_name = excluded.display_name,
			rating = excluded.rating,
			is_admin = excluded.is_admin
	`, player.ID, player.DisplayName, player.Rating, player.IsAdmin, toNanos(player.CreatedAt))
	if err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	return nil
}

func (t *tx) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO registered_players (player_id, username, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			username = excluded.username,
			password_hash = excluded.password_hash,
			updated_at = excluded.updated_at
	`, rp.PlayerID, rp.Username, rp.PasswordHash, toNanos(rp.CreatedAt), toNanos(rp.UpdatedAt))
	if err != nil {
		return fmt.Errorf("save registered player: %w", err)
	}
	return nil
}

// Game operations

const gameColumns = `id, scheduled_at, location, markdown, state, created_by, created_at, updated_at`

func scanGame(row scanner) (*model.Game, error) {
	var (
		g                                 model.Game
		scheduledAt, createdAt, updatedAt int64
	)
	if err := row.Scan(&g.ID, &scheduledAt, &g.Location, &g.Markdown, &g.State, &g.CreatedBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	g.ScheduledAt = fromNanos(scheduledAt)
	g.CreatedAt = fromNanos(createdAt)
	g.UpdatedAt = fromNanos(updatedAt)
	return &g, nil
}

func (q *queries) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	g, err := scanGame(q.db.QueryRowContext(ctx,
		`SELECT `+gameColumns+` FROM games WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}
	return g, nil
}

func (q *queries) GetOpenGame(ctx context.Context) (*model.Game, error) {
	g, err := scanGame(q.db.QueryRowContext(ctx, `
		SELECT `+gameColumns+` FROM games
		WHERE state = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, model.GameStateOpen))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNoOpenGame
	}
	if err != nil {
		return nil, fmt.Errorf("get open game: %w", err)
	}
	return g, nil
}

func (q *queries) ListGamesByState(ctx context.Context, state model.GameState) ([]*model.Game, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+gameColumns+` FROM games
		WHERE state = ?
		ORDER BY created_at, rowid
	`, state)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var games []*model.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("list games: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (t *tx) SaveGame(ctx context.Context, game *model.Game) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO games (id, scheduled_at, location, markdown, state, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			scheduled_at = excluded.scheduled_at,
			location = excluded.location,
			markdown = excluded.markdown,
			state = excluded.state,
			created_by = excluded.created_by,
			updated_at = excluded.updated_at
	`,
		game.ID,
		toNanos(game.ScheduledAt),
		game.Location,
		game.Markdown,
		game.State,
		game.CreatedBy,
		toNanos(game.CreatedAt),
		toNanos(game.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

func (t *tx) ArchiveOpenGames(ctx context.Context, at time.Time) (int, error) {
	res, err := t.db.ExecContext(ctx, `
		UPDATE games SET state = ?, updated_at = ? WHERE state = ?
	`, model.GameStateArchived, toNanos(at), model.GameStateOpen)
	if err != nil {
		return 0, fmt.Errorf("archive open games: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("archive open games: %w", err)
	}
	return int(n), nil
}

// Attendance operations

const attendanceColumns = `game_id, player_id, status, created_at, updated_at`

func scanAttendance(row scanner) (*model.Attendance, error) {
	var (
		a                    model.Attendance
		createdAt, updatedAt int64
	)
	if err := row.Scan(&a.GameID, &a.PlayerID, &a.Status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	a.CreatedAt = fromNanos(createdAt)
	a.UpdatedAt = fromNanos(updatedAt)
	return &a, nil
}

func (q *queries) GetAttendance(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Attendance, error) {
	a, err := scanAttendance(q.db.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendances WHERE game_id = ? AND player_id = ?`,
		gameID, playerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrAttendanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return a, nil
}

func (q *queries) ListAttendances(ctx context.Context, gameID model.GameID) ([]*model.Attendance, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+attendanceColumns+` FROM attendances
		WHERE game_id = ?
		ORDER BY created_at, rowid
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	defer rows.Close()

	var result []*model.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("list attendances: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	return result, nil
}

func (t *tx) UpsertAttendance(ctx context.Context, a *model.Attendance) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO attendances (game_id, player_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(game_id, player_id) DO UPDATE SET
			status = excluded.status,
			updated_at = excluded.updated_at
	`, a.GameID, a.PlayerID, a.Status, toNanos(a.CreatedAt), toNanos(a.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upsert attendance: %w", err)
	}
	return nil
}

// Guest operations

const guestColumns = `id, game_id, inviter_id, display_name, rating, primary_position, secondary_position, status, created_at, updated_at`

func scanGuest(row scanner) (*model.GuestSlot, error) {
	var (
		g                    model.GuestSlot
		createdAt, updatedAt int64
	)
	err := row.Scan(&g.ID, &g.GameID, &g.InviterID, &g.DisplayName, &g.Rating,
		&g.PrimaryPosition, &g.SecondaryPosition, &g.Status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	g.CreatedAt = fromNanos(createdAt)
	g.UpdatedAt = fromNanos(updatedAt)
	return &g, nil
}

func (q *queries) listGuests(ctx context.Context, where string, args ...any) ([]*model.GuestSlot, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+guestColumns+` FROM guest_players
		WHERE `+where+`
		ORDER BY created_at, rowid
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	var result []*model.GuestSlot
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("list guests: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return result, nil
}

func (q *queries) GetGuest(ctx context.Context, id model.GuestID) (*model.GuestSlot, error) {
	g, err := scanGuest(q.db.QueryRowContext(ctx,
		`SELECT `+guestColumns+` FROM guest_players WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}
	return g, nil
}

func (q *queries) ListGuests(ctx context.Context, gameID model.GameID) ([]*model.GuestSlot, error) {
	return q.listGuests(ctx, `game_id = ?`, gameID)
}

func (q *queries) ListGuestsByInviter(ctx context.Context, gameID model.GameID, inviterID model.PlayerID) ([]*model.GuestSlot, error) {
	return q.listGuests(ctx, `game_id = ? AND inviter_id = ?`, gameID, inviterID)
}

func (t *tx) SaveGuest(ctx context.Context, g *model.GuestSlot) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO guest_players (`+guestColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			display_name = excluded.display_name,
			rating = excluded.rating,
			primary_position = excluded.primary_position,
			secondary_position = excluded.secondary_position,
			status = excluded.status,
			updated_at = excluded.updated_at
	`,
		g.ID,
		g.GameID,
		g.InviterID,
		g.DisplayName,
		g.Rating,
		g.PrimaryPosition,
		g.SecondaryPosition,
		g.Status,
		toNanos(g.CreatedAt),
		toNanos(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save guest: %w", err)
	}
	return nil
}

func (t *tx) DeleteGuest(ctx context.Context, id model.GuestID) error {
	res, err := t.db.ExecContext(ctx, `DELETE FROM guest_players WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}
	if n == 0 {
		return model.ErrGuestNotFound
	}
	return nil
}

func (q *queries) CountConfirmed(ctx context.Context, gameID model.GameID) (int, error) {
	var count int
	err := q.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM attendances WHERE game_id = ? AND status IN (?, ?)) +
			(SELECT COUNT(*) FROM guest_players WHERE game_id = ? AND status = ?)
	`,
		gameID, model.StatusConfirmed, model.StatusLateConfirmed,
		gameID, model.GuestConfirmed,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count confirmed: %w", err)
	}
	return count, nil
}
