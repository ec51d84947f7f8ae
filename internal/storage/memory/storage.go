package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// A transaction holds the write lock for its whole life and works on a copy
// of the data, which replaces the live data only on commit.
type Storage struct {
	mu   sync.RWMutex
	data *state
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{data: newState()}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// WithTx runs fn against a private copy of the data and publishes it on success
func (s *Storage) WithTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.data.clone()
	if err := fn(staged); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data = staged
	return nil
}

// View holds the read lock while fn runs, so no transaction can publish
// in the middle of it
func (s *Storage) View(_ context.Context, fn func(r storage.Reader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

// Close is a no-op for memory storage
func (s *Storage) Close() error {
	return nil
}

// Player operations

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.GetPlayer(ctx, id)
}

func (s *Storage) GetPlayers(ctx context.Context, ids []model.PlayerID) (map[model.PlayerID]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.GetPlayers(ctx, ids)
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.GetRegisteredPlayerByUsername(ctx, username)
}

// Game operations

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.GetGame(ctx, id)
}

func (s *Storage) GetOpenGame(ctx context.Context) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.GetOpenGame(ctx)
}

func (s *Storage) ListGamesByState(ctx context.Context, st model.GameState) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.ListGamesByState(ctx, st)
}

// Attendance operations

func (s *Storage) GetAttendance(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.GetAttendance(ctx, gameID, playerID)
}

func (s *Storage) ListAttendances(ctx context.Context, gameID model.GameID) ([]*model.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.ListAttendances(ctx, gameID)
}

// Guest operations

func (s *Storage) GetGuest(ctx context.Context, id model.GuestID) (*model.GuestSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.GetGuest(ctx, id)
}

func (s *Storage) ListGuests(ctx context.Context, gameID model.GameID) ([]*model.GuestSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.ListGuests(ctx, gameID)
}

func (s *Storage) ListGuestsByInviter(ctx context.Context, gameID model.GameID, inviterID model.PlayerID) ([]*model.GuestSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.ListGuestsByInviter(ctx, gameID, inviterID)
}

func (s *Storage) CountConfirmed(ctx context.Context, gameID model.GameID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.CountConfirmed(ctx, gameID)
}

// state holds one consistent snapshot of all data. Rows are stored by value
// and carry an insertion sequence that breaks creation-time ties.
type state struct {
	seq int64

	players       map[model.PlayerID]model.Player
	registered    map[model.PlayerID]model.RegisteredPlayer
	usernameIndex map[string]model.PlayerID
	games         map[model.GameID]row[model.Game]
	attendances   map[attendanceKey]row[model.Attendance]
	guests        map[model.GuestID]row[model.GuestSlot]
}

type row[T any] struct {
	value T
	seq   int64
}

type attendanceKey struct {
	gameID   model.GameID
	playerID model.PlayerID
}

// Ensure state can serve as a transaction
var _ storage.Tx = (*state)(nil)

func newState() *state {
	return &state{
		players:       make(map[model.PlayerID]model.Player),
		registered:    make(map[model.PlayerID]model.RegisteredPlayer),
		usernameIndex: make(map[string]model.PlayerID),
		games:         make(map[model.GameID]row[model.Game]),
		attendances:   make(map[attendanceKey]row[model.Attendance]),
		guests:        make(map[model.GuestID]row[model.GuestSlot]),
	}
}

func (st *state) clone() *state {
	return &state{
		seq:           st.seq,
		players:       cloneMap(st.players),
		registered:    cloneMap(st.registered),
		usernameIndex: cloneMap(st.usernameIndex),
		games:         cloneMap(st.games),
		attendances:   cloneMap(st.attendances),
		guests:        cloneMap(st.guests),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (st *state) nextSeq() int64 {
	st.seq++
	return st.seq
}

// sortRows orders rows by creation time, then insertion order
func sortRows[T any](rows []row[T], createdAt func(T) time.Time) []*T {
	sort.Slice(rows, func(i, j int) bool {
		ti, tj := createdAt(rows[i].value), createdAt(rows[j].value)
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return rows[i].seq < rows[j].seq
	})
	out := make([]*T, len(rows))
	for i := range rows {
		v := rows[i].value
		out[i] = &v
	}
	return out
}

// Player operations

func (st *state) GetPlayer(_ context.Context, id model.PlayerID) (*model.Player, error) {
	p, ok := st.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &p, nil
}

func (st *state) GetPlayers(_ context.Context, ids []model.PlayerID) (map[model.PlayerID]*model.Player, error) {
	result := make(map[model.PlayerID]*model.Player, len(ids))
	for _, id := range ids {
		if p, ok := st.players[id]; ok {
			result[id] = &p
		}
	}
	return result, nil
}

func (st *state) GetRegisteredPlayerByUsername(_ context.Context, username string) (*model.RegisteredPlayer, error) {
	playerID, ok := st.usernameIndex[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	rp, ok := st.registered[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &rp, nil
}

func (st *state) SavePlayer(_ context.Context, player *model.Player) error {
	st.players[player.ID] = *player
	return nil
}

func (st *state) SaveRegisteredPlayer(_ context.Context, rp *model.RegisteredPlayer) error {
	st.registered[rp.PlayerID] = *rp
	st.usernameIndex[rp.Username] = rp.PlayerID
	return nil
}

// Game operations

func (st *state) GetGame(_ context.Context, id model.GameID) (*model.Game, error) {
	r, ok := st.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	g := r.value
	return &g, nil
}

func (st *state) GetOpenGame(ctx context.Context) (*model.Game, error) {
	open, _ := st.ListGamesByState(ctx, model.GameStateOpen)
	if len(open) == 0 {
		return nil, model.ErrNoOpenGame
	}
	return open[len(open)-1], nil
}

func (st *state) ListGamesByState(_ context.Context, gameState model.GameState) ([]*model.Game, error) {
	var rows []row[model.Game]
	for _, r := range st.games {
		if r.value.State == gameState {
			rows = append(rows, r)
		}
	}
	return sortRows(rows, func(g model.Game) time.Time { return g.CreatedAt }), nil
}

func (st *state) SaveGame(_ context.Context, game *model.Game) error {
	r, ok := st.games[game.ID]
	if !ok {
		r.seq = st.nextSeq()
	}
	r.value = *game
	st.games[game.ID] = r
	return nil
}

func (st *state) ArchiveOpenGames(_ context.Context, at time.Time) (int, error) {
	archived := 0
	for id, r := range st.games {
		if r.value.State != model.GameStateOpen {
			continue
		}
		r.value.State = model.GameStateArchived
		r.value.UpdatedAt = at
		st.games[id] = r
		archived++
	}
	return archived, nil
}

// Attendance operations

func (st *state) GetAttendance(_ context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Attendance, error) {
	r, ok := st.attendances[attendanceKey{gameID: gameID, playerID: playerID}]
	if !ok {
		return nil, model.ErrAttendanceNotFound
	}
	a := r.value
	return &a, nil
}

func (st *state) ListAttendances(_ context.Context, gameID model.GameID) ([]*model.Attendance, error) {
	var rows []row[model.Attendance]
	for key, r := range st.attendances {
		if key.gameID == gameID {
			rows = append(rows, r)
		}
	}
	return sortRows(rows, func(a model.Attendance) time.Time { return a.CreatedAt }), nil
}

func (st *state) UpsertAttendance(_ context.Context, attendance *model.Attendance) error {
	key := attendanceKey{gameID: attendance.GameID, playerID: attendance.PlayerID}
	r, ok := st.attendances[key]
	value := *attendance
	if ok {
		value.CreatedAt = r.value.CreatedAt
	} else {
		r.seq = st.nextSeq()
	}
	r.value = value
	st.attendances[key] = r
	return nil
}

// Guest operations

func (st *state) GetGuest(_ context.Context, id model.GuestID) (*model.GuestSlot, error) {
	r, ok := st.guests[id]
	if !ok {
		return nil, model.ErrGuestNotFound
	}
	g := r.value
	return &g, nil
}

func (st *state) ListGuests(_ context.Context, gameID model.GameID) ([]*model.GuestSlot, error) {
	var rows []row[model.GuestSlot]
	for _, r := range st.guests {
		if r.value.GameID == gameID {
			rows = append(rows, r)
		}
	}
	return sortRows(rows, func(g model.GuestSlot) time.Time { return g.CreatedAt }), nil
}

func (st *state) ListGuestsByInviter(_ context.Context, gameID model.GameID, inviterID model.PlayerID) ([]*model.GuestSlot, error) {
	var rows []row[model.GuestSlot]
	for _, r := range st.guests {
		if r.value.GameID == gameID && r.value.InviterID == inviterID {
			rows = append(rows, r)
		}
	}
	return sortRows(rows, func(g model.GuestSlot) time.Time { return g.CreatedAt }), nil
}

func (st *state) SaveGuest(_ context.Context, guest *model.GuestSlot) error {
	r, ok := st.guests[guest.ID]
	if !ok {
		r.seq = st.nextSeq()
	}
	r.value = *guest
	st.guests[guest.ID] = r
	return nil
}

func (st *state) DeleteGuest(_ context.Context, id model.GuestID) error {
	if _, ok := st.guests[id]; !ok {
		return model.ErrGuestNotFound
	}
	delete(st.guests, id)
	return nil
}

func (st *state) CountConfirmed(_ context.Context, gameID model.GameID) (int, error) {
	count := 0
	for key, r := range st.attendances {
		if key.gameID == gameID && r.value.Status.TakesSpot() {
			count++
		}
	}
	for _, r := range st.guests {
		if r.value.GameID == gameID && r.value.Status == model.GuestConfirmed {
			count++
		}
	}
	return count, nil
}
