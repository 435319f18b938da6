package match

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"azul/internal/app"
	"azul/internal/domain"
)

// Status is the lifecycle status of the enclosing game record.
type Status string

const (
	// StatusActive means the match accepts moves.
	StatusActive Status = "active"
	// StatusFinished means the match reached its end condition or was
	// force-ended.
	StatusFinished Status = "finished"
)

// MoveRecord is one applied move in the match log.
type MoveRecord struct {
	Player int       `json:"player"`
	Token  string    `json:"token"`
	At     time.Time `json:"at"`
}

// Match is the game record owning one core state: id, status, player list,
// move log and timestamps. Its mutex serializes every state transition, so
// a Match may be shared between goroutines even though the core may not.
type Match struct {
	mu sync.Mutex

	id      uuid.UUID
	svc     *app.Service
	logger  *log.Logger
	players []string
	state   *domain.State

	status    Status
	endReason string
	moveLog   []MoveRecord
	createdAt time.Time
	updatedAt time.Time
}

// New creates a match record for the named players.
func New(svc *app.Service, logger *log.Logger, players []string, rules domain.Rules) (*Match, []app.Event, error) {
	if logger == nil {
		logger = log.Default()
	}
	state, events, err := svc.CreateMatch(len(players), rules)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	m := &Match{
		id:        uuid.New(),
		svc:       svc,
		logger:    logger,
		players:   append([]string{}, players...),
		state:     state,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}
	m.logger.Info("match created", "id", m.id, "players", len(players))
	return m, events, nil
}

// ID returns the record's unique id.
func (m *Match) ID() uuid.UUID {
	return m.id
}

// Players returns the player names in seat order.
func (m *Match) Players() []string {
	return append([]string{}, m.players...)
}

// Apply runs one move for the acting player, appends it to the move log and
// advances the record timestamps. Calls are serialized per match.
func (m *Match) Apply(actingPlayer int, token string) ([]app.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, events, err := m.svc.Apply(m.state, token, actingPlayer)
	if err != nil {
		m.logger.Debug("move rejected", "id", m.id, "player", actingPlayer, "token", token, "err", err)
		return nil, err
	}

	now := time.Now()
	m.state = next
	m.moveLog = append(m.moveLog, MoveRecord{Player: actingPlayer, Token: token, At: now})
	m.updatedAt = now
	if next.IsFinished() {
		m.status = StatusFinished
		m.logger.Info("match finished", "id", m.id, "moves", len(m.moveLog))
	}
	m.logger.Debug("move applied", "id", m.id, "player", actingPlayer, "token", token)
	return events, nil
}

// ForceEnd finishes the record without requiring the end condition, e.g.
// when the caller decides the match has gone stale.
func (m *Match) ForceEnd(reason string) []app.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status == StatusFinished {
		return nil
	}
	next, events := m.svc.ForceEnd(m.state, reason)
	m.state = next
	m.status = StatusFinished
	m.endReason = reason
	m.updatedAt = time.Now()
	m.logger.Info("match force-ended", "id", m.id, "reason", reason)
	return events
}

// Snapshot returns an independent copy of the current core state.
func (m *Match) Snapshot() *domain.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// Status returns the record status.
func (m *Match) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// EndReason returns the reason passed to ForceEnd, if any.
func (m *Match) EndReason() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.endReason
}

// MoveLog returns a copy of the applied-move log.
func (m *Match) MoveLog() []MoveRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MoveRecord{}, m.moveLog...)
}

// CreatedAt returns when the record was created.
func (m *Match) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt returns when the record last changed.
func (m *Match) UpdatedAt() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updatedAt
}

// Scores runs the service's score policy over the current state.
func (m *Match) Scores() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.svc.Score(m.state)
}
