// Package automatic runs games: it passes turns between two actors on a
// shared board, and plays batches of computer-versus-computer games.
package automatic

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/ai/player"
	"github.com/domino14/gomoku/board"
)

var (
	ErrGameOver    = errors.New("the game is over")
	ErrIllegalMove = errors.New("illegal move")
	ErrNoMoves     = errors.New("no moves to undo")
)

// GameRunner owns the board of one game. Actors only ever see clones of it:
// each turn takes a snapshot under the read lock, lets the actor on turn
// think in its own goroutine, then applies the answer under the write lock.
type GameRunner struct {
	mu sync.RWMutex

	id      string
	board   *board.Board
	actors  [2]player.Actor
	names   [2]string
	moves   []board.Move
	over    bool
	winner  board.Stone
	started time.Time
}

// NewGameRunner creates a runner. first plays the First stones and second
// the Second stones; turn says which of them moves first.
func NewGameRunner(first, second player.Actor, turn board.Stone) *GameRunner {
	r := &GameRunner{
		actors: [2]player.Actor{first, second},
		names:  [2]string{"first", "second"},
	}
	r.Reset(turn)
	return r
}

func stoneIdx(s board.Stone) int {
	if s == board.First {
		return 0
	}
	return 1
}

// SetNames sets the player names used in logs and game records.
func (r *GameRunner) SetNames(first, second string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = [2]string{first, second}
}

// SetActor replaces the actor playing s.
func (r *GameRunner) SetActor(s board.Stone, a player.Actor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actors[stoneIdx(s)] = a
}

// Reset starts a new game on a fresh board.
func (r *GameRunner) Reset(turn board.Stone) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.id = uuid.NewString()
	r.board = board.NewBoard(turn)
	r.moves = nil
	r.over = false
	r.winner = board.Empty
	r.started = time.Now()
}

func (r *GameRunner) ID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id
}

// Snapshot returns a private copy of the board.
func (r *GameRunner) Snapshot() *board.Board {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.board.Clone()
}

// Playing returns whether the game is still going.
func (r *GameRunner) Playing() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.over
}

// Winner is board.Empty while the game is going and after a draw.
func (r *GameRunner) Winner() board.Stone {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.winner
}

// Moves returns the moves played so far.
func (r *GameRunner) Moves() []board.Move {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]board.Move(nil), r.moves...)
}

// NameOnTurn returns the name of the player to move.
func (r *GameRunner) NameOnTurn() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names[stoneIdx(r.board.Turn())]
}

// Play applies m for the player to move and checks whether it ends the
// game.
func (r *GameRunner) Play(m board.Move) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.over {
		return ErrGameOver
	}
	mover := r.board.Turn()
	if !r.board.Apply(m) {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	r.moves = append(r.moves, m)
	switch {
	case r.board.CheckWinFrom(m):
		r.over = true
		r.winner = mover
	case r.board.IsFull():
		r.over = true
	}
	log.Debug().Str("game", r.id).Str("player", r.names[stoneIdx(mover)]).
		Str("move", m.String()).Int("turn", len(r.moves)).Bool("over", r.over).
		Msg("played")
	return nil
}

// Undo takes back the last move, reopening the game if it had ended.
func (r *GameRunner) Undo() (board.Move, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.moves) == 0 {
		return board.NoMove, ErrNoMoves
	}
	m := r.moves[len(r.moves)-1]
	r.board.Undo(m)
	r.moves = r.moves[:len(r.moves)-1]
	r.over = false
	r.winner = board.Empty
	return m, nil
}

// PlayTurn asks the actor on turn for a move and plays it. Waiting for the
// actor stops when ctx is done, but the actor itself is not interrupted.
func (r *GameRunner) PlayTurn(ctx context.Context) (board.Move, error) {
	r.mu.RLock()
	if r.over {
		r.mu.RUnlock()
		return board.NoMove, ErrGameOver
	}
	snapshot := r.board.Clone()
	actor := r.actors[stoneIdx(snapshot.Turn())]
	r.mu.RUnlock()

	answer := make(chan board.Move, 1)
	go func() {
		answer <- actor.Next(snapshot)
	}()

	var m board.Move
	select {
	case <-ctx.Done():
		return board.NoMove, ctx.Err()
	case m = <-answer:
	}
	return m, r.Play(m)
}

// PlayGame plays turns until the game ends and returns its record.
func (r *GameRunner) PlayGame(ctx context.Context) (*GameRecord, error) {
	for r.Playing() {
		if _, err := r.PlayTurn(ctx); err != nil {
			return nil, err
		}
	}
	return r.Record(), nil
}

// Record describes the game so far.
func (r *GameRunner) Record() *GameRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec := &GameRecord{
		ID:         r.id,
		First:      r.names[0],
		Second:     r.names[1],
		Opener:     r.names[stoneIdx(r.openingStone())],
		Length:     len(r.moves),
		DurationMS: time.Since(r.started).Milliseconds(),
	}
	for _, m := range r.moves {
		rec.Moves = append(rec.Moves, m.String())
	}
	switch {
	case !r.over:
		rec.Result = ResultUnfinished
	case r.winner == board.Empty:
		rec.Result = ResultDraw
	default:
		rec.Result = r.names[stoneIdx(r.winner)]
		rec.Winner = r.winner.String()
	}
	return rec
}

// openingStone is the color that made the first move.
func (r *GameRunner) openingStone() board.Stone {
	if len(r.moves)%2 == 0 {
		return r.board.Turn()
	}
	return r.board.Turn().Opponent()
}

// ToDisplayText renders the board and the move list.
func (r *GameRunner) ToDisplayText() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.board.ToDisplayText()
	s += fmt.Sprintf("%v (X) vs %v (O), %d moves", r.names[0], r.names[1], len(r.moves))
	if n := len(r.moves); n > 0 {
		s += fmt.Sprintf(", last %v", r.moves[n-1])
	}
	s += "\n"
	if r.over {
		if r.winner == board.Empty {
			s += "Game over: draw.\n"
		} else {
			s += fmt.Sprintf("Game over: %v wins.\n", r.names[stoneIdx(r.winner)])
		}
	}
	return s
}
