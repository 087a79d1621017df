package negamax

import (
	"sync/atomic"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/board"
)

// Rough cost of one map entry, buckets and overhead included.
const entrySize = 48

const (
	minMemoEntries = 1 << 16
	maxMemoEntries = 1 << 26
)

type memoKey struct {
	ply         uint8
	fingerprint uint64
}

type memoEntry struct {
	score int32
	move  board.Move
}

// Memo remembers search results by ply from the root and board
// fingerprint. Its size is a fraction of system memory; when full it is
// emptied and starts over.
type Memo struct {
	table    map[memoKey]memoEntry
	capacity int
	keysID   uint64

	created atomic.Uint64
	lookups atomic.Uint64
	hits    atomic.Uint64
	clears  atomic.Uint64
}

func NewMemo(fractionOfMemory float64) *Memo {
	totalMem := memory.TotalMemory()
	desired := fractionOfMemory * float64(totalMem) / entrySize
	capacity := int(desired)
	capacity = max(capacity, minMemoEntries)
	capacity = min(capacity, maxMemoEntries)

	log.Debug().Int("capacity", capacity).
		Float64("desired-num-elems", desired).
		Int("estimated-total-memory-bytes", capacity*entrySize).
		Uint64("total-system-memory-bytes", totalMem).
		Msg("memo-size")

	return &Memo{
		table:    make(map[memoKey]memoEntry),
		capacity: capacity,
	}
}

// prepare empties the memo if b uses a different key table than the
// positions stored so far.
func (t *Memo) prepare(b *board.Board) {
	if id := b.KeysID(); id != t.keysID {
		t.Reset()
		t.keysID = id
	}
}

func (t *Memo) lookup(ply int, fingerprint uint64) (memoEntry, bool) {
	t.lookups.Add(1)
	e, ok := t.table[memoKey{uint8(ply), fingerprint}]
	if ok {
		t.hits.Add(1)
	}
	return e, ok
}

func (t *Memo) store(ply int, fingerprint uint64, score int, m board.Move) {
	if len(t.table) >= t.capacity {
		clear(t.table)
		t.clears.Add(1)
		log.Debug().Int("capacity", t.capacity).Msg("memo-full-cleared")
	}
	t.table[memoKey{uint8(ply), fingerprint}] = memoEntry{int32(score), m}
	t.created.Add(1)
}

// Reset empties the memo and zeroes its counters.
func (t *Memo) Reset() {
	clear(t.table)
	t.created.Store(0)
	t.lookups.Store(0)
	t.hits.Store(0)
	t.clears.Store(0)
}

func (t *Memo) Len() int {
	return len(t.table)
}

// MemoStats are cumulative since the last Reset.
type MemoStats struct {
	Lookups uint64
	Hits    uint64
	Created uint64
	Clears  uint64
}

func (t *Memo) Stats() MemoStats {
	return MemoStats{
		Lookups: t.lookups.Load(),
		Hits:    t.hits.Load(),
		Created: t.created.Load(),
		Clears:  t.clears.Load(),
	}
}
