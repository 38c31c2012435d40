// Package titlemap provides the bidirectional mapping between node titles
// and dense integer ids. A Builder is used at write time to intern titles
// in first-seen order; a TitleMap is loaded at read time from the sidecar
// file for title/id lookups in both directions.
//
// The read-side lookup is sharded by xxHash64(title), adapting the
// teacher's internal/hash.ID helper (internal/hash/id.go) to spread a
// Wikipedia-scale title set (millions of entries) across several smaller
// maps instead of one, the same motivation behind mebo's collision
// tracker sharding titles by hash bucket (internal/collision/tracker.go).
package titlemap

import (
	"github.com/wlinknet/wlinknet/errs"
	"github.com/wlinknet/wlinknet/internal/hash"
)

// shardCount is the number of title->id shards a loaded TitleMap spreads
// its entries across. A power of two so the modulo below compiles to a mask.
const shardCount = 64

// Builder interns titles in first-seen order during the writer's id
// assignment pass. It is not safe for concurrent use; the store format
// has no concurrent-writer support.
type Builder struct {
	byTitle map[string]uint64
	titles  []string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byTitle: make(map[string]uint64)}
}

// Intern returns title's existing id, or assigns and returns the next
// dense id if title has not been seen before. Returns errs.ErrInvalidTitle
// if title contains a tab or newline byte, since the sidecar's line format
// cannot represent either.
func (b *Builder) Intern(title string) (uint64, bool, error) {
	for i := 0; i < len(title); i++ {
		if title[i] == '\t' || title[i] == '\n' {
			return 0, false, errs.ErrInvalidTitle
		}
	}

	if id, ok := b.byTitle[title]; ok {
		return id, false, nil
	}

	id := uint64(len(b.titles))
	b.byTitle[title] = id
	b.titles = append(b.titles, title)

	return id, true, nil
}

// NodeCount returns the number of distinct titles interned so far.
func (b *Builder) NodeCount() uint32 {
	return uint32(len(b.titles))
}

// TitleOf returns the title assigned to id during interning. Only valid
// for ids already produced by Intern.
func (b *Builder) TitleOf(id uint64) string {
	return b.titles[id]
}

// Titles returns the interned titles in first-seen (assignment) order, the
// order the sidecar file records them in.
func (b *Builder) Titles() []string {
	return b.titles
}

// TitleMap is the read-time bidirectional title<->id structure, loaded
// whole from the sidecar file. Safe for concurrent reads: it is never
// mutated after LoadSidecar returns.
type TitleMap struct {
	shards    [shardCount]map[string]uint64
	byID      []string
	nodeCount uint32
}

// IDOf returns the id associated with title, and whether title was found.
func (m *TitleMap) IDOf(title string) (uint64, bool) {
	shard := m.shards[hash.ID(title)&(shardCount-1)]
	id, ok := shard[title]

	return id, ok
}

// TitleOf returns the title associated with id, and whether id is within
// range.
func (m *TitleMap) TitleOf(id uint64) (string, bool) {
	if id >= uint64(len(m.byID)) {
		return "", false
	}

	return m.byID[id], true
}

// NodeCount returns one more than the highest id loaded, which is the
// number of titles loaded when the sidecar's ids are contiguous from 0.
func (m *TitleMap) NodeCount() uint32 {
	return m.nodeCount
}
