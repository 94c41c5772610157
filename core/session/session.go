package session

import (
	"sync"

	"github.com/toolscope/toolscope/providers/tool"
)

// MergeAccumulate merges a turn's newly selected tools into a session's
// previously active set. It walks previous followed by incoming: the first
// appearance of a tool id fixes its position, and a later occurrence of the
// same id replaces the stored value in place. The result therefore never
// contains duplicate ids, its length equals the number of distinct ids
// across both inputs, and a refreshed descriptor from incoming wins on
// content while keeping its original position.
//
// The function is pure; the caller persists the result back into the
// session's active set.
func MergeAccumulate(previous, incoming []tool.GenericTool) []tool.GenericTool {
	merged := make([]tool.GenericTool, 0, len(previous)+len(incoming))
	position := make(map[string]int, len(previous)+len(incoming))

	accumulate := func(tools []tool.GenericTool) {
		for _, t := range tools {
			id := t.ToolInfo().Name
			if pos, seen := position[id]; seen {
				merged[pos] = t
				continue
			}
			position[id] = len(merged)
			merged = append(merged, t)
		}
	}
	accumulate(previous)
	accumulate(incoming)

	return merged
}

// State is one user's conversational session: the tools accumulated across
// turns. Turn processing for a session must be serialized because a turn
// reads and then fully replaces the active set; [State.Update] provides that
// serialization. There is no eviction: the active set is non-decreasing
// until [State.Reset].
type State struct {
	userID string

	mu          sync.Mutex
	activeTools []tool.GenericTool
}

// UserID returns the session's key.
func (s *State) UserID() string {
	return s.userID
}

// ActiveTools returns a copy of the session's accumulated tool set, in
// insertion order of first appearance across turns.
func (s *State) ActiveTools() []tool.GenericTool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]tool.GenericTool, len(s.activeTools))
	copy(out, s.activeTools)
	return out
}

// Update runs one serialized turn against this session. fn receives the
// current active set and returns its replacement; while fn runs no other
// turn for this session can interleave. If fn returns an error the active
// set is left untouched and the error is returned, so a failed turn never
// corrupts session state. On success the replacement is stored in full and
// a copy returned.
func (s *State) Update(fn func(active []tool.GenericTool) ([]tool.GenericTool, error)) ([]tool.GenericTool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := make([]tool.GenericTool, len(s.activeTools))
	copy(current, s.activeTools)

	replacement, err := fn(current)
	if err != nil {
		return nil, err
	}

	s.activeTools = replacement
	out := make([]tool.GenericTool, len(replacement))
	copy(out, replacement)
	return out, nil
}

// Reset clears the session's accumulated tool set.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTools = nil
}

// Store maps user ids to their session state, creating a session on first
// use. Different sessions are independent; turns for different users may run
// fully in parallel.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*State
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*State),
	}
}

// Get returns the session for userID, creating an empty one on first use.
func (st *Store) Get(userID string) *State {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[userID]; ok {
		return s
	}
	s := &State{userID: userID}
	st.sessions[userID] = s
	return s
}

// Size returns the number of live sessions.
func (st *Store) Size() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
