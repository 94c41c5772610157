// Package session holds per-user conversational state: the working set of
// tools a session has accumulated across turns, and the accumulation policy
// that grows it.
//
// [MergeAccumulate] is the pure merge at the heart of the policy: first
// appearance fixes a tool's position, later occurrences of the same id
// update it in place, and nothing is ever evicted. [State] serializes turns
// within one session; [Store] keys sessions by user id.
package session
