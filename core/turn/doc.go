// Package turn ties selection and accumulation together into per-turn
// orchestration: query text in, merged session tool set out. [Runner.Run]
// performs the select → resolve → merge → persist sequence for one user
// turn, serialized per session.
package turn
