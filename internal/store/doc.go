// Package store provides SQLite-backed layout history for jointpanel.
//
// The store keeps two tables:
//   - layouts: organizer output, content-addressed by ir.LayoutHash
//   - builds: an append-only log of layout builds per rig
//
// # Ordering
//
// Builds are ordered by a logical seq assigned at write time, never by wall
// clock. Build listings use ORDER BY seq, id COLLATE BINARY so results
// are identical across runs.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: builds must reference a stored layout
package store
