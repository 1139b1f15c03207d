// Package schedule periodically re-runs router.Solve against a JSON
// snapshot file on disk: the last-known (state, income, floors, target,
// step) for a user, refreshed on a cron schedule rather than per-request.
//
// Grounded on mud-platform-backend/internal/npc/memory/jobs.go's
// cron.Cron-wrapped job manager in the example pack.
package schedule
