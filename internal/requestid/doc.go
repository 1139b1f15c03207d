// Package requestid mints correlation IDs for one Solve invocation so logs
// from the same request can be grepped together. cmd/allocsolver's solve
// command tags its log lines with one; internal/httpapi uses chi's own
// request ID instead. The solver core never sees or needs
// these: they exist purely for log correlation at the boundary.
//
// Grounded on google/uuid's presence across the example pack (e.g.
// mud-platform-backend/internal/npc/memory) for exactly this purpose.
package requestid
