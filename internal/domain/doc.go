// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/task, domain/budget,
// domain/blog) and the XP projection lives in domain/progression.
// This root package holds sentinel errors, validation types, the caller
// Identity, and the Action interface that services stage writes through,
// shared across all entities.
package domain
