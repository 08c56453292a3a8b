// Package domain defines the core domain models for AuthMe.
//
// Domain models are pure value objects and entities without any
// IO dependencies or host coupling:
//
//   - Key: normalized per-player lookup key
//   - PlayerAuth: authoritative authenticated-session record
//   - LimboPlayer: pre-authentication state snapshot
//   - SaveOutcome: per-player result of the shutdown flush pass
//   - DomainError: structured errors with stable error codes
package domain
