// Package service provides domain services for AuthMe.
//
// ValidationService answers exclusion and name-format questions; the
// LoginThrottler rate-limits authentication attempts per player key.
package service
