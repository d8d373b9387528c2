// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/employee, domain/bonus,
// domain/org). This root package holds sentinel errors, validation types and
// validators, the seniority Level, and the Action interface used to stage
// reversible roster changes.
package domain
