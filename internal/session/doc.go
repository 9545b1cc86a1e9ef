// Package session owns a table's roster: which seats are AI-driven and
// with which personality, which are human, and which monster fights beside
// each seat. A Session is a value with no package-level state, so tests and
// services can run as many as they like side by side.
package session
