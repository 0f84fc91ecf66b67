// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// service layer, which depends on them without knowing which database
// technology sits behind them. Concrete implementations live under
// internal/platform.
package store
