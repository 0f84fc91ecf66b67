// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Services receive their dependencies (repositories, loggers) through
// constructor injection and expose interfaces to the delivery mechanisms.
// The user service wraps every repository call in the same observability
// contract: announce the operation, time the repository call alone, report
// the outcome with its duration, and pass errors to the caller exactly as
// the repository produced them. Absent users and rejected writes are normal
// outcomes carried in return values, never errors.
//
// The service layer depends on domain entities and repository interfaces
// (from store), but never on specific infrastructure implementations,
// maintaining the Dependency Inversion Principle of clean architecture.
package service
