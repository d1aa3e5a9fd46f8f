package database

// DataStore defines the unified interface for all data operations needed by
// the TUI and the CLI. Consumers can depend on the smaller BookingReader or
// BookingWriter when that is all they need.
type DataStore interface {
	BookingRepository
}
