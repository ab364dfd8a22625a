package database

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller TaskRepository or UserRepository instead.
type DataStore interface {
	TaskRepository
	UserRepository
}

var _ DataStore = (*Repository)(nil)
