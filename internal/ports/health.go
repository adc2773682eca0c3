package ports

import "context"

// HealthChecker is a dependency the task store needs to keep its data: the
// file directory, the MySQL connection, the remote store, and the persister
// that remembers the last failed save.
type HealthChecker interface {
	// Name identifies the dependency in the readiness body and in logs,
	// e.g. "file", "mysql", "remote-store", "persistence".
	Name() string

	// HealthCheck returns nil when the dependency can serve a load or save
	// right now. It should return early when ctx ends.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checkers the readiness endpoint runs.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the results by
	// name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
