// Package persistence groups the outbound adapters that implement
// [ports.TaskRepository]: an in-memory repository for tests and ephemeral
// runs (memory), a JSON file (file), a MySQL table (mysql), and a TTL read
// cache that wraps any of them (cache). The remote HTTP repository lives with
// the other outbound clients in adapters/clients/remote.
//
// Every repository stores the whole ordered task sequence: Save replaces what
// was there and Load returns it in the same order.
package persistence
