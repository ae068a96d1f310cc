package storage

import (
	"fmt"
	"time"
)

// Blob key prefixes. Incoming raw mention batches land under inbox/,
// processed batches are archived under processed/, and generated
// snapshots live under snapshots/<product>/.
const (
	InboxPrefix     = "inbox/"
	ProcessedPrefix = "processed/"
	SnapshotPrefix  = "snapshots/"
)

// StorageInterface defines the contract for storage operations
type StorageInterface interface {
	Store(filename string, data []byte) error
	Retrieve(filename string) ([]byte, error)
	List(prefix string) ([]string, error)
	Delete(filename string) error
}

// SnapshotKey builds the blob name for a product snapshot. Keys sort
// lexicographically by time, so the last key under a product prefix is
// the most recent snapshot.
func SnapshotKey(product string, at time.Time) string {
	return fmt.Sprintf("%s%s/%s.json", SnapshotPrefix, product, at.UTC().Format("2006-01-02T15-04-05"))
}

// ProcessedKey maps an inbox blob name to its archive location.
func ProcessedKey(inboxName string) string {
	return ProcessedPrefix + inboxName[len(InboxPrefix):]
}
