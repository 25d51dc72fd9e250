package scan

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"
)

const scanBucketName = "scans"

// History records completed scan envelopes so the UI can re-show recent
// suggestions. Accepted items are never persisted here; only the envelopes
// are.
type History interface {
	// Record appends a scan result.
	Record(res Result) error

	// Recent returns up to limit results, newest first.
	Recent(limit int) ([]Result, error)

	// Close closes the store.
	Close() error
}

// BoltHistory implements History on BoltDB.
type BoltHistory struct {
	db *bbolt.DB
}

// NewBoltHistory opens (or creates) the history database at path.
func NewBoltHistory(path string) (*BoltHistory, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(scanBucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltHistory{db: db}, nil
}

// Record appends a scan result keyed by its record time, so a reverse
// cursor walk yields newest first.
func (h *BoltHistory) Record(res Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	key := []byte(fmt.Sprintf("%020d", time.Now().UnixNano()))
	return h.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(scanBucketName)).Put(key, data)
	})
}

// Recent returns up to limit results, newest first.
func (h *BoltHistory) Recent(limit int) ([]Result, error) {
	results := make([]Result, 0, limit)
	err := h.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(scanBucketName)).Cursor()
		for k, v := c.Last(); k != nil && len(results) < limit; k, v = c.Prev() {
			var res Result
			if err := json.Unmarshal(v, &res); err != nil {
				slog.Warn("skipping unreadable scan record", "key", string(k), "error", err)
				continue
			}
			results = append(results, res)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading scan history: %w", err)
	}
	return results, nil
}

// Close closes the underlying database.
func (h *BoltHistory) Close() error {
	return h.db.Close()
}
