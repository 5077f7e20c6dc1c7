package cart

/* SQLite-backed cart snapshots. Each session's items are stored as one
 * serialized JSON array under the session's storage key; persistence is a
 * best-effort mirror of the in-memory state, not a transaction log. */

import (
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"midnightgrove/error_messages"
)

// SnapshotRepository is the persistence boundary of the cart store.
type SnapshotRepository interface {
	Load(storageKey string) ([]CartItem, error)
	Save(storageKey string, items []CartItem) error
	Delete(storageKey string) error
	AttachPaymentIntent(storageKey string, paymentIntentID string) error
	KeyForPaymentIntent(paymentIntentID string) (string, error)
}

type SQLiteSnapshots struct {
	db *sql.DB
}

func NewSQLiteSnapshots(db *sql.DB) *SQLiteSnapshots {
	return &SQLiteSnapshots{db: db}
}

// OpenDatabase opens (or creates) the snapshot database and runs migrations.
func OpenDatabase(filename string) (*SQLiteSnapshots, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, errors.Wrap(err, "open cart database")
	}

	repo := NewSQLiteSnapshots(db)
	if err := repo.Migrate(); err != nil {
		return nil, errors.Wrap(err, "migrate cart database")
	}
	return repo, nil
}

func (r *SQLiteSnapshots) Migrate() error {
	query := `
    CREATE TABLE IF NOT EXISTS cart_snapshot(
        storage_key TEXT PRIMARY KEY,
        items TEXT NOT NULL,
        payment_intent_id TEXT NOT NULL DEFAULT '',
        updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_cart_snapshot_pi
        ON cart_snapshot(payment_intent_id);
    `

	_, err := r.db.Exec(query)
	return err
}

// Load returns the items stored under a storage key. A snapshot that fails to
// decode is treated as absent: the cart simply starts empty.
func (r *SQLiteSnapshots) Load(storageKey string) ([]CartItem, error) {
	row := r.db.QueryRow("SELECT items FROM cart_snapshot WHERE storage_key = ?", storageKey)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, error_messages.ErrNotExists
		}
		return nil, err
	}

	items, err := DecodeSnapshot([]byte(raw))
	if err != nil {
		log.WithError(err).WithField("key", storageKey).Warn("Malformed cart snapshot ignored")
		return nil, error_messages.ErrNotExists
	}
	return items, nil
}

func (r *SQLiteSnapshots) Save(storageKey string, items []CartItem) error {
	raw, err := EncodeSnapshot(items)
	if err != nil {
		return errors.Wrap(err, "encode cart snapshot")
	}

	_, err = r.db.Exec(`
        INSERT INTO cart_snapshot(storage_key, items) VALUES(?, ?)
        ON CONFLICT(storage_key) DO UPDATE
            SET items = excluded.items, updated_at = CURRENT_TIMESTAMP`,
		storageKey, string(raw))
	return err
}

func (r *SQLiteSnapshots) Delete(storageKey string) error {
	res, err := r.db.Exec("DELETE FROM cart_snapshot WHERE storage_key = ?", storageKey)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return error_messages.ErrDeleteFailed
	}
	return nil
}

// AttachPaymentIntent records which payment intent belongs to a cart so the
// webhook can find the cart again after the payment settles.
func (r *SQLiteSnapshots) AttachPaymentIntent(storageKey string, paymentIntentID string) error {
	res, err := r.db.Exec(
		"UPDATE cart_snapshot SET payment_intent_id = ? WHERE storage_key = ?",
		paymentIntentID, storageKey)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return error_messages.ErrUpdateFailed
	}
	return nil
}

func (r *SQLiteSnapshots) KeyForPaymentIntent(paymentIntentID string) (string, error) {
	row := r.db.QueryRow(
		"SELECT storage_key FROM cart_snapshot WHERE payment_intent_id = ?",
		paymentIntentID)

	var storageKey string
	if err := row.Scan(&storageKey); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", error_messages.ErrNotExists
		}
		return "", err
	}
	return storageKey, nil
}

// EncodeSnapshot serializes cart items to the persisted JSON-array form.
func EncodeSnapshot(items []CartItem) ([]byte, error) {
	if items == nil {
		items = []CartItem{}
	}
	return json.Marshal(items)
}

// DecodeSnapshot parses a persisted snapshot. There is no versioning or
// migration; a malformed snapshot is an error the caller discards.
func DecodeSnapshot(raw []byte) ([]CartItem, error) {
	var items []CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, "decode cart snapshot")
	}
	return items, nil
}
