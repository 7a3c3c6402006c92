package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"qrqueue/internal/logging"
)

// Add stores item, replacing any existing record with the same id.
func (s *Store) Add(ctx context.Context, item Item) error {
	id, _ := item.ID()
	key, err := encodeKey(id)
	if err != nil {
		return storageError("add", err)
	}
	data, err := json.Marshal(item)
	if err != nil {
		return storageError("add", fmt.Errorf("encode item: %w", err))
	}

	db, err := s.handle(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO `+s.table+` (key, data, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key,
		string(data),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return storageError("add", fmt.Errorf("put item: %w", err))
	}
	logging.WithContext(ctx, s.logger).Debug("item stored", logging.String(logging.FieldItemID, item.IDString()))
	return nil
}

// List returns a snapshot of every stored item. Each call decodes fresh
// copies; callers may mutate them freely. Order is not guaranteed.
func (s *Store) List(ctx context.Context) ([]Item, error) {
	db, err := s.handle(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT data FROM `+s.table+` ORDER BY key`)
	if err != nil {
		return nil, storageError("list", fmt.Errorf("query items: %w", err))
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, storageError("list", fmt.Errorf("scan item: %w", err))
		}
		item, err := decodeItem(data)
		if err != nil {
			return nil, storageError("list", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list", fmt.Errorf("iterate items: %w", err))
	}
	return items, nil
}

// Delete removes the item with the given id. Missing ids are not an error.
func (s *Store) Delete(ctx context.Context, id any) error {
	key, err := encodeKey(id)
	if err != nil {
		return storageError("delete", err)
	}

	db, err := s.handle(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM `+s.table+` WHERE key = ?`, key)
	if err != nil {
		return storageError("delete", fmt.Errorf("delete item: %w", err))
	}
	if removed, err := res.RowsAffected(); err == nil {
		logging.WithContext(ctx, s.logger).Debug("item deleted",
			logging.String(logging.FieldItemID, fmt.Sprint(id)),
			logging.Bool("present", removed > 0),
		)
	}
	return nil
}

func decodeItem(data string) (Item, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.UseNumber()
	var item Item
	if err := dec.Decode(&item); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	return item, nil
}
