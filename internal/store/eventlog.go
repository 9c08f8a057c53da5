package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"taskspark/internal/model"

	"github.com/google/uuid"
)

func nowUnixMilli() int64 {
	return time.Now().UTC().UnixMilli()
}

// AppendEvent records a mutation in the append-only event log. The log is
// write-only history for `taskspark events`; state is never rebuilt from it.
func (s Store) AppendEvent(ctx context.Context, actor, typ, entityID string, payload any) error {
	actor = strings.TrimSpace(actor)
	typ = strings.TrimSpace(typ)
	if typ == "" {
		typ = "unknown"
	}

	pb, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `
		INSERT INTO events(event_id, ts_unixms, actor, type, entity_id, payload_json)
		VALUES(?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), nowUnixMilli(), actor, typ, strings.TrimSpace(entityID), string(pb))
	return err
}

// ReadEventsTail returns the last N events in chronological order.
// If limit <= 0, all events are returned.
func (s Store) ReadEventsTail(ctx context.Context, limit int) ([]model.Event, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT event_id, ts_unixms, actor, type, entity_id, payload_json
	      FROM events
	      ORDER BY ts_unixms DESC, event_id DESC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var id, actor, typ, entityID, payloadJSON string
		var tsMs int64
		if err := rows.Scan(&id, &tsMs, &actor, &typ, &entityID, &payloadJSON); err != nil {
			return nil, err
		}
		var payload any
		_ = json.Unmarshal([]byte(payloadJSON), &payload)
		out = append(out, model.Event{
			ID:       id,
			TS:       time.UnixMilli(tsMs).UTC(),
			Actor:    actor,
			Type:     typ,
			EntityID: entityID,
			Payload:  payload,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Rows came newest-first for the LIMIT; flip to chronological for display.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if out == nil {
		out = []model.Event{}
	}
	return out, nil
}
