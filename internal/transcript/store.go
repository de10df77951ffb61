package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/digitgenius/shopassist/internal/db"
)

// Exchange is one recorded chat round trip.
type Exchange struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Message    string    `json:"message"`
	Reply      string    `json:"reply"`
	Source     string    `json:"source"`
	ProductIDs []string  `json:"productIds,omitempty"`
	Transport  string    `json:"transport"`
}

// Store records chat exchanges for operator inspection. Recording is
// best-effort; a store failure never affects the reply sent to the user.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a new exchange. If e.ID is empty a UUID is generated.
func (s *Store) Record(ctx context.Context, e Exchange) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Transport == "" {
		e.Transport = "http"
	}

	ids, err := json.Marshal(e.ProductIDs)
	if err != nil {
		return fmt.Errorf("marshalling product ids: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO chat_exchanges (id, message, reply, source, product_ids, transport)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Message, e.Reply, e.Source, string(ids), e.Transport,
	)
	if err != nil {
		return fmt.Errorf("inserting chat exchange: %w", err)
	}
	return nil
}

// QueryFilter controls which exchanges are returned by Query.
type QueryFilter struct {
	Source string
	Since  *time.Time
	Limit  int
}

// Query returns exchanges matching the filter, most recent first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Exchange, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, filter.Source)
	}
	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}

	query := "SELECT id, timestamp, message, reply, source, product_ids, transport FROM chat_exchanges"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying chat exchanges: %w", err)
	}
	defer rows.Close()

	var exchanges []Exchange
	for rows.Next() {
		var (
			e       Exchange
			ts      string
			idsJSON string
		)
		if err := rows.Scan(&e.ID, &ts, &e.Message, &e.Reply, &e.Source, &idsJSON, &e.Transport); err != nil {
			return nil, err
		}
		if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
			e.Timestamp = t
		} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
			e.Timestamp = t
		}
		if err := json.Unmarshal([]byte(idsJSON), &e.ProductIDs); err != nil {
			e.ProductIDs = nil
		}
		exchanges = append(exchanges, e)
	}
	return exchanges, rows.Err()
}
