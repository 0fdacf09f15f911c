// Package audit is the optional PostgreSQL-backed history of completed
// rendezvous pairings. The rendezvous protocol itself keeps no
// persistent state; a server without a DSN configured runs with a
// no-op recorder.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/dalbodeule/hopgate/ent"
	entpairingrecord "github.com/dalbodeule/hopgate/ent/pairingrecord"
	"github.com/dalbodeule/hopgate/internal/config"
	"github.com/dalbodeule/hopgate/internal/endpoint"
	"github.com/dalbodeule/hopgate/internal/logging"

	_ "github.com/lib/pq"
)

// Config holds PostgreSQL connection and pool settings for the audit
// store.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func defaultConfig(dsn string) Config {
	return Config{
		DSN:             dsn,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// OpenPostgres opens an ent.Client backed by PostgreSQL, configures the
// pool, verifies the connection, and auto-migrates the PairingRecord
// schema.
func OpenPostgres(ctx context.Context, logger logging.Logger, cfg Config) (*ent.Client, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, fmt.Errorf("audit: postgres DSN is empty")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("audit: open postgres db: %w", err)
	}

	configurePool(db, cfg)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("audit: ping postgres: %w", err)
	}

	entDrv := entsql.OpenDB("postgres", db)
	client := ent.NewClient(ent.Driver(entDrv))

	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("audit: ent schema create: %w", err)
	}

	logger.Info("audit store connected to postgres and applied schema", nil)
	return client, nil
}

func configurePool(db *sql.DB, cfg Config) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns >= 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// ErrNotFound reports that no PairingRecord matches the requested id.
var ErrNotFound = fmt.Errorf("audit: pairing record not found")

// PairingStore records completed rendezvous pairings and serves them
// back out for the admin API. It satisfies rendezvous.PairingRecorder.
type PairingStore struct {
	logger logging.Logger
	client *ent.Client
}

// NewPairingStore wraps an already-open ent.Client.
func NewPairingStore(logger logging.Logger, client *ent.Client) *PairingStore {
	return &PairingStore{
		logger: logger.With(logging.Fields{"component": "audit_store"}),
		client: client,
	}
}

// RecordPairing persists one completed pairing, direct or relayed.
// Errors are logged, not returned: the audit trail is best-effort and
// must never block the rendezvous protocol.
func (s *PairingStore) RecordPairing(public, private, peerPublic, peerPrivate endpoint.Endpoint, relay bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.PairingRecord.Create().
		SetPublicA(public.String()).
		SetPrivateA(private.String()).
		SetPublicB(peerPublic.String()).
		SetPrivateB(peerPrivate.String()).
		SetRelay(relay).
		Save(ctx)
	if err != nil {
		s.logger.Error("failed to record pairing", logging.Fields{"error": err.Error()})
	}
}

// Record is the admin-API-facing view of a PairingRecord row.
type Record struct {
	ID          string    `json:"id"`
	PublicA     string    `json:"public_a"`
	PrivateA    string    `json:"private_a"`
	PublicB     string    `json:"public_b"`
	PrivateB    string    `json:"private_b"`
	Relay       bool      `json:"relay"`
	CompletedAt time.Time `json:"completed_at"`
}

// List returns the most recently completed pairings, newest first.
func (s *PairingStore) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := s.client.PairingRecord.Query().
		Order(ent.Desc(entpairingrecord.FieldCompletedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit: list pairings: %w", err)
	}
	return toRecords(rows), nil
}

// Get returns a single pairing by id, or ErrNotFound.
func (s *PairingStore) Get(ctx context.Context, id string) (Record, error) {
	uid, err := parseUUID(id)
	if err != nil {
		return Record{}, fmt.Errorf("audit: invalid id: %w", err)
	}
	row, err := s.client.PairingRecord.Get(ctx, uid)
	if err != nil {
		if ent.IsNotFound(err) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("audit: get pairing: %w", err)
	}
	return toRecord(row), nil
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

func toRecords(rows []*ent.PairingRecord) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRecord(row))
	}
	return out
}

func toRecord(row *ent.PairingRecord) Record {
	return Record{
		ID:          row.ID.String(),
		PublicA:     row.PublicA,
		PrivateA:    row.PrivateA,
		PublicB:     row.PublicB,
		PrivateB:    row.PrivateB,
		Relay:       row.Relay,
		CompletedAt: row.CompletedAt,
	}
}

// NewRecorderFromEnv opens the audit store if config.AuditDSN() is set,
// returning a no-op recorder and a no-op closer otherwise. The caller
// gets back a PairingRecorder (the same method set as
// rendezvous.PairingRecorder) so the server doesn't need to know
// whether audit is enabled.
func NewRecorderFromEnv(logger logging.Logger) (recorder PairingRecorder, closeFn func(), err error) {
	dsn := strings.TrimSpace(config.AuditDSN())
	if dsn == "" {
		logger.Info("audit store disabled: no HOPGATE_AUDIT_DSN set", nil)
		return noopStore{}, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := OpenPostgres(ctx, logger, defaultConfig(dsn))
	if err != nil {
		return nil, nil, err
	}

	store := NewPairingStore(logger, client)
	return store, func() { _ = client.Close() }, nil
}

// PairingRecorder mirrors rendezvous.PairingRecorder so this package
// doesn't need to import internal/rendezvous; cmd/server wires the two
// together.
type PairingRecorder interface {
	RecordPairing(public, private, peerPublic, peerPrivate endpoint.Endpoint, relay bool)
}

// noopStore is used when no audit DSN is configured.
type noopStore struct{}

func (noopStore) RecordPairing(public, private, peerPublic, peerPrivate endpoint.Endpoint, relay bool) {
}
