package schema

import (
	"time"

	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PairingRecord is the optional audit trail of a completed rendezvous
// pairing. One row per pair, written once the server has introduced
// or relayed both sides; never updated afterward.
// - id: UUID primary key
// - public_a/private_a, public_b/private_b: "host:port" endpoints of
//   each side as the server observed/received them
// - relay: whether the pair fell back to server relay instead of a
//   direct hole punch
// - completed_at: when the pairing finished
type PairingRecord struct {
	ent.Schema
}

// Fields of the PairingRecord.
func (PairingRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("public_a").
			NotEmpty().
			Immutable(),
		field.String("private_a").
			NotEmpty().
			Immutable(),
		field.String("public_b").
			NotEmpty().
			Immutable(),
		field.String("private_b").
			NotEmpty().
			Immutable(),
		field.Bool("relay").
			Default(false).
			Immutable(),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PairingRecord.
func (PairingRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("completed_at"),
	}
}
