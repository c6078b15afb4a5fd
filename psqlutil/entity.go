package psqlutil

import (
	"context"
	"fmt"
	"time"

	"github.com/eagleviewent/go-utilities/datetime"
	"github.com/eagleviewent/go-utilities/uuid"
	"gorm.io/gorm"
)

// SystemActor is recorded in the audit columns when the context
// carries no actor.
const SystemActor = "system"

type actorKey struct{}

// WithActor returns a context whose writes are audited as actor.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor set by WithActor, or SystemActor.
func ActorFromContext(ctx context.Context) string {
	if ctx == nil {
		return SystemActor
	}

	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}

	return SystemActor
}

var nowFunc = time.Now

// Entity is the base of persisted models. It carries a time ordered
// version 7 primary key and the audit columns, all maintained by GORM
// hooks.
type Entity struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	InsertedBy string    `gorm:"size:100;not null"`
	InsertedAt time.Time `gorm:"not null"`
	ModifiedBy string    `gorm:"size:100;not null"`
	ModifiedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns an ordered ID when none is set and fills
// every audit column.
func (e *Entity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		id, err := uuid.NewOrdered()
		if err != nil {
			return fmt.Errorf("new ordered id: %w", err)
		}

		e.ID = id
	}

	actor := ActorFromContext(statementContext(tx))
	now := datetime.TruncateToSeconds(nowFunc().UTC())

	e.InsertedBy, e.InsertedAt = actor, now
	e.ModifiedBy, e.ModifiedAt = actor, now

	return nil
}

// BeforeUpdate refreshes the modification audit columns. They are set
// on the statement as well, so partial updates such as
// Model(&e).Update(column, value) write them too.
func (e *Entity) BeforeUpdate(tx *gorm.DB) error {
	actor := ActorFromContext(statementContext(tx))
	now := datetime.TruncateToSeconds(nowFunc().UTC())

	e.ModifiedBy, e.ModifiedAt = actor, now

	if tx != nil && tx.Statement != nil && tx.Statement.Dest != nil {
		tx.Statement.SetColumn("modified_by", actor)
		tx.Statement.SetColumn("modified_at", now)
	}

	return nil
}

func statementContext(tx *gorm.DB) context.Context {
	if tx == nil || tx.Statement == nil {
		return nil
	}

	return tx.Statement.Context
}
