package model

import (
	"praxis/shared/model"
)

const (
	TableName  = "offerings"
	EntityName = "offering"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldDurationMinutes = "duration_minutes"
	FieldPriceCents      = "price_cents"
	FieldActive          = "active"
)

type Offering struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	DurationMinutes int    `db:"duration_minutes"`
	PriceCents      int    `db:"price_cents"`
	Active          bool   `db:"active"`
	model.Metadata
}
