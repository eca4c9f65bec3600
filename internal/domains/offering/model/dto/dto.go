package dto

import (
	"praxis/internal/domains/offering/model"
	"praxis/shared"
	gDto "praxis/shared/dto"
	gModel "praxis/shared/model"
	"praxis/shared/timezone"

	"github.com/google/uuid"
)

type CreateOfferingRequest struct {
	Name            string `json:"name"             validate:"required,min=2,max=100"`
	Description     string `json:"description"      validate:"omitempty,max=1000"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=15,max=480"`
	PriceCents      int    `json:"price_cents"      validate:"omitempty,min=0"`
	Active          bool   `json:"active"`
}

func (c *CreateOfferingRequest) ToModel(user string) model.Offering {
	now := timezone.Now()

	return model.Offering{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		PriceCents:      c.PriceCents,
		Active:          c.Active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateOfferingRequest struct {
	Name            string `db:"name"             json:"name"             validate:"omitempty,min=2,max=100"`
	Description     string `db:"description"      json:"description"      validate:"omitempty,max=1000"`
	DurationMinutes int    `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	PriceCents      int    `db:"price_cents"      json:"price_cents"      validate:"omitempty,min=0"`
	Active          *bool  `db:"active"           json:"active"`
}

type OfferingResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int    `json:"price_cents"`
	Active          bool   `json:"active"`
	gDto.Metadata
}

func (r *OfferingResponse) FromModel(model model.Offering) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.DurationMinutes = model.DurationMinutes
	r.PriceCents = model.PriceCents
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetOfferingsResponse struct {
	Offerings []OfferingResponse `json:"offerings"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetOfferingsResponse) FromModels(models []model.Offering, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Offerings = make([]OfferingResponse, len(models))
	for i, mod := range models {
		r.Offerings[i].FromModel(mod)
	}
}
