package dto

import (
	"praxis/internal/domains/settings/model"
	"praxis/shared"
	gDto "praxis/shared/dto"
	gModel "praxis/shared/model"
	"praxis/shared/timezone"
)

type UpsertSettingRequest struct {
	Key   string `json:"key"   validate:"required,max=100"`
	Value string `json:"value" validate:"required,max=2000"`
}

func (c *UpsertSettingRequest) ToModel(user string) model.Setting {
	now := timezone.Now()

	return model.Setting{
		Key:   c.Key,
		Value: c.Value,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	gDto.Metadata
}

func (r *SettingResponse) FromModel(model model.Setting) {
	r.Key = model.Key
	r.Value = model.Value
	r.Metadata.FromModel(model.Metadata)
}

type GetSettingsResponse struct {
	Settings  []SettingResponse `json:"settings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSettingsResponse) FromModels(models []model.Setting, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Settings = make([]SettingResponse, len(models))
	for i, mod := range models {
		r.Settings[i].FromModel(mod)
	}
}

// PublicSettingsResponse is the whitelisted key-value view for the site.
type PublicSettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

func (r *PublicSettingsResponse) FromModels(models []model.Setting) {
	r.Settings = make(map[string]string, len(models))
	for _, mod := range models {
		r.Settings[mod.Key] = mod.Value
	}
}
