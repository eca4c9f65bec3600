package settings

import (
	"net/http"
	"praxis/infras/otel"
	"praxis/internal/domains/settings/model/dto"
	"praxis/internal/domains/settings/service"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	"praxis/shared/validator"
	"praxis/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/public", handler.GetPublicSettings)
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Put("/", handler.UpsertSetting)
		routerGroup.Get("/{key}", handler.GetSettingByKey)
		routerGroup.Delete("/{key}", handler.DeleteSetting)
	})
}

// GetPublicSettings returns the whitelisted settings the public site renders.
// @Summary Get public settings
// @Description Retrieve the settings exposed to the public site (contact, social, booking).
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.PublicSettingsResponse] "Public settings"
// @Failure 500 {object} response.Error
// @Router /v1/settings/public [get]
func (handler *Handler) GetPublicSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublicSettings")
	defer scope.End()

	settings, err := handler.service.GetPublic(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get public settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Public settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// GetSettings retrieves all settings.
// @Summary Get all settings
// @Description Retrieve all settings with pagination.
// @Tags Settings
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetSettingsResponse] "List of settings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	settings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// GetSettingByKey retrieves a setting by its key.
// @Summary Get a setting by key
// @Description Retrieve a single setting by its key.
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} response.Data[dto.SettingResponse] "Setting details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/{key} [get]
// @Security BearerAuth
func (handler *Handler) GetSettingByKey(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettingByKey")
	defer scope.End()

	key := chi.URLParam(r, "key")

	setting, err := handler.service.Get(ctx, key)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get setting by key")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Setting retrieved successfully")

	response.WithJSON(w, http.StatusOK, setting)
}

// UpsertSetting creates or replaces a setting.
// @Summary Create or update a setting
// @Description Create a setting or replace its value when the key already exists.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpsertSettingRequest true "Upsert Setting Request"
// @Success 200 {object} response.Message "Setting saved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [put]
// @Security BearerAuth
func (handler *Handler) UpsertSetting(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertSetting")
	defer scope.End()

	req := dto.UpsertSettingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Upsert(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save setting")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Setting saved successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Setting saved successfully")
}

// DeleteSetting deletes a setting by its key.
// @Summary Delete a setting by key
// @Description Delete a setting using its key.
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} response.Message "Setting deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/{key} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSetting")
	defer scope.End()

	key := chi.URLParam(r, "key")

	if err := handler.service.Delete(ctx, key); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete setting")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Setting deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Setting deleted successfully")
}
