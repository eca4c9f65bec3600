package offering

import (
	"net/http"
	"praxis/infras/otel"
	"praxis/internal/domains/offering/model"
	"praxis/internal/domains/offering/model/dto"
	"praxis/internal/domains/offering/service"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	"praxis/shared/validator"
	"praxis/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Offering
	otel    otel.Otel
}

func New(service service.Offering, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/offerings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetActiveOfferings)
		routerGroup.Get("/all", handler.GetOfferings)
		routerGroup.Post("/", handler.CreateOffering)
		routerGroup.Get("/{id}", handler.GetOfferingByID)
		routerGroup.Patch("/{id}", handler.UpdateOffering)
		routerGroup.Delete("/{id}", handler.DeleteOffering)
	})
}

// GetActiveOfferings lists the active offerings for the public site.
// @Summary Get active offerings
// @Description Retrieve the offerings currently listed on the public site.
// @Tags Offering
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetOfferingsResponse] "List of active offerings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offerings [get]
func (handler *Handler) GetActiveOfferings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveOfferings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	offerings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active offerings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Active offerings retrieved successfully")

	response.WithJSON(w, http.StatusOK, offerings)
}

// GetOfferings lists every offering, inactive ones included.
// @Summary Get all offerings
// @Description Retrieve all offerings with optional filtering and pagination.
// @Tags Offering
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Search by name"
// @Success 200 {object} response.Data[dto.GetOfferingsResponse] "List of offerings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offerings/all [get]
// @Security BearerAuth
func (handler *Handler) GetOfferings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOfferings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	offerings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offerings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Offerings retrieved successfully")

	response.WithJSON(w, http.StatusOK, offerings)
}

// GetOfferingByID retrieves an offering by its ID.
// @Summary Get an offering by ID
// @Description Retrieve an offering by its unique identifier.
// @Tags Offering
// @Accept json
// @Produce json
// @Param id path string true "Offering ID"
// @Success 200 {object} response.Data[dto.OfferingResponse] "Offering details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offerings/{id} [get]
func (handler *Handler) GetOfferingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOfferingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	offering, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offering by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Offering retrieved successfully")

	response.WithJSON(w, http.StatusOK, offering)
}

// CreateOffering handles the creation of a new offering.
// @Summary Create a new offering
// @Description Create a new offering with the provided details.
// @Tags Offering
// @Accept json
// @Produce json
// @Param request body dto.CreateOfferingRequest true "Create Offering Request"
// @Success 201 {object} response.Message "Offering created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offerings [post]
// @Security BearerAuth
func (handler *Handler) CreateOffering(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOffering")
	defer scope.End()

	req := dto.CreateOfferingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create offering")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Offering created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Offering created successfully")
}

// UpdateOffering updates an existing offering by its ID.
// @Summary Update an offering by ID
// @Description Update the details of an existing offering.
// @Tags Offering
// @Accept json
// @Produce json
// @Param id path string true "Offering ID"
// @Param request body dto.UpdateOfferingRequest true "Update Offering Request"
// @Success 200 {object} response.Message "Offering updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offerings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOffering(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOffering")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateOfferingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update offering")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Offering updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Offering updated successfully")
}

// DeleteOffering deletes an offering by its ID.
// @Summary Delete an offering by ID
// @Description Delete an offering using its unique identifier.
// @Tags Offering
// @Accept json
// @Produce json
// @Param id path string true "Offering ID"
// @Success 200 {object} response.Message "Offering deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offerings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOffering(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOffering")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete offering")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Offering deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Offering deleted successfully")
}
