package notification

import (
	"net/http"
	"praxis/infras/otel"
	"praxis/internal/domains/notification/model"
	"praxis/internal/domains/notification/service"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	"praxis/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetNotifications)
	})
}

// GetNotifications retrieves the notification log.
// @Summary Get the notification log
// @Description Retrieve the record of outbound notifications with optional filtering and pagination.
// @Tags Notification
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param event_type query string false "Filter by event type"
// @Param status query string false "Filter by delivery status (queued, sent, failed)"
// @Param appointment_id query string false "Filter by appointment ID"
// @Success 200 {object} response.Data[dto.GetNotificationsResponse] "Notification log"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	eventType := r.URL.Query().Get(model.FieldEventType)
	status := r.URL.Query().Get(model.FieldStatus)
	appointmentID := r.URL.Query().Get(model.FieldAppointmentID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if eventType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEventType,
			Operator: gDto.FilterOperatorEq,
			Value:    eventType,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if appointmentID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAppointmentID,
			Operator: gDto.FilterOperatorEq,
			Value:    appointmentID,
			Table:    model.TableName,
		})
	}

	notifications, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}
