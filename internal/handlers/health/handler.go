package health

import (
	"net/http"
	"praxis/infras/postgres"
	"praxis/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{
		db: db,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the service can reach its database.
// @Summary Health check
// @Description Report whether the service and its database connections are healthy.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service is healthy"
// @Failure 503 {object} response.Message "Service is unhealthy"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := handler.db.Read.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("read database is unreachable")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("write database is unreachable")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
