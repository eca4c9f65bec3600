package handler

import (
	"net/http"
	"praxis/config"
	"praxis/di"
	"praxis/shared/logger"

	_ "praxis/docs"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Adaptor()(w, r)
}
