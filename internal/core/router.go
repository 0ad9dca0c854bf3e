package core

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iqbal-singh-1/ideathon/internal/middleware"
)

type RouterConfig struct {
	JWTSecret       string
	MetricsUsername string
	MetricsPassword string
}

func NewRouter(handler *Handler, cfg RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Metrics)

	router.HandleFunc("/health", handler.Health).Methods("GET")
	router.Handle("/metrics",
		middleware.BasicAuth(cfg.MetricsUsername, cfg.MetricsPassword)(promhttp.Handler()),
	).Methods("GET")

	auth := router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", handler.Signup).Methods("POST")
	auth.HandleFunc("/login", handler.Login).Methods("POST")
	auth.Handle("/me",
		middleware.AuthMiddleware([]byte(cfg.JWTSecret))(http.HandlerFunc(handler.Me)),
	).Methods("GET")

	return router
}
