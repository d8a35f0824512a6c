package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/angeloszaimis/uplink-monitor/internal/status"
)

func setupRouter(collector *status.Collector) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/status", collector.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	return r
}
