package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the HTTP route table for the verification service.
func (s *Server) NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware)

	router.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/api/v1/public-key", s.handlePublicKey).Methods("GET")
	router.HandleFunc("/api/v1/verify", s.handleVerify).Methods("POST")

	return router
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}
