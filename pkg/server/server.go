package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/adfharrison1/go-datasets/pkg/api"
	"github.com/adfharrison1/go-datasets/pkg/domain"
)

// Server holds the router and the catalog it serves
type Server struct {
	router  *mux.Router
	catalog domain.Catalog
	handler *api.Handler
}

// NewServer creates a new instance of Server over a loaded catalog.
func NewServer(catalog domain.Catalog, searchCacheSize int) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		catalog: catalog,
		handler: api.NewHandler(catalog, searchCacheSize),
	}
	// Define HTTP routes
	s.handler.RegisterRoutes(s.router)

	// Use the logging middleware for all routes
	s.router.Use(requestLoggerMiddleware)

	// Customize NotFoundHandler to log 404s
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("WARN: No route found for %s %s", r.Method, r.URL.Path)
		api.WriteJSONError(w, http.StatusNotFound, "no route for "+r.URL.Path)
	})

	return s
}

// requestLoggerMiddleware logs the method, URL path, and duration for each request.
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		log.Printf("INFO: Request %s %s took %s", r.Method, r.URL.Path, elapsed)
	})
}

// Router exposes the internal mux.Router.
func (s *Server) Router() http.Handler {
	return s.router
}
