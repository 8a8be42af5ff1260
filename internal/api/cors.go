package api

import (
	"net/http"

	"github.com/gorilla/handlers"
)

func setupCorsOptions(origin string) []handlers.CORSOption {
	methods := handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions})
	origins := handlers.AllowedOrigins([]string{origin})
	headers := handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader})
	exposed := handlers.ExposedHeaders([]string{requestIDHeader})

	return []handlers.CORSOption{methods, origins, headers, exposed}
}
