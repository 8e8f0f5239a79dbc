package middleware

import "net/http"

const (
	corsAllowMethods = "GET,PUT,POST,DELETE,PATCH"
	corsAllowHeaders = "Content-Type, Authorization"
)

// CORS agrega los headers en todas las respuestas, con un único origin permitido.
// Los preflight OPTIONS se responden acá con 204.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowedOrigin)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
