package router

import (
	"net/http"

	"AdminBrowseAPI/internal/config"
	"AdminBrowseAPI/internal/handler"
	"AdminBrowseAPI/internal/logger"
)

// InitRoutes инициализирует маршруты для API
func InitRoutes(cfg *config.Config) {
	cors := cfg.CORS
	http.HandleFunc("/api/list", withCORS(cors.AllowOrigin, cors.AllowCredentials, withLogging(handler.ListHandler)))
	http.HandleFunc("/api/show", withCORS(cors.AllowOrigin, cors.AllowCredentials, withLogging(handler.ShowHandler)))
	http.HandleFunc("/api/batch", withCORS(cors.AllowOrigin, cors.AllowCredentials, withLogging(handler.BatchHandler)))
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)
		level := "info"
		if sw.status >= 500 {
			level = "error"
		} else if sw.status >= 400 {
			level = "warn"
		}
		fields := map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
		}
		switch level {
		case "error":
			logger.Error("response", fields)
		case "warn":
			logger.Warn("response", fields)
		default:
			logger.Info("response", fields)
		}
	}
}
