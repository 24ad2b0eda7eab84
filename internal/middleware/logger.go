package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// responseData накапливает сведения об ответе по мере его записи
type responseData struct {
	status int
	size   int64
}

// loggingWriter перехватывает статус и объем ответа для лога запроса
type loggingWriter struct {
	http.ResponseWriter
	data *responseData
}

func (lw *loggingWriter) WriteHeader(statusCode int) {
	lw.data.status = statusCode
	lw.ResponseWriter.WriteHeader(statusCode)
}

func (lw *loggingWriter) Write(b []byte) (int, error) {
	n, err := lw.ResponseWriter.Write(b)
	lw.data.size += int64(n)
	return n, err
}

// Logger возвращает миддлвар, логирующий каждый HTTP запрос:
// метод, путь, статус, длительность, объем ответа и идентификатор запроса
func Logger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			data := &responseData{status: http.StatusOK}
			lw := &loggingWriter{ResponseWriter: w, data: data}

			next.ServeHTTP(lw, r)

			logger.Info("HTTP request",
				zap.String("method", r.Method),
				zap.String("uri", r.RequestURI),
				zap.Int("status", data.status),
				zap.Duration("duration", time.Since(start)),
				zap.Int64("size", data.size),
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("request_id", GetRequestIDFromContext(r.Context())),
			)
		})
	}
}
