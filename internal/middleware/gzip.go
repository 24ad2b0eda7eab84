package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// gzipBodyReader распаковывает сжатое тело запроса прозрачно для обработчиков
type gzipBodyReader struct {
	body io.ReadCloser
	zr   *gzip.Reader
}

func newGzipBodyReader(body io.ReadCloser) (*gzipBodyReader, error) {
	zr, err := gzip.NewReader(body)
	if err != nil {
		return nil, err
	}
	return &gzipBodyReader{body: body, zr: zr}, nil
}

func (r *gzipBodyReader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *gzipBodyReader) Close() error {
	if err := r.zr.Close(); err != nil {
		return err
	}
	return r.body.Close()
}

// gzipWriter сжимает ответ, если его Content-Type и статус допускают сжатие.
// Писатель gzip создается лениво, только когда решено сжимать.
type gzipWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

// compressible проверяет Content-Type без параметров вида "; charset=utf-8"
func compressible(contentType string) bool {
	ct, _, _ := strings.Cut(contentType, ";")
	switch strings.ToLower(strings.TrimSpace(ct)) {
	case "application/json", "text/html":
		return true
	}
	return false
}

func (w *gzipWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode < 300 && compressible(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.zw = gzip.NewWriter(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.zw != nil {
		return w.zw.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

func (w *gzipWriter) Close() error {
	if w.zw != nil {
		return w.zw.Close()
	}
	return nil
}

// Gzip добавляет поддержку сжатия gzip для запросов и ответов
func Gzip(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				br, err := newGzipBodyReader(r.Body)
				if err != nil {
					logger.Error("failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
					http.Error(w, "failed to decompress request body", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := br.Close(); err != nil {
						logger.Warn("failed to close gzip body reader", zap.Error(err))
					}
				}()
				r.Body = br
			}

			// Клиент не поддерживает gzip, отдаем как есть
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipWriter{ResponseWriter: w}
			defer func() {
				if err := gw.Close(); err != nil {
					logger.Error("failed to close gzip writer",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}
