package middleware

import (
	"compress/gzip"
	"fmt"
	"net/http"
	"strings"
)

// gzipResponseWriter сжимает тело ответа, заголовки выставляются при первой записи
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

func (g *gzipResponseWriter) WriteHeader(code int) {
	if !g.wroteHeader {
		g.wroteHeader = true
		g.Header().Del("Content-Length")
		g.Header().Set("Content-Encoding", "gzip")
		g.Header().Add("Vary", "Accept-Encoding")
	}
	g.ResponseWriter.WriteHeader(code)
}

func (g *gzipResponseWriter) Write(b []byte) (int, error) {
	if !g.wroteHeader {
		g.WriteHeader(http.StatusOK)
	}
	return g.gz.Write(b)
}

// failedBody тело запроса, чтение которого всегда возвращает err.
type failedBody struct {
	err error
}

func (b failedBody) Read([]byte) (int, error) { return 0, b.err }

func (b failedBody) Close() error { return nil }

// GzipMiddleware распаковывает gzip-запросы и сжимает ответы для клиентов,
// приславших Accept-Encoding: gzip.
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			reader, err := gzip.NewReader(r.Body)
			if err != nil {
				// ответ об ошибке формирует обработчик при чтении тела
				r.Body = failedBody{err: fmt.Errorf("decompress request: %w", err)}
			} else {
				defer reader.Close()
				r.Body = reader
			}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz := gzip.NewWriter(w)
		defer gz.Close()

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gz: gz}, r)
	})
}
