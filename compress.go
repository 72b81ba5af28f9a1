package academy

import (
	"bufio"
	"net"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// acceptsBrotli reports whether the request advertises br in Accept-Encoding.
func acceptsBrotli(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get(echo.HeaderAcceptEncoding), ",") {
		enc, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.TrimSpace(enc) != "br" {
			continue
		}
		return strings.ReplaceAll(params, " ", "") != "q=0"
	}
	return false
}

// brotliMiddleware compresses responses with brotli for clients that accept
// it. It mirrors the shape of Echo's gzip middleware.
func brotliMiddleware(level int, skipper middleware.Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) || !acceptsBrotli(c.Request()) {
				return next(c)
			}
			res := c.Response()
			res.Header().Add(echo.HeaderVary, echo.HeaderAcceptEncoding)

			orig := res.Writer
			bw := &brotliResponseWriter{
				ResponseWriter: orig,
				enc:            brotli.NewWriterLevel(orig, level),
			}
			res.Writer = bw
			defer func() {
				if bw.wroteBody {
					bw.enc.Close()
				} else if bw.code != 0 {
					// Header-only responses such as redirects go out unencoded.
					orig.WriteHeader(bw.code)
				}
				res.Writer = orig
			}()
			return next(c)
		}
	}
}

type brotliResponseWriter struct {
	http.ResponseWriter
	enc       *brotli.Writer
	code      int
	wroteBody bool
}

// WriteHeader holds the status until the first body write so that
// bodiless responses are not marked as encoded.
func (w *brotliResponseWriter) WriteHeader(code int) {
	if w.code == 0 {
		w.code = code
	}
}

func (w *brotliResponseWriter) start() {
	if w.wroteBody {
		return
	}
	w.wroteBody = true
	if w.code == 0 {
		w.code = http.StatusOK
	}
	w.Header().Set(echo.HeaderContentEncoding, "br")
	w.Header().Del(echo.HeaderContentLength)
	w.ResponseWriter.WriteHeader(w.code)
}

func (w *brotliResponseWriter) Write(b []byte) (int, error) {
	if w.Header().Get(echo.HeaderContentType) == "" {
		w.Header().Set(echo.HeaderContentType, http.DetectContentType(b))
	}
	w.start()
	return w.enc.Write(b)
}

func (w *brotliResponseWriter) Flush() {
	w.start()
	_ = w.enc.Flush()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *brotliResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *brotliResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
