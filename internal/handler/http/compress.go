package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// Encodings supported by Compress, in order of preference.
const (
	encodingBrotli = "br"
	encodingGzip   = "gzip"
)

// negotiateEncoding picks brotli over gzip from an Accept-Encoding header.
// Codings with q=0 are treated as refused.
func negotiateEncoding(header string) string {
	var br, gz bool
	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if q := strings.TrimSpace(params); strings.HasPrefix(q, "q=0") && strings.Trim(q, "q=0.") == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case encodingBrotli:
			br = true
		case encodingGzip:
			gz = true
		}
	}
	switch {
	case br:
		return encodingBrotli
	case gz:
		return encodingGzip
	}
	return ""
}

// Compress returns middleware that compresses response bodies with brotli
// or gzip depending on the client's Accept-Encoding. Responses without a
// body are left untouched.
func Compress(level int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept-Encoding")

			encoding := negotiateEncoding(r.Header.Get("Accept-Encoding"))
			if encoding == "" || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			cw := &compressWriter{ResponseWriter: w, encoding: encoding, level: level}
			defer func() {
				_ = cw.Close()
			}()
			next.ServeHTTP(cw, r)
		})
	}
}

// compressWriter starts the encoder lazily on the first body write.
type compressWriter struct {
	http.ResponseWriter
	encoding    string
	level       int
	enc         io.WriteCloser
	wroteHeader bool
	passthrough bool
}

func (cw *compressWriter) WriteHeader(code int) {
	if cw.wroteHeader {
		return
	}
	cw.wroteHeader = true

	h := cw.Header()
	if code < http.StatusOK || code == http.StatusNoContent || code == http.StatusNotModified || h.Get("Content-Encoding") != "" {
		cw.passthrough = true
	} else {
		h.Set("Content-Encoding", cw.encoding)
		h.Del("Content-Length")
	}
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *compressWriter) Write(b []byte) (int, error) {
	if !cw.wroteHeader {
		cw.WriteHeader(http.StatusOK)
	}
	if cw.passthrough {
		return cw.ResponseWriter.Write(b)
	}
	if cw.enc == nil {
		switch cw.encoding {
		case encodingBrotli:
			cw.enc = brotli.NewWriterLevel(cw.ResponseWriter, cw.level)
		default:
			gz, err := gzip.NewWriterLevel(cw.ResponseWriter, gzipLevel(cw.level))
			if err != nil {
				return 0, err
			}
			cw.enc = gz
		}
	}
	return cw.enc.Write(b)
}

// Flush flushes buffered compressed data to the client.
func (cw *compressWriter) Flush() {
	if f, ok := cw.enc.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
	if f, ok := cw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Close finishes the compressed stream.
func (cw *compressWriter) Close() error {
	if cw.enc == nil {
		return nil
	}
	return cw.enc.Close()
}

// Unwrap returns the underlying ResponseWriter.
func (cw *compressWriter) Unwrap() http.ResponseWriter {
	return cw.ResponseWriter
}

// gzipLevel maps a brotli quality (0-11) onto a gzip level (1-9).
func gzipLevel(brotliQuality int) int {
	switch {
	case brotliQuality <= 0:
		return gzip.BestSpeed
	case brotliQuality >= brotli.BestCompression:
		return gzip.BestCompression
	default:
		return 1 + brotliQuality*8/brotli.BestCompression
	}
}
