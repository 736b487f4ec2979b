package http

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"
	"volumizer/internal/flog"
	"volumizer/internal/pkg/buffer"
)

// recorder buffers a response so padding can be appended before anything
// reaches the client.
type recorder struct {
	header http.Header
	status int
	body   *bytes.Buffer
}

func (r *recorder) Header() http.Header { return r.header }

func (r *recorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
}

func (r *recorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.body.Write(p)
}

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := &recorder{header: make(http.Header), body: buffer.GetBuffer()}
	defer buffer.PutBuffer(rec.body)

	h.next.ServeHTTP(rec, r)
	if rec.status == 0 {
		rec.status = http.StatusOK
	}

	body := rec.body.Bytes()
	if rec.header.Get("Content-Type") == "" && len(body) > 0 {
		rec.header.Set("Content-Type", http.DetectContentType(body))
	}
	pad := paddable(rec.status, rec.header)
	if r.Method != http.MethodHead && pad {
		padded, err := h.padBody(rec.body.String())
		if err != nil {
			flog.Warnf("padding failed for %s %s: %v", r.Method, r.URL.Path, err)
			if h.cfg.OnError == "fail" {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
		} else {
			flog.Debugf("padded %s from %d to %d bytes", r.URL.Path, len(body), len(padded))
			body = []byte(padded)
		}
	}

	for key, values := range rec.header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	if r.Method == http.MethodHead {
		// A HEAD body is never padded, so the upstream length would be the
		// real page size.
		if pad {
			w.Header().Del("Content-Length")
		}
		w.WriteHeader(rec.status)
		return
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(rec.status)
	w.Write(body)
}

func (h *HTTP) padBody(content string) (string, error) {
	if h.pad.Multiple() {
		return h.padder.GenerateMultiple(content, h.pad.Count)
	}
	return h.padder.Generate(content)
}

// paddable reports whether a response is an uncompressed, complete HTML
// document.
func paddable(status int, header http.Header) bool {
	if status != http.StatusOK {
		return false
	}
	if header.Get("Content-Encoding") != "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
