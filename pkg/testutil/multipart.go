package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
)

// MultipartBuilder assembles multipart/form-data upload requests.
//
// Usage:
//
//	req := testutil.NewMultipart().
//		AddFile("file", "cv.pdf", "application/pdf", data).
//		Request(http.MethodPost, "/parse-resume")
type MultipartBuilder struct {
	body   bytes.Buffer
	writer *multipart.Writer
	err    error
}

// NewMultipart creates an empty builder
func NewMultipart() *MultipartBuilder {
	b := &MultipartBuilder{}
	b.writer = multipart.NewWriter(&b.body)
	return b
}

// AddFile adds a file part. An empty contentType omits the part's Content-Type header.
func (b *MultipartBuilder) AddFile(field, filename, contentType string, data []byte) *MultipartBuilder {
	if b.err != nil {
		return b
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}

	part, err := b.writer.CreatePart(h)
	if err != nil {
		b.err = err
		return b
	}
	_, b.err = part.Write(data)
	return b
}

// AddField adds a plain form field
func (b *MultipartBuilder) AddField(name, value string) *MultipartBuilder {
	if b.err != nil {
		return b
	}
	b.err = b.writer.WriteField(name, value)
	return b
}

// Request closes the form and returns a request carrying it. It panics on a
// write error since that only happens with a broken test setup.
func (b *MultipartBuilder) Request(method, path string) *http.Request {
	if b.err == nil {
		b.err = b.writer.Close()
	}
	if b.err != nil {
		panic(b.err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(b.body.Bytes()))
	req.Header.Set("Content-Type", b.writer.FormDataContentType())
	return req
}
