package testutil

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipartBuilder(t *testing.T) {
	req := NewMultipart().
		AddFile("file", "cv.pdf", "application/pdf", []byte("%PDF-1.4")).
		AddFile("file", "raw.bin", "", []byte("raw")).
		AddField("note", "hello").
		Request(http.MethodPost, "/parse-resume")

	require.NoError(t, req.ParseMultipartForm(1<<20))

	files := req.MultipartForm.File["file"]
	require.Len(t, files, 2)
	assert.Equal(t, "cv.pdf", files[0].Filename)
	assert.Equal(t, "application/pdf", files[0].Header.Get("Content-Type"))
	assert.Empty(t, files[1].Header.Get("Content-Type"))
	assert.Equal(t, "hello", req.FormValue("note"))
}

func TestBuildDOCX(t *testing.T) {
	data := BuildDOCX("Jane Doe", "R&D <lead>")

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	var document string
	for _, f := range zr.File {
		names = append(names, f.Name)
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			rc.Close()
			document = string(b)
		}
	}

	assert.ElementsMatch(t, []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"}, names)
	assert.Contains(t, document, "Jane Doe")
	assert.Contains(t, document, "R&amp;D &lt;lead&gt;")
}

func TestFakeDecoder(t *testing.T) {
	dec := &FakeDecoder{Pages: []string{"page one"}}
	pages, err := dec.Decode(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"page one"}, pages)
	assert.Equal(t, "fake", dec.Name())

	broken := &FakeDecoder{DecodeFunc: func(data []byte) ([]string, error) {
		return nil, errors.New("bad xref")
	}}
	_, err = broken.Decode(context.Background(), []byte("x"))
	assert.EqualError(t, err, "bad xref")
	assert.Equal(t, 1, broken.Calls())
}

func TestBuildPDF(t *testing.T) {
	data := BuildPDF("Jane Doe", "")

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-1.4\n")))
	assert.True(t, bytes.HasSuffix(data, []byte("%%EOF\n")))

	// every xref entry points at the start of its object
	xrefAt := bytes.LastIndex(data, []byte("xref\n"))
	require.Positive(t, xrefAt)
	entries := strings.Split(strings.TrimSpace(string(data[xrefAt:bytes.Index(data, []byte("trailer"))])), "\n")[3:]
	require.Len(t, entries, 7)
	for i, e := range entries {
		off, err := strconv.Atoi(e[:10])
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data[off:], []byte(fmt.Sprintf("%d 0 obj", i+1))), "object %d", i+1)
	}

	assert.Contains(t, string(data), "/Count 2")
	assert.Contains(t, string(data), "(Jane Doe) Tj")
}

func TestRecordingPublisher(t *testing.T) {
	pub := &RecordingPublisher{}
	require.NoError(t, pub.Publish(context.Background(), "resume.parsed", map[string]int{"n": 1}))

	events := pub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "resume.parsed", events[0].EventType)
	assert.JSONEq(t, `{"n":1}`, string(events[0].Data))
}
