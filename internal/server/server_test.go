package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/resume-site/constants"
	"github.com/joseph-ayodele/resume-site/internal/common"
	"github.com/joseph-ayodele/resume-site/internal/entity"
	"github.com/joseph-ayodele/resume-site/internal/extract"
	"github.com/joseph-ayodele/resume-site/internal/llm"
	"github.com/joseph-ayodele/resume-site/internal/metrics"
	"github.com/joseph-ayodele/resume-site/internal/pipeline"
	"github.com/joseph-ayodele/resume-site/internal/repository"
)

type fakeIngestor struct {
	id   string
	err  error
	docs []extract.RawDocument
}

func (f *fakeIngestor) Ingest(_ context.Context, doc extract.RawDocument) (string, error) {
	f.docs = append(f.docs, doc)
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

type fakeStore struct {
	records map[string]entity.Resume
	err     error
}

func (f *fakeStore) GetByID(_ context.Context, id string) (entity.Resume, error) {
	if f.err != nil {
		return entity.Resume{}, f.err
	}
	rec, ok := f.records[id]
	if !ok {
		return entity.Resume{}, common.NotFoundErrorf("resume %s not found", id)
	}
	return rec, nil
}

func (f *fakeStore) Ping(context.Context) error { return f.err }

func newTestServer(t *testing.T, ing Ingestor, store ResumeStore) *Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	s, err := New(Config{BodyLimitMB: 10}, Deps{
		Ingestor: ing,
		Store:    store,
		Metrics:  metrics.New(reg),
		Registry: reg,
	})
	require.NoError(t, err)
	return s
}

// multipartBody builds a form with one file part; an empty field name builds a form without a file.
func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("note", "no file here"))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func do(t *testing.T, s *Server, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, body
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func uploadRequest(t *testing.T, path, contentType string, data []byte) *http.Request {
	body, ct := multipartBody(t, "file", "resume.pdf", contentType, data)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", ct)
	return req
}

func TestUpload_Success(t *testing.T) {
	for _, path := range []string{"/upload", "/api/upload"} {
		t.Run(path, func(t *testing.T) {
			ing := &fakeIngestor{id: "abc123"}
			s := newTestServer(t, ing, &fakeStore{})

			resp, body := do(t, s, uploadRequest(t, path, constants.MediaTypePDF, []byte("%PDF-1.4 fake")))
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, map[string]any{"id": "abc123"}, decode(t, body))
			assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

			require.Len(t, ing.docs, 1)
			assert.Equal(t, constants.MediaTypePDF, ing.docs[0].MediaType)
			assert.Equal(t, "resume.pdf", ing.docs[0].Filename)
			assert.Equal(t, []byte("%PDF-1.4 fake"), ing.docs[0].Data)
		})
	}
}

func TestUpload_SniffsPDFSignature(t *testing.T) {
	ing := &fakeIngestor{id: "k"}
	s := newTestServer(t, ing, &fakeStore{})

	resp, _ := do(t, s, uploadRequest(t, "/api/upload", constants.MediaTypeOctetStream, []byte("%PDF-1.7\n...")))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, ing.docs, 1)
	assert.Equal(t, constants.MediaTypePDF, ing.docs[0].MediaType)
}

func TestUpload_NoFile(t *testing.T) {
	ing := &fakeIngestor{id: "k"}
	s := newTestServer(t, ing, &fakeStore{})

	body, ct := multipartBody(t, "", "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	resp, out := do(t, s, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "No file uploaded"}, decode(t, out))

	// wrong field name
	resp, out = do(t, s, func() *http.Request {
		b, c := multipartBody(t, "document", "resume.pdf", constants.MediaTypePDF, []byte("%PDF-"))
		r := httptest.NewRequest(http.MethodPost, "/api/upload", b)
		r.Header.Set("Content-Type", c)
		return r
	}())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No file uploaded", decode(t, out)["error"])

	// not multipart at all
	req = httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"file":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, out = do(t, s, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No file uploaded", decode(t, out)["error"])

	// empty file
	resp, _ = do(t, s, uploadRequest(t, "/upload", constants.MediaTypePDF, nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Empty(t, ing.docs)
}

func TestUpload_UnsupportedType(t *testing.T) {
	ing := &fakeIngestor{id: "k"}
	s := newTestServer(t, ing, &fakeStore{})

	resp, body := do(t, s, uploadRequest(t, "/upload", "text/plain", []byte("Jane Doe, Software Engineer")))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Unsupported file type", decode(t, body)["error"])
	assert.Empty(t, ing.docs)
}

func TestUpload_PipelineFailureIsOpaque(t *testing.T) {
	failures := []error{
		common.ExtractionError("invalid PDF", errors.New("malformed xref at offset 42")),
		common.NormalizationError("no response from AI model", nil),
		common.SchemaParseError("invalid JSON", errors.New("invalid character '`'")),
		common.PersistenceError("insert resume", errors.New("connection refused")),
	}
	for _, failure := range failures {
		t.Run(common.ErrorCode(failure), func(t *testing.T) {
			s := newTestServer(t, &fakeIngestor{err: failure}, &fakeStore{})

			resp, body := do(t, s, uploadRequest(t, "/upload", constants.MediaTypePDF, []byte("%PDF-")))
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, map[string]any{"error": "Failed to process resume"}, decode(t, body))
		})
	}
}

func TestGetResume(t *testing.T) {
	rec := llm.ExampleResume
	s := newTestServer(t, &fakeIngestor{}, &fakeStore{records: map[string]entity.Resume{"abc123": rec}})

	for _, path := range []string{"/resume/abc123", "/api/resume/abc123"} {
		resp, body := do(t, s, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data entity.Resume `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, rec, out.Data)
	}
}

func TestGetResume_NotFound(t *testing.T) {
	s := newTestServer(t, &fakeIngestor{}, &fakeStore{records: map[string]entity.Resume{}})

	for _, path := range []string{"/resume/doesnotexist", "/api/resume/doesnotexist"} {
		resp, body := do(t, s, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, map[string]any{"error": "Resume not found"}, decode(t, body))
	}
}

func TestGetResume_StoreFailure(t *testing.T) {
	s := newTestServer(t, &fakeIngestor{}, &fakeStore{err: common.PersistenceError("query resume", errors.New("timeout"))})

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/resume/abc", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "Failed to load resume"}, decode(t, body))
}

func TestSite(t *testing.T) {
	rec := llm.ExampleResume
	s := newTestServer(t, &fakeIngestor{}, &fakeStore{records: map[string]entity.Resume{"abc": rec}})

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/site/abc", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), rec.Personal.Name)

	resp, body = do(t, s, httptest.NewRequest(http.MethodGet, "/site/missing", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "No data found")
}

func TestExport(t *testing.T) {
	s := newTestServer(t, &fakeIngestor{}, &fakeStore{records: map[string]entity.Resume{"abc": llm.ExampleResume}})

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/resume/abc/export", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, mediaTypeXLSX, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "resume-abc.xlsx")
	assert.True(t, bytes.HasPrefix(body, []byte("PK")), "xlsx is a zip archive")

	resp, _ = do(t, s, httptest.NewRequest(http.MethodGet, "/api/resume/missing/export", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIndex(t *testing.T) {
	s := newTestServer(t, &fakeIngestor{}, &fakeStore{})

	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `name="file"`)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, &fakeIngestor{}, &fakeStore{})
	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode(t, body)["status"])

	s = newTestServer(t, &fakeIngestor{}, &fakeStore{err: errors.New("down")})
	resp, _ = do(t, s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeIngestor{id: "k"}, &fakeStore{})

	_, _ = do(t, s, uploadRequest(t, "/upload", "text/plain", []byte("nope")))
	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `resumesite_ingestions_total{outcome="bad_request"} 1`)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t, &fakeIngestor{}, &fakeStore{})
	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decode(t, body), "error")
}

// scriptedGenerator answers every prompt with the same model output.
type scriptedGenerator struct{ out string }

func (g scriptedGenerator) Generate(context.Context, llm.GenerateRequest) (string, error) {
	return g.out, nil
}
func (g scriptedGenerator) Model() string { return "scripted" }

type staticExtractor struct{ text string }

func (e staticExtractor) Extract(context.Context, extract.RawDocument) (string, error) {
	return e.text, nil
}

func TestEndToEnd_UploadThenRetrieve(t *testing.T) {
	ctx := context.Background()
	repo, err := repository.Open(ctx, common.StoreConfig{
		Driver:      constants.StoreSQLite,
		DSN:         filepath.Join(t.TempDir(), "e2e.db"),
		AutoMigrate: true,
	}, nil)
	require.NoError(t, err)
	defer repo.Close()

	rec := entity.Resume{Personal: entity.Personal{Name: "Jane Doe", Role: "Software Engineer"}}
	rec.Normalize()
	out, err := json.Marshal(rec)
	require.NoError(t, err)

	newServer := func(modelOutput string) *Server {
		norm, err := llm.NewSchemaNormalizer(scriptedGenerator{out: modelOutput}, nil)
		require.NoError(t, err)
		proc := pipeline.NewProcessor(nil, staticExtractor{text: "Jane Doe, Software Engineer"}, norm, repo)
		return newTestServer(t, proc, repo)
	}

	s := newServer(string(out))
	resp, body := do(t, s, uploadRequest(t, "/upload", constants.MediaTypePDF, []byte("%PDF-1.4")))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	id, _ := decode(t, body)["id"].(string)
	require.NotEmpty(t, id)

	resp, body = do(t, s, httptest.NewRequest(http.MethodGet, "/resume/"+id, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got struct {
		Data entity.Resume `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "Jane Doe", got.Data.Personal.Name)
	assert.NotNil(t, got.Data.Experience)

	// fenced output is rejected and nothing new is stored
	s = newServer("```json\n" + string(out) + "\n```")
	resp, body = do(t, s, uploadRequest(t, "/upload", constants.MediaTypePDF, []byte("%PDF-1.4")))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to process resume", decode(t, body)["error"])
}
