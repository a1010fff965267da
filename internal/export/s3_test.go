package export

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type putRequest struct {
	method, path, contentType, entity, rows string
	body                                    string
}

// fakeS3 accepts PutObject requests on path-style URLs and remembers them.
type fakeS3 struct {
	mu     sync.Mutex
	puts   []putRequest
	status int
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.puts = append(f.puts, putRequest{
		method:      r.Method,
		path:        r.URL.Path,
		contentType: r.Header.Get("Content-Type"),
		entity:      r.Header.Get("X-Amz-Meta-Entity"),
		rows:        r.Header.Get("X-Amz-Meta-Rows"),
		body:        string(body),
	})
	status := f.status
	f.mu.Unlock()
	if status != 0 {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
	w.WriteHeader(http.StatusOK)
}

func newTestBucket(t *testing.T, srv *fakeS3) *S3Bucket {
	t.Helper()
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	client := s3.New(s3.Options{
		Region:           "af-south-1",
		BaseEndpoint:     aws.String(ts.URL),
		UsePathStyle:     true,
		Credentials:      aws.AnonymousCredentials{},
		RetryMaxAttempts: 1,
	})
	return &S3Bucket{client: client}
}

func TestExportToS3(t *testing.T) {
	srv := &fakeS3{}
	e := &Exporter{
		cfg:     models.ExportConfig{Format: "csv", CloudStorage: models.CloudStorageConfig{BucketName: "ops-exports"}},
		buckets: newTestBucket(t, srv),
	}

	got, err := e.Export(context.Background(), "daily/riders.csv", sample)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if want := "s3://ops-exports/daily/riders.csv"; got != want {
		t.Errorf("location = %q, want %q", got, want)
	}

	if len(srv.puts) != 1 {
		t.Fatalf("requests = %d, want 1", len(srv.puts))
	}
	put := srv.puts[0]
	if put.method != http.MethodPut || put.path != "/ops-exports/daily/riders.csv" {
		t.Errorf("request = %s %s", put.method, put.path)
	}
	if put.contentType != "text/csv" || put.entity != "rider" || put.rows != "2" {
		t.Errorf("headers: content type %q, entity %q, rows %q", put.contentType, put.entity, put.rows)
	}
	if !strings.HasPrefix(put.body, "Rider #,Name,Status\n") || !strings.Contains(put.body, `"Thabo, Jr."`) {
		t.Errorf("body = %q", put.body)
	}
}

func TestS3UploadFailure(t *testing.T) {
	srv := &fakeS3{status: http.StatusForbidden}
	b := newTestBucket(t, srv)

	w, err := b.NewWriter(context.Background(), Object{Bucket: "ops-exports", Key: "riders.json", ContentType: "application/json"})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := w.Write([]byte("[]")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	err = w.Close()
	if err == nil || !strings.Contains(err.Error(), "s3://ops-exports/riders.json") {
		t.Fatalf("Close error = %v", err)
	}
	if _, err := w.Write([]byte("x")); err == nil {
		t.Error("write after close succeeded")
	}
}

func TestS3WriterNeedsKey(t *testing.T) {
	b := &S3Bucket{}
	if _, err := b.NewWriter(context.Background(), Object{Bucket: "ops-exports"}); err == nil {
		t.Fatal("expected error for missing key")
	}
}
