// Package export writes the visible rows of a list screen to csv, json or
// parquet, either to a local file or to a cloud bucket.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"

	"github.com/chrisdamba/foodadmin/internal/listing"
	"github.com/chrisdamba/foodadmin/internal/models"
)

const (
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatParquet = "parquet"
)

var contentTypes = map[string]string{
	FormatCSV:     "text/csv",
	FormatJSON:    "application/json",
	FormatParquet: "application/vnd.apache.parquet",
}

// Table is a rendered list: the screen's column headers and one row of cell
// text per visible record.
type Table struct {
	Entity  string
	Headers []string
	Rows    [][]string
}

// Tabulate renders rows through the columns of spec.
func Tabulate[T any](spec listing.Spec[T], rows []T) Table {
	t := Table{Entity: spec.Entity, Headers: make([]string, len(spec.Columns))}
	for i, col := range spec.Columns {
		t.Headers[i] = col.Header
	}
	for _, r := range rows {
		row := make([]string, len(spec.Columns))
		for i, col := range spec.Columns {
			row[i] = col.Value(r)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

type Exporter struct {
	cfg     models.ExportConfig
	buckets WriterFactory
	now     func() time.Time
}

// New builds an exporter for cfg. A cloud destination loads the provider's
// credentials up front so a misconfiguration fails before any fetch.
func New(ctx context.Context, cfg models.ExportConfig) (*Exporter, error) {
	e := &Exporter{cfg: cfg, now: time.Now}
	if cfg.Destination == "" || cfg.Destination == "local" {
		return e, nil
	}

	switch cfg.CloudStorage.Provider {
	case "s3":
		bucket, err := NewS3Bucket(ctx, cfg.CloudStorage)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 client: %w", err)
		}
		e.buckets = bucket
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
	}
	if cfg.CloudStorage.BucketName == "" {
		return nil, fmt.Errorf("export.cloud_storage.bucket_name is required for cloud exports")
	}
	return e, nil
}

// Export writes t and returns where it went: a file path or an s3:// URL.
// The format comes from the extension of name, falling back to the
// configured one. An empty name is generated from the entity and the time.
func (e *Exporter) Export(ctx context.Context, name string, t Table) (string, error) {
	format, err := formatFor(name, e.cfg.Format)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = filepath.Join(e.cfg.Folder, fmt.Sprintf("%ss-%s.%s", t.Entity, e.now().Format("20060102-150405"), format))
	}

	if e.buckets != nil {
		key := filepath.ToSlash(name)
		w, err := e.buckets.NewWriter(ctx, Object{
			Bucket:      e.cfg.CloudStorage.BucketName,
			Key:         key,
			ContentType: contentTypes[format],
			Metadata:    map[string]string{"entity": t.Entity, "rows": strconv.Itoa(len(t.Rows))},
		})
		if err != nil {
			return "", err
		}
		f := NewCloudFile(w)
		if err := encode(format, f, t); err != nil {
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", err
		}
		return fmt.Sprintf("s3://%s/%s", e.cfg.CloudStorage.BucketName, key), nil
	}

	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", err
		}
	}
	f, err := local.NewLocalFileWriter(name)
	if err != nil {
		return "", fmt.Errorf("failed to create local file writer: %w", err)
	}
	if err := encode(format, f, t); err != nil {
		f.Close()
		return "", err
	}
	return name, f.Close()
}

func formatFor(name, fallback string) (string, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if format == "" {
		format = fallback
	}
	switch format {
	case FormatCSV, FormatJSON, FormatParquet:
		return format, nil
	case "":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
}

func encode(format string, f source.ParquetFile, t Table) error {
	switch format {
	case FormatJSON:
		return WriteJSON(f, t)
	case FormatParquet:
		return WriteParquet(f, t)
	default:
		return WriteCSV(f, t)
	}
}
