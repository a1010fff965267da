package export

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"

	"github.com/chrisdamba/foodadmin/internal/listing"
	"github.com/chrisdamba/foodadmin/internal/models"
)

type rider struct {
	ID, Name, Status string
}

var riders = listing.Spec[rider]{
	Entity: "rider",
	Key:    func(r rider) string { return r.ID },
	Columns: []listing.Column[rider]{
		{Header: "Rider #", Value: func(r rider) string { return r.ID }},
		{Header: "Name", Value: func(r rider) string { return r.Name }},
		{Header: "Status", Value: func(r rider) string { return listing.Title(r.Status) }},
	},
}

var sample = Tabulate(riders, []rider{
	{"r1", "Thabo, Jr.", "active"},
	{"r2", "Lerato", "in_transit"},
})

func TestTabulate(t *testing.T) {
	want := Table{
		Entity:  "rider",
		Headers: []string{"Rider #", "Name", "Status"},
		Rows:    [][]string{{"r1", "Thabo, Jr.", "Active"}, {"r2", "Lerato", "In Transit"}},
	}
	if diff := cmp.Diff(want, sample); diff != "" {
		t.Errorf("Tabulate mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "Rider #,Name,Status\nr1,\"Thabo, Jr.\",Active\nr2,Lerato,In Transit\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

func TestExportLocalJSON(t *testing.T) {
	e, err := New(context.Background(), models.ExportConfig{Format: "csv", Destination: "local"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	name := filepath.Join(t.TempDir(), "nested", "riders.json")
	got, err := e.Export(context.Background(), name, sample)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if got != name {
		t.Errorf("path = %q, want %q", got, name)
	}

	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	var records []map[string]string
	if err := json.Unmarshal(b, &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(records) != 2 || records[1]["Status"] != "In Transit" {
		t.Errorf("records = %v", records)
	}
}

func TestExportGeneratedName(t *testing.T) {
	dir := t.TempDir()
	e, _ := New(context.Background(), models.ExportConfig{Format: "csv", Folder: dir})
	e.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }

	got, err := e.Export(context.Background(), "", sample)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if want := filepath.Join(dir, "riders-20240501-093000.csv"); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestExportParquet(t *testing.T) {
	e, _ := New(context.Background(), models.ExportConfig{})
	name := filepath.Join(t.TempDir(), "riders.parquet")
	if _, err := e.Export(context.Background(), name, sample); err != nil {
		t.Fatalf("Export: %v", err)
	}

	fr, err := local.NewLocalFileReader(name)
	if err != nil {
		t.Fatal(err)
	}
	defer fr.Close()
	pr, err := reader.NewParquetReader(fr, nil, 1)
	if err != nil {
		t.Fatalf("NewParquetReader: %v", err)
	}
	defer pr.ReadStop()
	if n := pr.GetNumRows(); n != 2 {
		t.Errorf("rows = %d, want 2", n)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	e, _ := New(context.Background(), models.ExportConfig{})
	if _, err := e.Export(context.Background(), "riders.xlsx", sample); err == nil {
		t.Fatal("expected an error for .xlsx")
	}
}

func TestUnsupportedProvider(t *testing.T) {
	cfg := models.ExportConfig{Destination: "cloud", CloudStorage: models.CloudStorageConfig{Provider: "azure"}}
	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatal("expected an error for azure")
	}
}

type memoryObject struct {
	bytes.Buffer
	info   Object
	closed bool
}

func (m *memoryObject) Close() error {
	m.closed = true
	return nil
}

type memoryBucket map[string]*memoryObject

func (b memoryBucket) NewWriter(_ context.Context, o Object) (CloudWriter, error) {
	obj := &memoryObject{info: o}
	b[o.Bucket+"/"+o.Key] = obj
	return obj, nil
}

func TestExportCloud(t *testing.T) {
	bucket := memoryBucket{}
	e := &Exporter{
		cfg:     models.ExportConfig{Format: "parquet", Folder: "exports", CloudStorage: models.CloudStorageConfig{BucketName: "ops"}},
		buckets: bucket,
		now:     func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) },
	}

	got, err := e.Export(context.Background(), "", sample)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if want := "s3://ops/exports/riders-20240501-093000.parquet"; got != want {
		t.Errorf("location = %q, want %q", got, want)
	}
	obj := bucket["ops/exports/riders-20240501-093000.parquet"]
	if obj == nil || !obj.closed {
		t.Fatal("object was not uploaded")
	}
	if !strings.HasPrefix(obj.String(), "PAR1") {
		t.Errorf("object does not start with the parquet magic")
	}
	if obj.info.ContentType != "application/vnd.apache.parquet" || obj.info.Metadata["rows"] != "2" {
		t.Errorf("object info = %+v", obj.info)
	}
}

func TestColumnNames(t *testing.T) {
	got := columnNames([]string{"Order #", "Customer", "Customer", "  "})
	want := []string{"order", "customer", "customer_2", "column"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("columnNames mismatch (-want +got):\n%s", diff)
	}
}
