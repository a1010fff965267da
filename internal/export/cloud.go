package export

import (
	"context"
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go/source"
)

// CloudWriter buffers an object and uploads it on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// Object names an export in a bucket and carries its upload headers.
type Object struct {
	Bucket      string
	Key         string
	ContentType string
	Metadata    map[string]string
}

type WriterFactory interface {
	NewWriter(ctx context.Context, obj Object) (CloudWriter, error)
}

// CloudFile lets the parquet writer stream into a cloud object. Objects are
// written front to back, so reads and seeks from the end are refused.
type CloudFile struct {
	w      CloudWriter
	offset int64
}

var _ source.ParquetFile = (*CloudFile)(nil)

func NewCloudFile(w CloudWriter) *CloudFile {
	return &CloudFile{w: w}
}

// the object is created implicitly by the first write
func (c *CloudFile) Open(string) (source.ParquetFile, error)   { return c, nil }
func (c *CloudFile) Create(string) (source.ParquetFile, error) { return c, nil }

func (c *CloudFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	default:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudFile) Read([]byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudFile) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *CloudFile) Close() error {
	return c.w.Close()
}
