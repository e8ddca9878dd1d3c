package cloudwriter

import (
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go/source"
)

// CloudParquetFile adapts a CloudWriter to the parquet source.ParquetFile
// interface. It is write-only: the parquet writer streams into the cloud
// buffer and the object materializes on Close.
type CloudParquetFile struct {
	cloudWriter CloudWriter
	offset      int64
}

func NewCloudParquetFile(cloudWriter CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cloudWriter}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	// The object is already set up for writing; nothing to open.
	return c, nil
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	// Objects are created implicitly on first write.
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
