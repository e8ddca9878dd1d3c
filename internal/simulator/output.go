package simulator

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/toyfactory/heijunkasim/internal/cloudwriter"
	"github.com/toyfactory/heijunkasim/internal/models"
	"github.com/toyfactory/heijunkasim/internal/simulator/producers"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// OutputDestination receives the flattened plan/requirement/inventory rows,
// one JSON-encoded message per row, keyed by topic.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

type CSVOutput struct {
	basePath string
	folder   string
	files    map[string]*csv.Writer
	handles  map[string]*os.File
	headers  map[string][]string
}

type JSONOutput struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

type ParquetOutput struct {
	basePath           string
	folder             string
	mu                 sync.Mutex
	writers            map[string]*writer.ParquetWriter
	files              map[string]source.ParquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*csv.Writer),
		handles:  make(map[string]*os.File),
		headers:  make(map[string][]string),
	}
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func NewParquetOutput(config *models.Config) (*ParquetOutput, error) {
	p := &ParquetOutput{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
		writers:  make(map[string]*writer.ParquetWriter),
		files:    make(map[string]source.ParquetFile),
	}

	if config.OutputDest != "local" {
		var factory cloudwriter.CloudWriterFactory
		var err error

		switch config.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}

		p.cloudWriterFactory = factory
		p.cloudBucketName = config.CloudStorage.BucketName
	}

	// clean up existing .parquet files
	p.cleanup()

	return p, nil
}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))

	_, err := os.Stdout.Write([]byte(output))
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	_ = os.Stdout.Sync()

	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	var row map[string]interface{}
	if err := json.Unmarshal(msg, &row); err != nil {
		return err
	}

	fullPath := filepath.Join(c.basePath, c.folder, topic)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	csvWriter, ok := c.files[topic]
	if !ok {
		file, err := os.Create(filepath.Join(fullPath, "data.csv"))
		if err != nil {
			return err
		}
		csvWriter = csv.NewWriter(file)
		c.files[topic] = csvWriter
		c.handles[topic] = file

		headers := c.getHeaders(row)
		if err := csvWriter.Write(headers); err != nil {
			return err
		}
		c.headers[topic] = headers
	}

	record := make([]string, len(c.headers[topic]))
	for i, header := range c.headers[topic] {
		value, ok := row[header]
		if !ok {
			record[i] = ""
		} else {
			record[i] = fmt.Sprintf("%v", value)
		}
	}

	if err := csvWriter.Write(record); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func (c *CSVOutput) getHeaders(row map[string]interface{}) []string {
	var headers []string
	for key := range row {
		headers = append(headers, key)
	}
	sort.Strings(headers)
	return headers
}

func (c *CSVOutput) Close() error {
	for topic, csvWriter := range c.files {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return err
		}
		if file, ok := c.handles[topic]; ok {
			if err := file.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	fullPath := filepath.Join(j.basePath, j.folder, topic)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	file, ok := j.files[topic]
	if !ok {
		var err error
		file, err = os.Create(filepath.Join(fullPath, "data.json"))
		if err != nil {
			return err
		}
		j.files[topic] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err := file.WriteString("\n")
	return err
}

func (j *JSONOutput) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	var row map[string]interface{}
	if err := json.Unmarshal(msg, &row); err != nil {
		return err
	}

	fullPath := filepath.Join(p.basePath, p.folder, topic)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	pw, ok := p.writers[topic]
	if !ok {
		var err error
		pw, err = p.createNewWriter(topic, fullPath)
		if err != nil {
			return fmt.Errorf("failed to create new writer: %w", err)
		}
	}

	if err := pw.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}

	return nil
}

func (p *ParquetOutput) cleanup() {
	fullPath := filepath.Join(p.basePath, p.folder)
	err := filepath.Walk(fullPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".parquet" {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Error cleaning up Parquet files: %v", err)
	}
}

func (p *ParquetOutput) createNewWriter(topic, fullPath string) (*writer.ParquetWriter, error) {
	var fw source.ParquetFile
	var err error
	if p.cloudWriterFactory != nil {
		objectPath := filepath.Join(p.folder, topic, "data.parquet")
		cloudWriter, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = cloudwriter.NewCloudParquetFile(cloudWriter)
	} else {
		filePath := filepath.Join(fullPath, "data.parquet")
		fw, err = local.NewLocalFileWriter(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	sc, err := GetSchema(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, nil, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	pw.SchemaHandler = sc

	p.writers[topic] = pw
	p.files[topic] = fw

	return pw, nil
}

func (p *ParquetOutput) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for topic, pw := range p.writers {
		if pw == nil {
			log.Printf("Warning: Nil writer found for topic: %s", topic)
			continue
		}
		if err := pw.WriteStop(); err != nil {
			lastErr = err
			log.Printf("Error closing writer for topic %s: %v", topic, err)
		}
		if f, ok := p.files[topic]; ok {
			if err := f.Close(); err != nil {
				lastErr = err
				log.Printf("Error closing file for topic %s: %v", topic, err)
			}
		}
	}
	return lastErr
}

func (s *Simulator) determineOutputDestination() OutputDestination {
	if s.Config.KafkaEnabled {
		saramaProducer, err := producers.NewSaramaProducer(s.Config)
		if err != nil {
			log.Fatalf("Failed to create Sarama producer: %v", err)
		}
		return saramaProducer
	} else if s.Config.OutputPath != "" {
		switch s.Config.OutputFormat {
		case "parquet":
			output, err := NewParquetOutput(s.Config)
			if err != nil {
				log.Fatalf("Failed to create Parquet output: %s", err)
			}
			return output
		case "json":
			return NewJSONOutput(s.Config.OutputPath, s.Config.OutputFolder)
		case "csv":
			return NewCSVOutput(s.Config.OutputPath, s.Config.OutputFolder)
		default:
			log.Fatalf("Unsupported output format: %s", s.Config.OutputFormat)
		}
	}
	return &ConsoleOutput{}
}
