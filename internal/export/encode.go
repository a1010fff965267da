package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteJSON writes the rows as an array of objects keyed by column header.
func WriteJSON(w io.Writer, t Table) error {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			rec[h] = row[i]
		}
		records = append(records, rec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// WriteParquet writes every column as a required UTF8 field named after its
// header in snake case. It finishes the file footer but leaves pf open.
func WriteParquet(pf source.ParquetFile, t Table) error {
	names := columnNames(t.Headers)
	pw, err := writer.NewJSONWriter(parquetSchema(names), pf, 4)
	if err != nil {
		return fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	for _, row := range t.Rows {
		rec := make(map[string]string, len(names))
		for i, name := range names {
			rec[name] = row[i]
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := pw.Write(string(b)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

type schemaNode struct {
	Tag    string       `json:"Tag"`
	Fields []schemaNode `json:"Fields,omitempty"`
}

func parquetSchema(names []string) string {
	root := schemaNode{Tag: "name=parquet_go_root, repetitiontype=REQUIRED"}
	for _, name := range names {
		root.Fields = append(root.Fields, schemaNode{
			Tag: fmt.Sprintf("name=%s, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=REQUIRED", name),
		})
	}
	b, _ := json.Marshal(root)
	return string(b)
}

// columnNames turns headers like "Order #" into unique snake case names.
func columnNames(headers []string) []string {
	seen := make(map[string]int, len(headers))
	names := make([]string, len(headers))
	for i, h := range headers {
		name := strings.Trim(strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return unicode.ToLower(r)
			}
			return '_'
		}, h), "_")
		for strings.Contains(name, "__") {
			name = strings.ReplaceAll(name, "__", "_")
		}
		if name == "" {
			name = "column"
		}
		if n := seen[name]; n > 0 {
			seen[name]++
			name = fmt.Sprintf("%s_%d", name, n+1)
		} else {
			seen[name] = 1
		}
		names[i] = name
	}
	return names
}
