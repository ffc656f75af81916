package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"landrecords/lib/records"
	"os"
	"path/filepath"
)

var Header = []string{"address", "owner", "doc", "type", "date"}

// WriteSpreadsheetTo writes one tab separated row per document.
func WriteSpreadsheetTo(w io.Writer, props []records.Property) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'

	err := writer.Write(Header)
	if err != nil {
		return err
	}
	for _, prop := range props {
		for _, doc := range prop.Docs {
			err = writer.Write([]string{prop.Address, prop.Owner, doc.ID(), doc.Type(), doc.Date()})
			if err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func WriteSpreadsheet(path string, props []records.Property) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WriteSpreadsheetTo(f, props)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
