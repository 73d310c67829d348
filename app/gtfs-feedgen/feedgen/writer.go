package feedgen

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ColumbiaCountyTransit/gtfsgen/foundation/tablefile"
)

// WriteZip encodes tables as csv files inside a zip archive and atomically
// replaces the bundle at outPath. The archive is built fully in memory first
// so a failed assembly never clobbers an existing bundle.
func WriteZip(tables []Table, outPath string) error {
	var buffer bytes.Buffer
	zipWriter := zip.NewWriter(&buffer)
	for _, table := range tables {
		f, err := zipWriter.Create(table.Name)
		if err != nil {
			return fmt.Errorf("creating %s in archive: %w", table.Name, err)
		}
		csvWriter := csv.NewWriter(f)
		if err = csvWriter.Write(table.Header); err != nil {
			return fmt.Errorf("writing %s header: %w", table.Name, err)
		}
		if err = csvWriter.WriteAll(table.Rows); err != nil {
			return fmt.Errorf("writing %s rows: %w", table.Name, err)
		}
	}
	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}

	return tablefile.WriteAtomic(outPath, func(w io.Writer) error {
		_, err := w.Write(buffer.Bytes())
		return err
	})
}
