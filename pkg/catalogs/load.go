package catalogs

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pricelens/pricelens/pkg/errors"
)

// Required input columns. Any other columns in the CSV are ignored.
var requiredColumns = []string{
	"VendorID",
	"vendorName",
	"productID",
	"productName",
	"productPrice",
}

// Load reads a raw catalog from CSV. The first row must be a header naming
// all required columns; a missing required column is a fatal SchemaError.
// Unparseable prices become nil, not errors.
func Load(r io.Reader, source string) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewSchemaError(source, requiredColumns, nil)
	}
	if err != nil {
		return nil, errors.WrapParse("csv", source, err)
	}

	index, err := columnIndex(header, source)
	if err != nil {
		return nil, err
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.NewParseError("csv", source, err.Error(), err)
		}
		records = append(records, Record{
			VendorID:    field(row, index["VendorID"]),
			VendorName:  field(row, index["vendorName"]),
			ProductID:   field(row, index["productID"]),
			ProductName: field(row, index["productName"]),
			Price:       parsePrice(field(row, index["productPrice"])),
		})
	}

	return New(source, records), nil
}

// LoadFile reads a raw catalog from a CSV file on disk.
func LoadFile(path, source string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return Load(f, source)
}

// columnIndex maps each required column to its position in the header.
func columnIndex(header []string, source string) (map[string]int, error) {
	index := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		have := make([]string, 0, len(header))
		for _, h := range header {
			have = append(have, strings.TrimSpace(h))
		}
		return nil, errors.NewSchemaError(source, missing, have)
	}
	return index, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parsePrice converts a raw price cell to a number. Anything unparseable
// (blank, "N/A", stray text) is a nil price.
func parsePrice(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
