// Package tabular is the flat-file store behind the alert registry and
// the relief-center locator. Both tables are plain UTF-8 CSV with a
// header row; columns are located by name, not position.
package tabular

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/shadowbane/phoenix-aid/pkg/models"
)

// ErrFileMissing is returned when a required backing file does not
// exist. The store never creates files from nothing.
var ErrFileMissing = errors.New("backing file does not exist")

// SchemaError reports a backing file that exists but is missing
// required columns.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "csv missing columns: " + strings.Join(e.Missing, ", ")
}

// AlertColumns is the required header of the alerts table.
var AlertColumns = []string{"Date", "Location", "Radius (km)", "Message"}

// ReliefColumns is the required header of the relief-centers table.
var ReliefColumns = []string{"Province", "Province_Full", "City", "Name", "Type", "Distance (km)", "Contact"}

func readAll(path string) ([][]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Wrap(ErrFileMissing, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return rows, nil
}

// headerIndex maps required column names to their position in the
// header, or fails with a SchemaError naming every absent column.
func headerIndex(header, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// LoadAlerts reads the alerts table in insertion order. A file that
// exists but is still empty (header not yet written) loads as an empty
// table.
func LoadAlerts(path string) ([]models.AlertRecord, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx, err := headerIndex(rows[0], AlertColumns)
	if err != nil {
		return nil, err
	}

	records := make([]models.AlertRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, models.AlertRecord{
			Date:     cell(row, idx["Date"]),
			Location: cell(row, idx["Location"]),
			Radius:   cell(row, idx["Radius (km)"]),
			Message:  cell(row, idx["Message"]),
		})
	}
	return records, nil
}

// AppendAlert appends one record to the alerts table. The file must
// already exist; the header is written lazily when the file is empty.
func AppendAlert(path string, rec models.AlertRecord) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return errors.Wrap(ErrFileMissing, path)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", path)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s for append", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(AlertColumns); err != nil {
			return errors.Wrapf(err, "failed to write header to %s", path)
		}
	}
	if err := w.Write([]string{rec.Date, rec.Location, rec.Radius, rec.Message}); err != nil {
		return errors.Wrapf(err, "failed to append to %s", path)
	}

	w.Flush()
	return errors.Wrapf(w.Error(), "failed to flush %s", path)
}

// LoadReliefCenters reads the relief-centers table. The file must exist
// and carry the full ReliefColumns header, or the load fails with a
// SchemaError listing the missing columns.
func LoadReliefCenters(path string) ([]models.ReliefCenter, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Missing: ReliefColumns}
	}

	idx, err := headerIndex(rows[0], ReliefColumns)
	if err != nil {
		return nil, err
	}

	centers := make([]models.ReliefCenter, 0, len(rows)-1)
	for i, row := range rows[1:] {
		distance, err := strconv.ParseFloat(strings.TrimSpace(cell(row, idx["Distance (km)"])), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: invalid distance %q", i+2, cell(row, idx["Distance (km)"]))
		}
		centers = append(centers, models.ReliefCenter{
			Province:     cell(row, idx["Province"]),
			ProvinceFull: cell(row, idx["Province_Full"]),
			City:         cell(row, idx["City"]),
			Name:         cell(row, idx["Name"]),
			Type:         cell(row, idx["Type"]),
			DistanceKm:   distance,
			Contact:      cell(row, idx["Contact"]),
		})
	}
	return centers, nil
}
