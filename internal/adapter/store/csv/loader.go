// Package csv provides CSV-based constituent data loading.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ngtrthanh/tide-app/internal/domain"
)

// ConstituentStore loads calibrated constituent tables from CSV files, one
// file per station, so a re-fitted table can replace the bundled defaults
// without a rebuild.
type ConstituentStore struct {
	dataDir string
}

// NewConstituentStore creates a new CSV-based constituent store.
func NewConstituentStore(dataDir string) *ConstituentStore {
	return &ConstituentStore{
		dataDir: dataDir,
	}
}

// LoadStation loads constituent parameters for a named station.
func (s *ConstituentStore) LoadStation(stationID string) ([]domain.ConstituentParam, error) {
	filename := fmt.Sprintf("%s/%s_constituents.csv", s.dataDir, strings.ToLower(stationID))

	//nolint:gosec // G304: File path constructed from dataDir (config) and stationID (validated).
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file for station %s: %w", stationID, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	expectedHeaders := []string{"constituent", "amplitude_cm", "phase_deg"}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid CSV header: expected %v, got %v", expectedHeaders, header)
	}
	for i, h := range header {
		if h != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid CSV header: expected column %d to be %s, got %s", i, expectedHeaders[i], h)
		}
	}

	params := make([]domain.ConstituentParam, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		if len(record) != 3 {
			return nil, fmt.Errorf("invalid CSV record: expected 3 columns, got %d", len(record))
		}

		name := strings.TrimSpace(record[0])
		amplitudeStr := strings.TrimSpace(record[1])
		phaseStr := strings.TrimSpace(record[2])

		amplitude, err := strconv.ParseFloat(amplitudeStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amplitude for constituent %s: %w", name, err)
		}

		phase, err := strconv.ParseFloat(phaseStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid phase for constituent %s: %w", name, err)
		}

		// Reject names without a standard angular speed up front; the model
		// build would fail later anyway, but here we can name the file.
		if _, ok := domain.SpeedFor(name); !ok {
			return nil, fmt.Errorf("unknown constituent %s in %s", name, filename)
		}

		params = append(params, domain.ConstituentParam{
			Name:        name,
			AmplitudeCm: amplitude,
			PhaseDeg:    phase,
		})
	}

	if len(params) == 0 {
		return nil, fmt.Errorf("no constituents found in CSV for station %s", stationID)
	}

	return params, nil
}

// ListStations returns station IDs with a constituent file in the data directory.
func (s *ConstituentStore) ListStations() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	stations := make([]string, 0)
	suffix := "_constituents.csv"

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, suffix) {
			stations = append(stations, name[:len(name)-len(suffix)])
		}
	}

	return stations, nil
}
