// Package loader imports the marker dataset.
package loader

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"overlap/config"
	"overlap/internal/domain/entity"
	domainerrors "overlap/internal/domain/errors"
	"overlap/internal/domain/repository"
	"overlap/internal/util"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Column names of the marker dataset header.
const (
	ColumnName      = "name"
	ColumnRating    = "rating"
	ColumnPrice     = "price"
	ColumnLongitude = "longitude"
	ColumnLatitude  = "latitude"
)

var requiredColumns = []string{ColumnName, ColumnLongitude, ColumnLatitude}

// RawMarker is a dataset row before parsing; every field is still a string.
type RawMarker struct {
	Name      string
	Rating    string
	Price     string
	Longitude string
	Latitude  string
}

// LoadStats summarizes a load.
type LoadStats struct {
	Rows           int // Data rows read, header excluded.
	Loaded         int // Markers returned.
	Dropped        int // Rows dropped for unusable coordinates.
	MissingRatings int // Loaded markers without a usable rating.
}

// CSVLoader handles loading of markers from a header-indexed CSV file
// with the columns name, rating, price, longitude and latitude.
type CSVLoader struct {
	path   string
	logger *slog.Logger
}

var _ repository.MarkerSource = (*CSVLoader)(nil)

// NewCSVLoader creates a new CSV loader for the given file
func NewCSVLoader(path string, logger *slog.Logger) *CSVLoader {
	return &CSVLoader{path: path, logger: logger}
}

// NewMarkerSource builds the configured marker source
func NewMarkerSource(cfg *config.Config, logger *slog.Logger) repository.MarkerSource {
	return NewCSVLoader(cfg.Data.MarkersPath, logger)
}

// LoadMarkers loads every marker with usable coordinates from the file
func (l *CSVLoader) LoadMarkers(ctx context.Context) ([]entity.Marker, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	fingerprint, err := util.FingerprintFile(l.path)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMarkerImport.WithDetails(err.Error()), l.path)
	}

	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMarkerImport.WithDetails(err.Error()), l.path)
	}
	defer file.Close()

	markers, stats, err := l.Read(file)
	if err != nil {
		return nil, errors.Wrap(err, l.path)
	}

	l.logger.Info("Markers loaded",
		slog.String("path", l.path),
		slog.String("checksum", fingerprint.Checksum),
		slog.String("size", util.FormatBytes(fingerprint.Size)),
		slog.Int("rows", stats.Rows),
		slog.Int("loaded", stats.Loaded),
		slog.Int("dropped", stats.Dropped),
		slog.Int("missingRatings", stats.MissingRatings),
	)

	return markers, nil
}

// Read parses markers from r. The first record must be the header.
func (l *CSVLoader) Read(r io.Reader) ([]entity.Marker, LoadStats, error) {
	var stats LoadStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, errors.WithStack(domainerrors.ErrMarkerImport.WithDetails("missing header row"))
		}

		return nil, stats, errors.WithStack(domainerrors.ErrMarkerImport.WithDetails(err.Error()))
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, stats, err
	}

	markers := make([]entity.Marker, 0)
	lineNum := 1 // Start at 1 because we read the header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, stats, errors.WithStack(domainerrors.ErrMarkerImport.WithDetails(readErr.Error()))
		}
		lineNum++
		stats.Rows++

		raw := columns.raw(record)
		marker, parseErr := ParseMarker(raw)
		if parseErr != nil {
			stats.Dropped++
			l.logger.Warn("Dropping marker with unusable coordinates",
				slog.Int("line", lineNum),
				slog.String("name", raw.Name),
				slog.String("longitude", raw.Longitude),
				slog.String("latitude", raw.Latitude),
			)

			continue
		}

		if !marker.Rating.Valid {
			stats.MissingRatings++
		}
		markers = append(markers, marker)
	}

	stats.Loaded = len(markers)

	return markers, stats, nil
}

// ParseMarker converts a raw row into a marker.
// An unparseable rating becomes absent; unparseable coordinates are an error.
func ParseMarker(raw RawMarker) (entity.Marker, error) {
	lon, ok := parseFinite(raw.Longitude)
	if !ok || lon < -180 || lon > 180 {
		return entity.Marker{}, errors.WithStack(domainerrors.ErrInvalidCoordinates.WithDetails("longitude " + strconv.Quote(raw.Longitude)))
	}

	lat, ok := parseFinite(raw.Latitude)
	if !ok || lat < -90 || lat > 90 {
		return entity.Marker{}, errors.WithStack(domainerrors.ErrInvalidCoordinates.WithDetails("latitude " + strconv.Quote(raw.Latitude)))
	}

	return entity.Marker{
		Name:     raw.Name,
		Rating:   parseRating(raw.Rating),
		Price:    entity.PriceTier(raw.Price),
		Location: orb.Point{lon, lat},
	}, nil
}

func parseRating(s string) entity.Rating {
	v, ok := parseFinite(s)
	if !ok || v < 0 || v > 5 {
		return entity.Rating{}
	}

	return entity.NewRating(v)
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// columnIndex maps column names to record positions; -1 marks an absent optional column.
type columnIndex struct {
	name, rating, price, longitude, latitude int
}

func indexColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, column := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, "\uFEFF")))
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	for _, column := range requiredColumns {
		if _, ok := positions[column]; !ok {
			return columnIndex{}, errors.WithStack(domainerrors.ErrMarkerImport.WithDetails("missing column " + strconv.Quote(column)))
		}
	}

	lookup := func(column string) int {
		if i, ok := positions[column]; ok {
			return i
		}

		return -1
	}

	return columnIndex{
		name:      lookup(ColumnName),
		rating:    lookup(ColumnRating),
		price:     lookup(ColumnPrice),
		longitude: lookup(ColumnLongitude),
		latitude:  lookup(ColumnLatitude),
	}, nil
}

func (c columnIndex) raw(record []string) RawMarker {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}

		return record[i]
	}

	return RawMarker{
		Name:      field(c.name),
		Rating:    field(c.rating),
		Price:     field(c.price),
		Longitude: field(c.longitude),
		Latitude:  field(c.latitude),
	}
}
