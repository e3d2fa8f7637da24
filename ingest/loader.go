package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/opdnav/opdnav/core"
	"github.com/opdnav/opdnav/store/mem"
	"github.com/panjf2000/ants/v2"
)

// AEC source columns. Every one of these must be present in the header.
const (
	colAECFloor      = "Floor"
	colAECBlockArea  = "Block/Area"
	colAECRoom       = "Room/Counter No."
	colAECDays       = "Operating Days"
	colAECDepartment = "Department/Service"
	colAECNotes      = "Notes"
)

// PGI source columns. Missing cells default to empty strings.
const (
	colPGIFloor    = "Floor"
	colPGIRooms    = "Room_Numbers"
	colPGIBuilding = "Building"
	colPGIDays     = "Operating_Days"
	colPGIDept     = "Department"
	colPGITimings  = "Special_Timings"
	colPGIInfo     = "Additional_Info"
	colPGIOPDType  = "OPD_Type"
	colPGIDoctors  = "Doctors"
	colPGICounters = "Counters"
)

var aecRequiredColumns = []string{
	colAECFloor, colAECBlockArea, colAECRoom, colAECDays, colAECDepartment, colAECNotes,
}

// Loader reads campus CSV files into record stores.
type Loader struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the worker pool size for concurrent loading.
// Default is one worker per campus file, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		if l.pool != nil {
			l.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a new loader.
func NewLoader(opts ...Option) (*Loader, error) {
	pool, err := ants.NewPool(2)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		pool:   pool,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(l); err != nil {
			l.pool.Release()
			return nil, err
		}
	}

	return l, nil
}

// Close releases the loader's worker pool.
func (l *Loader) Close() {
	if l.pool != nil {
		l.pool.Release()
	}
}

// LoadAll loads both campus files concurrently and builds the stores.
// Load failures are absorbed: a file that cannot be read or parsed is
// logged and its store comes back empty.
func (l *Loader) LoadAll(aecPath, pgiPath string) (*mem.AEC, *mem.PGI) {
	var (
		wg         sync.WaitGroup
		aecRecords []core.AECRecord
		pgiRecords []core.PGIRecord
	)

	wg.Add(2)
	l.submit(func() {
		defer wg.Done()
		records, err := l.LoadAEC(aecPath)
		if err != nil {
			l.logger.Error("failed to load AEC data", "path", aecPath, "err", err)
			return
		}
		aecRecords = records
		l.logger.Info("loaded AEC records", "count", len(records))
	})
	l.submit(func() {
		defer wg.Done()
		records, err := l.LoadPGI(pgiPath)
		if err != nil {
			l.logger.Error("failed to load PGI data", "path", pgiPath, "err", err)
			return
		}
		pgiRecords = records
		l.logger.Info("loaded PGI records", "count", len(records))
	})
	wg.Wait()

	return mem.NewAEC(aecRecords), mem.NewPGI(pgiRecords)
}

// submit schedules a task on the pool, falling back to running it
// inline if the pool cannot accept it.
func (l *Loader) submit(task func()) {
	if err := l.pool.Submit(task); err != nil {
		task()
	}
}

// LoadAEC reads the AEC CSV file. All required columns must be present
// in the header; rows without a department are skipped.
func (l *Loader) LoadAEC(path string) ([]core.AECRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open AEC data: %w", err)
	}
	defer f.Close()
	return l.readAEC(f)
}

func (l *Loader) readAEC(r io.Reader) ([]core.AECRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	idx, err := readHeader(cr, aecRequiredColumns)
	if err != nil {
		return nil, err
	}

	var records []core.AECRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read AEC row: %w", err)
		}
		rec := core.AECRecord{
			Floor:         cell(row, idx[colAECFloor]),
			BlockArea:     cell(row, idx[colAECBlockArea]),
			RoomCounterNo: cell(row, idx[colAECRoom]),
			OperatingDays: cell(row, idx[colAECDays]),
			Department:    cell(row, idx[colAECDepartment]),
			Notes:         cell(row, idx[colAECNotes]),
		}
		if err := core.ValidateAECRecord(&rec); err != nil {
			l.logger.Debug("skipping AEC row", "err", err)
			continue
		}
		rec.ID = core.IDFromContent(rec.ContentKey())
		records = append(records, rec)
	}
	return records, nil
}

// LoadPGI reads the PGI CSV file. Missing cells default to empty
// strings; the floor level is resolved through the fixed floor map.
func (l *Loader) LoadPGI(path string) ([]core.PGIRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PGI data: %w", err)
	}
	defer f.Close()
	return l.readPGI(f)
}

func (l *Loader) readPGI(r io.Reader) ([]core.PGIRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	idx, err := readHeader(cr, nil)
	if err != nil {
		return nil, err
	}

	var records []core.PGIRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read PGI row: %w", err)
		}
		get := func(col string) string {
			i, ok := idx[col]
			if !ok {
				return ""
			}
			return strings.TrimSpace(cell(row, i))
		}
		floorText := strings.ToUpper(get(colPGIFloor))
		building := get(colPGIBuilding)
		rec := core.PGIRecord{
			Level:      core.ParseLevel(floorText),
			FloorText:  floorText,
			RoomNo:     get(colPGIRooms),
			Block:      building,
			Days:       get(colPGIDays),
			Building:   building,
			Department: get(colPGIDept),
			Notes:      get(colPGITimings) + " | " + get(colPGIInfo),
			OPDType:    strings.ToLower(get(colPGIOPDType)),
			Doctors:    get(colPGIDoctors),
			Counters:   get(colPGICounters),
		}
		rec.ID = core.IDFromContent(rec.ContentKey())
		records = append(records, rec)
	}
	return records, nil
}

// readHeader consumes the header row and maps column names to indexes.
// Every column in required must be present.
func readHeader(cr *csv.Reader, required []string) (map[string]int, error) {
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	return idx, nil
}

// cell returns row[i], or an empty string when the row is short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
