package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"prosignal/domain/core"
	"prosignal/domain/signal"
	"prosignal/ports"
)

// Expected header columns in a signal workbook. metric_name, temporal_trend
// and timeframe are optional per row (empty cells).
var expectedColumns = []string{
	"insight", "value", "confidence", "business_impact", "actionability",
	"source_module", "metric_name", "temporal_trend", "timeframe",
}

// SignalReader loads raw signal inputs from an xlsx or csv workbook so the
// CLI pipeline can drive the engine without live producers
type SignalReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewSignalReader creates a reader for the given workbook path
func NewSignalReader(filePath string) *SignalReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &SignalReader{filePath: filePath, fileType: fileType}
}

// ReadSignals implements ports.SignalReaderPort
func (r *SignalReader) ReadSignals(ctx context.Context) ([]ports.SignalInput, error) {
	log.Printf("[SignalReader] Reading %s workbook: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s workbook not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, core.ErrEmptyWorkbook
	}
	return r.parseRows(rows)
}

func (r *SignalReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Always use Sheet1.
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	log.Printf("[SignalReader] Sheet1 read in %.2fms (%d rows)",
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

func (r *SignalReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// parseRows converts raw string rows into signal inputs. The header row
// names the columns; unknown columns are ignored.
func (r *SignalReader) parseRows(rows [][]string) ([]ports.SignalInput, error) {
	index := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, required := range expectedColumns[:6] {
		if _, ok := index[required]; !ok {
			return nil, core.NewRowError(1, fmt.Sprintf("missing required column %q", required))
		}
	}

	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	inputs := make([]ports.SignalInput, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rowNum := n + 2 // 1-based, after the header

		confidence, err := parseScore(cell(row, "confidence"))
		if err != nil {
			return nil, core.NewRowError(rowNum, "confidence: "+err.Error())
		}
		businessImpact, err := parseScore(cell(row, "business_impact"))
		if err != nil {
			return nil, core.NewRowError(rowNum, "business_impact: "+err.Error())
		}
		actionability, err := parseScore(cell(row, "actionability"))
		if err != nil {
			return nil, core.NewRowError(rowNum, "actionability: "+err.Error())
		}

		metadata := make(map[string]string)
		if trend := cell(row, "temporal_trend"); trend != "" {
			metadata["temporal_trend"] = trend
		}
		if timeframe := cell(row, "timeframe"); timeframe != "" {
			metadata["timeframe"] = timeframe
		}
		if len(metadata) == 0 {
			metadata = nil
		}

		inputs = append(inputs, ports.SignalInput{
			Insight:        cell(row, "insight"),
			Value:          parseValue(cell(row, "value")),
			Confidence:     confidence,
			BusinessImpact: businessImpact,
			Actionability:  actionability,
			SourceModule:   cell(row, "source_module"),
			MetricName:     cell(row, "metric_name"),
			Metadata:       metadata,
		})
	}

	log.Printf("[SignalReader] Parsed %d signal inputs", len(inputs))
	return inputs, nil
}

func parseScore(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty score cell")
	}
	return strconv.ParseFloat(s, 64)
}

// parseValue picks the narrowest value variant: integer, then float, then
// string. Workbooks cannot express the map variant.
func parseValue(s string) signal.Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return signal.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return signal.Float(f)
	}
	return signal.Str(s)
}
