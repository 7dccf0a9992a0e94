// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package overview

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Layout of the period dates in exported reports.
const reportDateLayout = "Jan. 02 2006"

// Sheet of the xlsx report.
const usageSheet = "Usage"

var usageHeader = []string{"Project Name", "VCPUs", "Ram (MB)", "Disk (GB)", "Usage (Hours)"}

func hours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

// Shortest representation with at least one decimal, e.g. "0.0" or "12.25".
func decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func usageRecord(u Usage) []string {
	return []string{
		u.ProjectName,
		strconv.Itoa(u.VCPUs),
		strconv.Itoa(u.MemoryMB),
		decimal(u.DiskGBHours),
		hours(u.VCPUHours),
	}
}

// Lines on top of the exported report.
func preamble(report Report) [][]string {
	rows := [][]string{
		{"Usage Report For Period:", report.Period.Start.Format(reportDateLayout), "/", report.Period.End.Format(reportDateLayout)},
		{"Active Instances:", strconv.Itoa(report.Summary.Instances)},
		{"CPU-HRs Used:", hours(report.Summary.VCPUHours)},
		{"Total Active RAM (MB):", strconv.Itoa(report.Summary.MemoryMB)},
		{"Total Disk Size:", strconv.Itoa(report.Summary.LocalGB)},
		{"Total Disk Usage:", hours(report.Summary.DiskGBHours)},
	}
	for _, n := range report.Notices {
		rows = append(rows, []string{"Notice:", n.Message})
	}
	return rows
}

// Write the report as csv with CRLF line endings.
func WriteCSV(w io.Writer, report Report) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.WriteAll(preamble(report)); err != nil {
		return err
	}
	if err := writer.Write(usageHeader); err != nil {
		return err
	}
	for _, u := range report.Usages {
		if err := writer.Write(usageRecord(u)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Write the report as xlsx workbook with the usage in a single sheet.
func WriteXLSX(w io.Writer, report Report) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), usageSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	rows := preamble(report)
	rows = append(rows, usageHeader)
	for _, u := range report.Usages {
		rows = append(rows, usageRecord(u))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(usageSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
