// Package export renders a registration list as a downloadable CSV or
// XLSX payload. The CSV matches what the admin console historically
// produced: UTF-8 with a byte-order mark so Excel detects the Chinese
// headers, and every field quoted.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/remix-pengkefei/ai-training-admin/internal/model"
)

var headers = []string{"姓名", "部门", "报名时间"}

// cst is the timezone registration times are rendered in.
var cst = time.FixedZone("CST", 8*60*60)

// WriteCSV writes the registration list as CSV. Each field is quoted
// unconditionally (inner quotes doubled); rows are newline-joined.
func WriteCSV(w io.Writer, regs []model.Registration) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	lines := make([]string, 0, len(regs)+1)
	lines = append(lines, joinQuoted(headers))
	for _, r := range regs {
		lines = append(lines, joinQuoted([]string{
			r.Name,
			r.Department,
			localizeTime(r.RegisteredAt),
		}))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// WriteXLSX writes the registration list as an Excel workbook.
func WriteXLSX(w io.Writer, regs []model.Registration) error {
	f := excelize.NewFile()
	sheetName := "报名名单"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}

	for idx, r := range regs {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Department)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), localizeTime(r.RegisteredAt))
	}

	f.SetColWidth(sheetName, "A", "A", 15)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 22)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Filename builds the download name for an export, e.g.
// "AI分享会_报名名单_2024-07-01.csv".
func Filename(eventTitle, ext string, now time.Time) string {
	if eventTitle == "" {
		eventTitle = "活动"
	}
	return fmt.Sprintf("%s_报名名单_%s.%s", eventTitle, now.In(cst).Format("2006-01-02"), ext)
}

// localizeTime renders an RFC 3339 timestamp in China local time, or
// empty when the value is missing or unparseable.
func localizeTime(value string) string {
	if value == "" {
		return ""
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return ""
	}
	return ts.In(cst).Format("2006/1/2 15:04:05")
}

func joinQuoted(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
