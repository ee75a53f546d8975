package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/remix-pengkefei/ai-training-admin/internal/export"
	"github.com/remix-pengkefei/ai-training-admin/internal/model"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteCSV(&buf, []model.Registration{
		{Name: "张三", Department: "研发", RegisteredAt: "2024-01-01T10:00:00Z"},
	})
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"), "payload starts with UTF-8 BOM")

	lines := strings.Split(strings.TrimPrefix(out, "\xEF\xBB\xBF"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, `"姓名","部门","报名时间"`, lines[0])
	// 10:00 UTC is 18:00 in China local time.
	require.Equal(t, `"张三","研发","2024/1/1 18:00:00"`, lines[1])
}

func TestWriteCSVEscapesQuotes(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteCSV(&buf, []model.Registration{
		{Name: `李"四"`, Department: "市场"},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"李""四""","市场",""`)
}

func TestWriteCSVEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, nil))
	require.Equal(t, "\xEF\xBB\xBF"+`"姓名","部门","报名时间"`, buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteXLSX(&buf, []model.Registration{
		{Name: "张三", Department: "研发", RegisteredAt: "2024-01-01T10:00:00Z"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("报名名单", "A2")
	require.NoError(t, err)
	require.Equal(t, "张三", name)

	dept, err := f.GetCellValue("报名名单", "B2")
	require.NoError(t, err)
	require.Equal(t, "研发", dept)
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 7, 1, 3, 0, 0, 0, time.UTC)
	require.Equal(t, "AI分享会_报名名单_2024-07-01.csv", export.Filename("AI分享会", "csv", now))
	require.Equal(t, "活动_报名名单_2024-07-01.xlsx", export.Filename("", "xlsx", now))
}
