package excel

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func templateBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))
	return buf.Bytes()
}

func templateFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"siparis_template.xlsx": {Data: templateBytes(t)},
		"broken.xlsx":           {Data: []byte("this is not a zip archive")},
	}
}

func newTestExporter(t *testing.T, fsys fstest.MapFS) *TemplateExporter {
	t.Helper()
	store := NewTemplateStore(fsys, map[string]string{"1": "siparis_template"})
	return NewTemplateExporter(store, DefaultExcelConfig())
}

// workbookBytes encodes rows into Sheet1 starting at A1.
func workbookBytes(t *testing.T, rows ...[]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		if row == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func sheetRowsOf(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	return rows
}

func headerRow() []any {
	return []any{"Kategori", "5' Modifikasyon", "3' Modifikasyon", "Saflaştırma", "Skala", "Toplam Fiyat", "Oligo Adı"}
}
