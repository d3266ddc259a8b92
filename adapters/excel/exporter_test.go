package excel

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"siparis/domain/core"
	"siparis/domain/order"
	"siparis/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWritesRowsBelowHeader(t *testing.T) {
	exporter := newTestExporter(t, templateFS(t))

	doc, err := exporter.Export(order.TemplateRequest{
		TemplateID: "siparis_template",
		Rows: [][]any{
			{"prime", "FAM", "", "HPLC", "50 nmol", 12.5, "first"},
			{"probe", "", "BHQ1", nil, "200 nmol", 3.0, "second"},
			{"prime", "", "", "", "", 0.0, "third"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, "siparis_template.xlsx", doc.Filename)
	assert.Equal(t, ports.XLSXContentType, doc.ContentType)
	assert.Equal(t, int64(len(doc.Data)), doc.Size())

	rows := sheetRowsOf(t, doc.Data)
	require.Len(t, rows, 4)
	assert.Equal(t, order.Headers(), rows[0], "header row must be untouched")
	assert.Equal(t, "first", rows[1][6])
	assert.Equal(t, "12.5", rows[1][5])
	assert.Equal(t, "second", rows[2][6])
	assert.Equal(t, "third", rows[3][6])
}

func TestExportWithoutRowsReturnsTemplate(t *testing.T) {
	exporter := newTestExporter(t, templateFS(t))

	doc, err := exporter.Export(order.TemplateRequest{TemplateID: "siparis_template"})
	require.NoError(t, err)

	rows := sheetRowsOf(t, doc.Data)
	require.Len(t, rows, 1)
	assert.Equal(t, order.Headers(), rows[0])
}

func TestExportResolvesAliases(t *testing.T) {
	exporter := newTestExporter(t, templateFS(t))

	doc, err := exporter.Export(order.TemplateRequest{TemplateID: "1", Rows: [][]any{{"prime"}}})
	require.NoError(t, err)
	assert.Equal(t, "prime", sheetRowsOf(t, doc.Data)[1][0])
}

func TestExportTemplateNotFound(t *testing.T) {
	exporter := newTestExporter(t, templateFS(t))

	for _, id := range []string{"missing", "", "../siparis_template", "siparis_template.xlsx", "a/b"} {
		t.Run(fmt.Sprintf("id=%q", id), func(t *testing.T) {
			doc, err := exporter.Export(order.TemplateRequest{TemplateID: id, Rows: [][]any{{"prime"}}})
			assert.ErrorIs(t, err, core.ErrTemplateNotFound)
			assert.Nil(t, doc, "no partial document on failure")
		})
	}
}

func TestExportCorruptTemplate(t *testing.T) {
	exporter := newTestExporter(t, templateFS(t))

	doc, err := exporter.Export(order.TemplateRequest{TemplateID: "broken"})
	assert.ErrorIs(t, err, core.ErrWorksheetMissing)
	assert.Contains(t, err.Error(), "broken")
	assert.Nil(t, doc)
}

func TestExportDoesNotMutateTemplate(t *testing.T) {
	fsys := templateFS(t)
	original := bytes.Clone(fsys["siparis_template.xlsx"].Data)
	exporter := newTestExporter(t, fsys)

	_, err := exporter.Export(order.TemplateRequest{TemplateID: "siparis_template", Rows: [][]any{{"prime", "x"}}})
	require.NoError(t, err)

	assert.Equal(t, original, fsys["siparis_template.xlsx"].Data)

	doc, err := exporter.Export(order.TemplateRequest{TemplateID: "siparis_template"})
	require.NoError(t, err)
	assert.Len(t, sheetRowsOf(t, doc.Data), 1, "rows from an earlier export leaked into the template")
}

func TestExportConcurrentCallsAreIndependent(t *testing.T) {
	exporter := newTestExporter(t, templateFS(t))

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	docs := make([]*ports.Document, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			docs[w], errs[w] = exporter.Export(order.TemplateRequest{
				TemplateID: "siparis_template",
				Rows:       [][]any{{"prime", "", "", "", "", float64(w), fmt.Sprintf("oligo-%d", w)}},
			})
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		rows := sheetRowsOf(t, docs[w].Data)
		require.Len(t, rows, 2)
		assert.Equal(t, fmt.Sprintf("oligo-%d", w), rows[1][6])
	}
}

func TestTemplateStoreExists(t *testing.T) {
	store := NewTemplateStore(templateFS(t), map[string]string{"default": "siparis_template.xlsx"})

	assert.True(t, store.Exists("siparis_template"))
	assert.True(t, store.Exists("default"))
	assert.False(t, store.Exists("nope"))
	assert.False(t, store.Exists("../etc/passwd"))
}

func TestShippedTemplateMatchesColumns(t *testing.T) {
	store := NewDirTemplateStore("../../files", nil)
	data, err := store.Load(DefaultExcelConfig().DefaultTemplate)
	require.NoError(t, err)

	rows := sheetRowsOf(t, data)
	require.Len(t, rows, 1, "shipped template carries only the header")
	assert.Equal(t, order.Headers(), rows[0])
}
