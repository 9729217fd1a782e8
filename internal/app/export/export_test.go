package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	apperrors "batch-transcriber/internal/app/errors"
)

func TestToExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	rows := []Row{
		{File: "a.mp3", Output: "out/a_transcript.txt", AudioMinutes: 2, Cost: 0.0086, RequestSeconds: 1.25, Sentences: 3,
			CompletedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{File: "b.wav", Output: "out/b_transcript.txt", AudioMinutes: 1, Cost: 0.0043, RequestSeconds: 0.75, Sentences: 1,
			CompletedAt: time.Date(2024, 1, 1, 12, 1, 0, 0, time.UTC)},
	}

	require.NoError(t, ToExcel(rows, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet := file.Sheet["Transcripts"]
	require.NotNil(t, sheet)
	require.Len(t, sheet.Rows, 4)

	assert.Equal(t, "File", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "a.mp3", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "0.0086", sheet.Rows[1].Cells[3].Value)
	assert.Equal(t, "2024-01-01T12:00:00Z", sheet.Rows[1].Cells[6].Value)
	assert.Equal(t, "Total (2)", sheet.Rows[3].Cells[0].Value)
	assert.Equal(t, "0.0129", sheet.Rows[3].Cells[3].Value)
	assert.Equal(t, "2.00", sheet.Rows[3].Cells[4].Value)
}

func TestToExcelUnwritablePath(t *testing.T) {
	err := ToExcel(nil, filepath.Join(t.TempDir(), "missing", "report.xlsx"))

	assert.ErrorIs(t, err, apperrors.ErrFileWriteFailed)
}
