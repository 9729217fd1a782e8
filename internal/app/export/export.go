package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	apperrors "batch-transcriber/internal/app/errors"
)

// Row is one saved transcript in the run report.
type Row struct {
	File           string
	Output         string
	AudioMinutes   float64
	Cost           float64
	RequestSeconds float64
	Sentences      int
	CompletedAt    time.Time
}

// ToExcel writes rows to a single "Transcripts" sheet followed by a totals row.
func ToExcel(rows []Row, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcripts")
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindIO, "failed to add report sheet")
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "File"
	headerRow.AddCell().Value = "Transcript"
	headerRow.AddCell().Value = "Audio Minutes"
	headerRow.AddCell().Value = "Cost"
	headerRow.AddCell().Value = "Request Seconds"
	headerRow.AddCell().Value = "Sentences"
	headerRow.AddCell().Value = "Completed At"

	var totalMinutes, totalCost, totalSeconds float64
	for _, r := range rows {
		row := sheet.AddRow()
		row.AddCell().Value = r.File
		row.AddCell().Value = r.Output
		row.AddCell().Value = fmt.Sprintf("%.2f", r.AudioMinutes)
		row.AddCell().Value = fmt.Sprintf("%.4f", r.Cost)
		row.AddCell().Value = fmt.Sprintf("%.2f", r.RequestSeconds)
		row.AddCell().SetInt(r.Sentences)
		row.AddCell().Value = r.CompletedAt.Format(time.RFC3339)

		totalMinutes += r.AudioMinutes
		totalCost += r.Cost
		totalSeconds += r.RequestSeconds
	}

	totals := sheet.AddRow()
	totals.AddCell().Value = fmt.Sprintf("Total (%d)", len(rows))
	totals.AddCell().Value = ""
	totals.AddCell().Value = fmt.Sprintf("%.2f", totalMinutes)
	totals.AddCell().Value = fmt.Sprintf("%.4f", totalCost)
	totals.AddCell().Value = fmt.Sprintf("%.2f", totalSeconds)

	if err := file.Save(outputFilePath); err != nil {
		return apperrors.ErrFileWriteFailed.WithCause(err)
	}
	return nil
}
