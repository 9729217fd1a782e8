package batch

import (
	"fmt"
	"math"
	"strings"

	"batch-transcriber/internal/app/model"
	"batch-transcriber/internal/app/util/files"
)

// Separator bounds transcript blocks and the console report.
const Separator = "--------------------------------"

// EstimateCost returns minutes × rate without rounding.
func EstimateCost(minutes, ratePerMinute float64) float64 {
	return minutes * ratePerMinute
}

// FormatCost renders a dollar amount with four decimals, e.g. "0.0086".
func FormatCost(cost float64) string {
	return fmt.Sprintf("%.4f", cost)
}

// FormatDuration renders seconds as HH:MM:SS.CC, truncating to whole hundredths.
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	// 0.29*100 is 28.999..., so allow for float error before truncating.
	centis := int64(math.Floor(seconds*100 + 1e-6))
	total := centis / 100

	return fmt.Sprintf("%02d:%02d:%02d.%02d", total/3600, total%3600/60, total%60, centis%100)
}

// RenderTranscript builds one appended block: separator, one line per paragraph with each
// sentence followed by a space, a blank line after each paragraph, closing separator, footer.
func RenderTranscript(result *model.Transcription, cost, elapsedSeconds float64) string {
	var b strings.Builder

	b.WriteString("\n" + Separator + "\n")
	if result != nil {
		for _, paragraph := range result.Paragraphs {
			for _, sentence := range paragraph.Sentences {
				b.WriteString(sentence.Text)
				b.WriteString(" ")
			}
			b.WriteString("\n\n")
		}
	}
	b.WriteString("\n" + Separator + "\n")
	fmt.Fprintf(&b, "\nCost: ~$%s\n", FormatCost(cost))
	fmt.Fprintf(&b, "Time: %s\n", FormatDuration(elapsedSeconds))

	return b.String()
}

// WriteOutput appends text to path, creating it when absent.
func WriteOutput(path, text string) error {
	return files.AppendToFile(path, text)
}
