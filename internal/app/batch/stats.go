package batch

// RunStatistics accumulates totals across one run. TotalTime counts only the seconds spent
// inside transcription calls.
type RunStatistics struct {
	TranscriptionCount int
	TotalCost          float64
	TotalTime          float64
}

// Record adds one processed file.
func (s *RunStatistics) Record(cost, elapsedSeconds float64) {
	s.TranscriptionCount++
	s.TotalCost += cost
	s.TotalTime += elapsedSeconds
}
