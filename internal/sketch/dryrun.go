package sketch

import "avsketch/internal/visual"

// FrameStats summarises one recorded frame.
type FrameStats struct {
	Index      int
	Background visual.RGB
	Stroke     visual.RGB
	Closed     int
	Open       int
	Vertices   int
}

// DryRun drives frames 1..n against a recording surface with a fixed input.
func (a *App) DryRun(n int, in visual.Input) []FrameStats {
	rec := visual.NewRecorder()
	stats := make([]FrameStats, 0, n)
	for i := 1; i <= n; i++ {
		rec.Reset()
		a.Frame(rec, in, i)

		st := FrameStats{
			Index:  i,
			Stroke: rec.StrokeColor().RGB(),
			Closed: rec.CountMode(visual.Close),
			Open:   rec.CountMode(visual.Open),
		}
		if len(rec.Backgrounds) > 0 {
			st.Background = rec.Backgrounds[len(rec.Backgrounds)-1].RGB()
		}
		for _, s := range rec.Shapes {
			st.Vertices += len(s.Vertices)
		}
		stats = append(stats, st)
	}
	return stats
}
