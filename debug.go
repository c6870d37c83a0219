package wirecanvas

// debugLog logs one frame's stats at debug level.
func (g *Game) debugLog(stats FrameStats) {
	total := stats.GenTime + stats.UploadTime + stats.DrawTime
	Logger().Debug("frame",
		"frame", g.frame,
		"views", stats.Views,
		"vertices", stats.Vertices,
		"draw_calls", stats.DrawCalls,
		"gen", stats.GenTime,
		"upload", stats.UploadTime,
		"draw", stats.DrawTime,
		"total", total,
		"camera_x", g.renderer.Camera.Pos[0],
		"camera_y", g.renderer.Camera.Pos[1],
		"zoom", g.renderer.Camera.Zoom)
}
