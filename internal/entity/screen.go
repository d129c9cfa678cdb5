package entity

// ScreenDetectResult is the verdict of comparing two OCR snapshots.
// Analysis is present iff the screen changed.
type ScreenDetectResult struct {
	IsChanged  bool
	Similarity float64
	Analysis   *ActionResult
}
