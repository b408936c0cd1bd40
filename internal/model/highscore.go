package model

// HighScores is the separate slot game-over handlers read and write
// directly: one best score per mini-game, independent of the progress
// record.
type HighScores map[string]int

// Submit records score if it beats the stored best and reports whether it
// did.
func (h HighScores) Submit(game string, score int) bool {
	if best, ok := h[game]; ok && score <= best {
		return false
	}
	h[game] = score
	return true
}
