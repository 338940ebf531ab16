package models

// PresetProject is a read-only catalog entry describing a known
// school/program combination. Presets pre-fill new projects and serve
// as the monitoring target list. They are seeded once and never edited
// by the user.
type PresetProject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	School      string `json:"school"`
	Major       string `json:"major"`
	Description string `json:"description"`
	OfficialURL string `json:"official_url"`
}
