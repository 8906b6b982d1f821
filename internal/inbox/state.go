package inbox

import (
	"encoding/json"
	"os"
	"time"

	"FinSentinel/internal/model"
)

// State is the persisted inbox content.
type State struct {
	Insights  []model.Insight `json:"insights"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LoadState reads the inbox state from a JSON file. Returns an empty state if
// the file doesn't exist.
func LoadState(filePath string) (*State, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveState writes the inbox state to a JSON file.
func SaveState(filePath string, state *State) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
