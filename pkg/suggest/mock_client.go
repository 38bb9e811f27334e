package suggest

import (
	"encoding/json"
	"regexp"
	"strconv"
)

type mockClient struct{}

// NewMock returns a deterministic stand-in used when no LLM endpoint is
// configured. It reads the empty-cell list straight out of the prompt
// and fills cells round-robin with common starter crops.
func NewMock() Client { return &mockClient{} }

var coordRe = regexp.MustCompile(`\{"row":(\d+),"col":(\d+)\}`)

var mockRotation = []string{"Lettuce", "Carrots", "Basil", "Kale"}

func (m *mockClient) Suggest(prompt string) (string, error) {
	suggestions := []Suggestion{}
	for i, match := range coordRe.FindAllStringSubmatch(prompt, -1) {
		row, _ := strconv.Atoi(match[1])
		col, _ := strconv.Atoi(match[2])
		suggestions = append(suggestions, Suggestion{
			Plant:  mockRotation[i%len(mockRotation)],
			Row:    row,
			Col:    col,
			Reason: "rotation fill (offline suggestion)",
		})
	}
	doc := map[string]any{
		"reasoning":   "Offline mock: filled listed empty cells with a beginner crop rotation.",
		"suggestions": suggestions,
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
