package suggest

import (
	"strings"

	"plot/entities"
)

// Suggestion is one proposed placement from the external reasoning
// source. PlannedPlantingDate is an optional YYYY-MM-DD string.
type Suggestion struct {
	Plant               string `json:"plant"`
	Row                 int    `json:"row"`
	Col                 int    `json:"col"`
	Reason              string `json:"reason"`
	PlannedPlantingDate string `json:"planned_planting_date,omitempty"`
}

// Document is the structured response expected back after an export.
type Document struct {
	Reasoning   string
	Suggestions []Suggestion

	// Malformed collects entries that were present in the list but did
	// not decode; they count as rejections, never as a batch failure.
	Malformed []Rejection
}

// Rejection records one suggestion that could not be applied and why.
type Rejection struct {
	Suggestion Suggestion `json:"suggestion"`
	Reason     string     `json:"reason"`
}

// Report is the outcome of applying a document to a grid.
type Report struct {
	Reasoning string       `json:"reasoning"`
	Applied   []Suggestion `json:"applied"`
	Rejected  []Rejection  `json:"rejected"`
}

// MalformedDocumentError means the whole response was unusable: nothing
// was applied and the raw parse problem is surfaced to the host.
type MalformedDocumentError struct {
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	return "suggest: malformed suggestion document: " + e.Reason
}

// catalogIndex resolves plant names case-insensitively to their
// canonical catalog entries.
type catalogIndex map[string]entities.Plant

func indexCatalog(catalog []entities.Plant) catalogIndex {
	idx := make(catalogIndex, len(catalog))
	for _, p := range catalog {
		idx[strings.ToLower(strings.TrimSpace(p.Name))] = p
	}
	return idx
}

func (idx catalogIndex) lookup(name string) (entities.Plant, bool) {
	p, ok := idx[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}
