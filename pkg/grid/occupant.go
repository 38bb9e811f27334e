package grid

import "strings"

// Raw occupant tokens as they appear in persisted layouts. Everything
// outside Serialize/Deserialize works with the typed Occupant instead.
const (
	TokenEmpty = "empty space"
	TokenPath  = "path"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindPath
	KindPlant
)

// Occupant is what a cell currently holds. Plant is only meaningful when
// Kind == KindPlant and is the catalog name; the grid itself never
// validates it (display and import validation happen a layer up).
type Occupant struct {
	Kind  Kind
	Plant string
}

var (
	Empty = Occupant{Kind: KindEmpty}
	Path  = Occupant{Kind: KindPath}
)

func PlantOccupant(name string) Occupant {
	return Occupant{Kind: KindPlant, Plant: name}
}

func (o Occupant) IsPlant() bool { return o.Kind == KindPlant }

// Token renders the occupant as its persisted string form.
func (o Occupant) Token() string {
	switch o.Kind {
	case KindPath:
		return TokenPath
	case KindPlant:
		return o.Plant
	default:
		return TokenEmpty
	}
}

// ParseToken maps a persisted cell string back to an occupant. Legacy
// layouts used "=" for paths and "•" or "" for empty cells.
func ParseToken(tok string) Occupant {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "", TokenEmpty, "•":
		return Empty
	case TokenPath, "=":
		return Path
	default:
		return PlantOccupant(tok)
	}
}
