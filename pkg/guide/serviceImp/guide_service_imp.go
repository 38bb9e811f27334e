package serviceImp

import (
	"sort"
	"strings"

	"plot/entities"
	"plot/pkg/guide/repository"
)

type Svc struct{ r repository.GuideRepository }

func New(r repository.GuideRepository) *Svc { return &Svc{r: r} }

// chunkText splits on the first newline after maxRunes so paragraphs
// stay intact.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var parts []string
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertDocument(title, tags, text, sourceURL string) (*entities.GuideDoc, int, error) {
	d := &entities.GuideDoc{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}
	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}
	rows := make([]entities.GuideChunk, len(chs))
	for i := range chs {
		rows[i] = entities.GuideChunk{DocID: d.DocID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

// Search scores chunks by keyword overlap with the query terms. Ties
// break on recency (higher chunk id first).
func (s *Svc) Search(query string, k int) ([]entities.GuideChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}
	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	terms := strings.Fields(strings.ToLower(q))
	type scored struct {
		ch entities.GuideChunk
		sc int
	}
	var hits []scored
	for _, ch := range chunks {
		low := strings.ToLower(ch.Text)
		score := 0
		for _, t := range terms {
			if strings.Contains(low, t) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{ch: ch, sc: score})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].sc != hits[j].sc {
			return hits[i].sc > hits[j].sc
		}
		return hits[i].ch.ChunkID > hits[j].ch.ChunkID
	})
	if k > len(hits) {
		k = len(hits)
	}
	out := make([]entities.GuideChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, hits[i].ch)
	}
	return out, nil
}

// ContextFor renders the top search hits as a plain-text block suitable
// for inclusion in a suggestion prompt. Snippets are capped so a fat
// guide cannot crowd out the garden itself.
func (s *Svc) ContextFor(query string, limit int) (string, error) {
	const maxSnippet = 600
	chunks, err := s.Search(query, limit)
	if err != nil {
		return "", err
	}
	if len(chunks) == 0 {
		return "", nil
	}
	var b strings.Builder
	for i, ch := range chunks {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		text := strings.TrimSpace(ch.Text)
		if runes := []rune(text); len(runes) > maxSnippet {
			text = string(runes[:maxSnippet]) + "…"
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.GuideDoc, error) {
	return s.r.DocsByIDs(ids)
}

func (s *Svc) ListDocs() ([]entities.GuideDoc, error) { return s.r.ListDocs() }
