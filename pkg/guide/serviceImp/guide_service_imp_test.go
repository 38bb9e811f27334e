package serviceImp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plot/entities"
)

type fakeRepo struct {
	docs   []entities.GuideDoc
	chunks []entities.GuideChunk
}

func (f *fakeRepo) CreateDoc(d *entities.GuideDoc) error {
	d.DocID = uint(len(f.docs) + 1)
	f.docs = append(f.docs, *d)
	return nil
}

func (f *fakeRepo) BulkInsertChunks(rows []entities.GuideChunk) error {
	for i := range rows {
		rows[i].ChunkID = uint(len(f.chunks) + 1)
		f.chunks = append(f.chunks, rows[i])
	}
	return nil
}

func (f *fakeRepo) ListDocs() ([]entities.GuideDoc, error)   { return f.docs, nil }
func (f *fakeRepo) AllChunks() ([]entities.GuideChunk, error) { return f.chunks, nil }

func (f *fakeRepo) DocsByIDs(ids []uint) (map[uint]entities.GuideDoc, error) {
	out := map[uint]entities.GuideDoc{}
	for _, d := range f.docs {
		for _, id := range ids {
			if d.DocID == id {
				out[d.DocID] = d
			}
		}
	}
	return out, nil
}

func TestChunkTextSplitsOnNewlineAfterLimit(t *testing.T) {
	para := strings.Repeat("x", 600) + "\n"
	parts := chunkText(para+para+para, 1000)
	assert.Len(t, parts, 2, "split lands on the newline after the limit")

	assert.Empty(t, chunkText("", 1000))
	assert.Len(t, chunkText("short text", 1000), 1)
}

func TestUpsertDocumentChunksAndStores(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)

	doc, n, err := svc.UpsertDocument("Kale basics", "brassica", "Kale loves cool weather.\nPlant early.", "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotZero(t, doc.DocID)
	require.Len(t, repo.chunks, 1)
	assert.Equal(t, doc.DocID, repo.chunks[0].DocID)
}

func TestSearchRanksByTermOverlap(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)
	_, _, err := svc.UpsertDocument("Kale", "", "Kale tolerates frost and likes garlic nearby.", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertDocument("Carrots", "", "Carrots need loose soil.", "")
	require.NoError(t, err)

	hits, err := svc.Search("kale garlic frost", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Contains(t, hits[0].Text, "Kale")

	none, err := svc.Search("bananas", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestContextForJoinsSnippets(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo)
	_, _, err := svc.UpsertDocument("Kale", "", "Kale likes frost.", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertDocument("Garlic", "", "Garlic deters kale pests.", "")
	require.NoError(t, err)

	ctx, err := svc.ContextFor("kale", 4)
	require.NoError(t, err)
	assert.Contains(t, ctx, "Kale likes frost.")
	assert.Contains(t, ctx, "---")

	empty, err := svc.ContextFor("nothing matches this", 4)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
