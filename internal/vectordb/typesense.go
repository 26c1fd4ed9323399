package vectordb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/typesense/typesense-go/v4/typesense"
	"github.com/typesense/typesense-go/v4/typesense/api"
	"github.com/typesense/typesense-go/v4/typesense/api/pointer"
)

type Config struct {
	URL        string
	APIKey     string
	Collection string
	Dimension  int
}

// TypesenseIndex implements Index on a single Typesense collection with an
// embedding float[] field. Typesense reports cosine distance per hit; this
// adapter converts it to similarity (1 - distance) so callers only ever see
// the 0..1 similarity scale.
type TypesenseIndex struct {
	client     *typesense.Client
	collection string
	dimension  int
}

func NewTypesense(cfg Config) *TypesenseIndex {
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(30*time.Second),
	)
	return &TypesenseIndex{
		client:     client,
		collection: cfg.Collection,
		dimension:  cfg.Dimension,
	}
}

// EnsureCollection creates the collection if it does not exist yet.
func (t *TypesenseIndex) EnsureCollection(ctx context.Context) error {
	_, err := t.client.Collection(t.collection).Retrieve(ctx)
	if err == nil {
		return nil
	}
	var httpErr *typesense.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusNotFound {
		return fmt.Errorf("retrieving collection %s: %w", t.collection, err)
	}

	slog.InfoContext(ctx, "creating typesense collection", "collection", t.collection, "dimension", t.dimension)

	schema := &api.CollectionSchema{
		Name: t.collection,
		Fields: []api.Field{
			{Name: "source", Type: "string", Facet: pointer.True()},
			{Name: "section", Type: "string", Optional: pointer.True()},
			{Name: "page", Type: "int32", Optional: pointer.True()},
			{Name: "text", Type: "string"},
			{Name: "chunk_index", Type: "int32"},
			{Name: "embedding", Type: "float[]", NumDim: pointer.Int(t.dimension)},
		},
	}
	if _, err := t.client.Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("creating collection %s: %w", t.collection, err)
	}
	return nil
}

// Drop deletes the collection and everything in it.
func (t *TypesenseIndex) Drop(ctx context.Context) error {
	if _, err := t.client.Collection(t.collection).Delete(ctx); err != nil {
		var httpErr *typesense.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("dropping collection %s: %w", t.collection, err)
	}
	return nil
}

func (t *TypesenseIndex) Upsert(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(records))
	for _, r := range records {
		doc := map[string]interface{}{
			"id":          r.ID,
			"source":      r.Metadata.Source,
			"section":     r.Metadata.Section,
			"text":        r.Metadata.Text,
			"chunk_index": r.Metadata.ChunkIndex,
			"embedding":   r.Vector,
		}
		if r.Metadata.Page != nil {
			doc["page"] = *r.Metadata.Page
		}
		documents = append(documents, doc)
	}

	params := &api.ImportDocumentsParams{
		Action:    pointer.Any(api.Upsert),
		BatchSize: pointer.Int(100),
	}
	responses, err := t.client.Collection(t.collection).Documents().Import(ctx, documents, params)
	if err != nil {
		return fmt.Errorf("importing documents: %w", err)
	}
	for i, resp := range responses {
		if !resp.Success {
			return fmt.Errorf("importing document %d (%s): %s", i, records[i].ID, resp.Error)
		}
	}

	slog.InfoContext(ctx, "upserted vectors", "collection", t.collection, "count", len(records))
	return nil
}

func (t *TypesenseIndex) Query(ctx context.Context, vector []float64, topK int, sourceFilter string) ([]Match, error) {
	params := &api.SearchCollectionParams{
		Q:           pointer.String("*"),
		VectorQuery: pointer.String(vectorQuery(vector, topK)),
		PerPage:     pointer.Int(topK),
	}
	if sourceFilter != "" {
		params.FilterBy = pointer.String(fmt.Sprintf("source:=`%s`", sourceFilter))
	}

	result, err := t.client.Collection(t.collection).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	if result.Hits == nil {
		return nil, nil
	}

	matches := make([]Match, 0, len(*result.Hits))
	for _, hit := range *result.Hits {
		if hit.Document == nil || hit.VectorDistance == nil {
			continue
		}
		doc := *hit.Document
		m := Match{
			Score:    1 - float64(*hit.VectorDistance),
			Metadata: metadataFromDocument(doc),
		}
		if id, ok := doc["id"].(string); ok {
			m.ID = id
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func (t *TypesenseIndex) Stats(ctx context.Context) (Stats, error) {
	resp, err := t.client.Collection(t.collection).Retrieve(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("retrieving collection stats: %w", err)
	}
	var stats Stats
	if resp.NumDocuments != nil {
		stats.NumDocuments = *resp.NumDocuments
	}
	return stats, nil
}

func metadataFromDocument(doc map[string]interface{}) Metadata {
	var md Metadata
	if v, ok := doc["source"].(string); ok {
		md.Source = v
	}
	if v, ok := doc["section"].(string); ok {
		md.Section = v
	}
	if v, ok := doc["text"].(string); ok {
		md.Text = v
	}
	if v, ok := doc["page"].(float64); ok {
		page := int(v)
		md.Page = &page
	}
	if v, ok := doc["chunk_index"].(float64); ok {
		md.ChunkIndex = int(v)
	}
	return md
}

func vectorQuery(vector []float64, topK int) string {
	var b strings.Builder
	b.WriteString("embedding:([")
	for i, v := range vector {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	fmt.Fprintf(&b, "], k:%d)", topK)
	return b.String()
}
