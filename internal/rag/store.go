package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Library answers free-text queries with a formatted context block. It never
// returns an error: retrieval is advisory context for the agent, so every
// failure mode degrades to an explanatory string.
type Library interface {
	Query(ctx context.Context, query string, topK int) string
}

// Document is one stored fact.
type Document struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	Source string    `json:"source"`
	Vector []float32 `json:"vector"`
}

// Store is a small persistent vector collection: documents live in memory and
// are flushed to a JSON file on every write. Reads are safe for concurrent
// use; writes only happen at seed/ingest time.
type Store struct {
	mu       sync.RWMutex
	path     string
	docs     []Document
	embedder Embedder
	log      *zap.Logger
}

// Open loads the collection at path, creating an empty one if the file does
// not exist yet. Callers treat an error as non-fatal and fall back to
// Unavailable.
func Open(path string, embedder Embedder, log *zap.Logger) (*Store, error) {
	s := &Store{path: path, embedder: embedder, log: log}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}
	if err := json.Unmarshal(data, &s.docs); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	return s, nil
}

// Count returns the number of stored documents.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Add upserts a document keyed by id and persists the collection.
func (s *Store) Add(ctx context.Context, text, source, id string) error {
	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("embed document %s: %w", id, err)
	}
	doc := Document{ID: id, Text: text, Source: source, Vector: vec}

	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := false
	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs[i] = doc
			replaced = true
			break
		}
	}
	if !replaced {
		s.docs = append(s.docs, doc)
	}
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create collection dir: %w", err)
	}
	data, err := json.Marshal(s.docs)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}

// seedFacts are the canonical statements loaded into an empty collection.
var seedFacts = []struct {
	Text   string
	Source string
}{
	{"Vaccines are safe and effective. They do not cause autism. Multiple studies have debunked this myth.", "CDC - Vaccine Safety"},
	{"Drinking bleach is extremely dangerous and can be fatal. It does not cure COVID-19 or any other virus.", "WHO - Mythbusters"},
	{"5G networks use non-ionizing radio waves and do not spread viruses like COVID-19.", "WHO - 5G and Health"},
	{"There is no scientific evidence that an alkaline diet prevents cancer. The body maintains its own pH balance.", "American Institute for Cancer Research"},
	{"Lemons contain Vitamin C but do not cure cancer. Cancer requires professional medical treatment.", "National Cancer Institute"},
	{"Ivermectin is an anti-parasitic drug and is not approved for treating viral infections like COVID-19.", "FDA"},
	{"Masks are effective at reducing the spread of respiratory droplets and viruses.", "CDC - Mask Guidance"},
	{"Antibiotics only kill bacteria, not viruses. They should not be used for colds or flu.", "CDC - Antibiotic Use"},
	{"Sugar intake should be limited, but it does not directly cause hyperactivity in children.", "WebMD"},
	{"Detox teas and diets are generally unnecessary as the liver and kidneys detoxify the body naturally.", "Mayo Clinic"},
}

// SeedIfEmpty loads the canonical facts into a fresh collection. Individual
// failures are logged and skipped so a flaky embedding call cannot abort
// startup.
func (s *Store) SeedIfEmpty(ctx context.Context) {
	if s.Count() > 0 {
		return
	}
	s.log.Info("seeding trusted library with initial data")
	for i, f := range seedFacts {
		if err := s.Add(ctx, f.Text, f.Source, fmt.Sprintf("seed_%d", i)); err != nil {
			s.log.Warn("failed to seed document", zap.Int("index", i), zap.Error(err))
		}
	}
}

// Query embeds the query, ranks documents by cosine similarity and formats
// the topK hits as a context block.
func (s *Store) Query(ctx context.Context, query string, topK int) string {
	if topK <= 0 {
		topK = 2
	}
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return fmt.Sprintf("Error querying trusted library: %v", err)
	}

	s.mu.RLock()
	type scored struct {
		doc Document
		sim float32
	}
	results := make([]scored, 0, len(s.docs))
	for _, d := range s.docs {
		if len(d.Vector) != len(vec) {
			continue
		}
		results = append(results, scored{doc: d, sim: cosineSimilarity(vec, d.Vector)})
	}
	s.mu.RUnlock()

	if len(results) == 0 {
		return "No relevant documents found in the local trusted library."
	}
	sort.Slice(results, func(i, j int) bool { return results[i].sim > results[j].sim })
	if topK > len(results) {
		topK = len(results)
	}

	var b strings.Builder
	for _, r := range results[:topK] {
		fmt.Fprintf(&b, "Source: %s\nContent: %s\n\n", r.doc.Source, r.doc.Text)
	}
	return b.String()
}

func cosineSimilarity(a, b []float32) float32 {
	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (float32(math.Sqrt(float64(normA)))*float32(math.Sqrt(float64(normB))) + 1e-8)
}

// Unavailable is the degraded library used when initialization failed.
type Unavailable struct{}

func (Unavailable) Query(ctx context.Context, query string, topK int) string {
	return "Trusted Medical Library is currently unavailable. Please use web search."
}
