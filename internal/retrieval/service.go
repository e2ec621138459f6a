package retrieval

import (
	"context"
	"log/slog"
	"sort"
	"strings"
)

// DefaultTopK is the default number of chunks returned per query.
const DefaultTopK = 3

// Query describes one retrieval request. Topic and Level are optional
// case-insensitive filters; TopK of zero means "use the configured default".
type Query struct {
	Text  string
	Topic string
	Level string
	TopK  int
}

// Service is the public retrieval entry point: it ranks indexed chunks
// against a query and returns the top-K with metadata attached, ordered
// most-to-least relevant.
type Service struct {
	index  *Index
	topK   int
	logger *slog.Logger
}

// NewService creates a retrieval service over the given index.
// A non-positive defaultTopK falls back to DefaultTopK.
func NewService(index *Index, defaultTopK int) *Service {
	if defaultTopK <= 0 {
		defaultTopK = DefaultTopK
	}
	return &Service{
		index:  index,
		topK:   defaultTopK,
		logger: slog.Default(),
	}
}

// Retrieve returns the top-K chunks most relevant to the query.
//
// The index is populated lazily on first use. When the topic/level filters
// exclude every chunk, the search widens to the full corpus: a slightly
// off-topic answer beats a hard failure for a best-effort tutoring
// explanation. An empty result is the only "not found" signal; only a
// failed store fetch is reported as an error.
func (s *Service) Retrieve(ctx context.Context, q Query) ([]ScoredChunk, error) {
	topK := q.TopK
	if topK == 0 {
		topK = s.topK
	}

	if s.index.IsEmpty() {
		if err := s.index.Reload(ctx); err != nil {
			return nil, err
		}
	}
	if s.index.IsEmpty() {
		s.logger.InfoContext(ctx, "retrieval over empty corpus", "query", q.Text)
		return []ScoredChunk{}, nil
	}

	queryTokens := filterStopwords(Tokenize(q.Text))

	all := s.index.AllChunks()
	candidates := filterChunks(all, q.Topic, q.Level)
	widened := false
	if len(candidates) == 0 {
		candidates = all
		widened = true
	}

	scored := make([]ScoredChunk, len(candidates))
	for i, ch := range candidates {
		score := relevanceScore(queryTokens, Tokenize(ch.Text), Tokenize(ch.Metadata.Title))
		scored[i] = ScoredChunk{Text: ch.Text, Score: score, Metadata: ch.Metadata}
	}

	// Stable sort keeps insertion order (material order, then chunk order
	// within a material) as the tie-break.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}

	s.logger.DebugContext(ctx, "retrieval completed",
		"query", q.Text,
		"topic", q.Topic,
		"level", q.Level,
		"candidates", len(candidates),
		"returned", len(scored),
		"widened", widened,
	)
	return scored, nil
}

func filterChunks(chunks []Chunk, topic, level string) []Chunk {
	if topic == "" && level == "" {
		return chunks
	}
	filtered := make([]Chunk, 0, len(chunks))
	for _, ch := range chunks {
		if topic != "" && !strings.EqualFold(ch.Metadata.Topic, topic) {
			continue
		}
		if level != "" && !strings.EqualFold(ch.Metadata.Level, level) {
			continue
		}
		filtered = append(filtered, ch)
	}
	return filtered
}
