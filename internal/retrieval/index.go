package retrieval

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_material_source.go -package=mocks emotiva-math/internal/retrieval MaterialSource

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// MaterialSource supplies the current set of teacher materials. It is the
// single source of truth for the index; the index never writes back.
type MaterialSource interface {
	// ListAll returns every material with extractable text.
	ListAll(ctx context.Context) ([]Material, error)
}

// Index is the in-memory cache of chunks built from all known materials.
// It is rebuilt wholesale by Reload; chunks are never mutated in place.
type Index struct {
	source  MaterialSource
	chunker *Chunker
	logger  *slog.Logger

	mu     sync.RWMutex
	chunks []Chunk
}

// NewIndex creates an empty index over the given material source.
// The index stays empty until the first Reload.
func NewIndex(source MaterialSource, chunker *Chunker) *Index {
	if chunker == nil {
		chunker = NewChunker(DefaultChunkSize)
	}
	return &Index{
		source:  source,
		chunker: chunker,
		logger:  slog.Default(),
	}
}

// Reload rebuilds the chunk cache from the material source. The new chunk
// sequence is built fully before the swap, so concurrent readers never
// observe a half-rebuilt index. If the source fetch fails, the previous
// cache is left intact: a transient store outage must not erase
// previously-good retrieval capability.
func (ix *Index) Reload(ctx context.Context) error {
	materials, err := ix.source.ListAll(ctx)
	if err != nil {
		ix.logger.ErrorContext(ctx, "failed to reload materials, keeping previous index", "error", err)
		return fmt.Errorf("failed to list materials: %w", err)
	}

	chunks := make([]Chunk, 0, len(materials))
	for _, m := range materials {
		chunks = append(chunks, ix.chunker.Split(m)...)
	}

	ix.mu.Lock()
	ix.chunks = chunks
	ix.mu.Unlock()

	ix.logger.InfoContext(ctx, "retrieval index reloaded",
		"materials", len(materials),
		"chunks", len(chunks),
	)
	return nil
}

// IsEmpty reports whether the index holds no chunks, either because it was
// never loaded or because no materials exist.
func (ix *Index) IsEmpty() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.chunks) == 0
}

// AllChunks returns the current cached chunk sequence. Callers must treat
// the returned slice as read-only; Reload swaps the slice rather than
// mutating it, so a held reference stays consistent for the duration of
// one retrieval call.
func (ix *Index) AllChunks() []Chunk {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.chunks
}
