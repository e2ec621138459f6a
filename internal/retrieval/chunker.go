package retrieval

import "strings"

// DefaultChunkSize is the default chunk size limit in characters.
const DefaultChunkSize = 500

// Chunker splits a material's full text into bounded chunks. Boundaries are
// paragraph-based (blank lines), not token-based, so chunks stay semantically
// coherent even when that costs a little size precision.
type Chunker struct {
	chunkSize int
}

// NewChunker creates a chunker with the given size limit in characters.
// A non-positive size falls back to DefaultChunkSize.
func NewChunker(chunkSize int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Chunker{chunkSize: chunkSize}
}

// Split chunks a material's full text into an ordered sequence of chunks.
// Paragraphs are accumulated greedily: when appending the next paragraph
// would exceed the size limit, the buffer is emitted and the paragraph
// starts a new one. A single paragraph longer than the limit is emitted
// whole rather than split mid-paragraph.
// Each chunk carries its own copy of the material's metadata.
func (c *Chunker) Split(m Material) []Chunk {
	text := strings.TrimSpace(m.FullText)
	if text == "" {
		return nil
	}

	meta := Metadata{
		MaterialID: m.ID,
		Title:      m.Title,
		Topic:      m.Topic,
		Level:      m.Level,
		Author:     m.Author,
	}

	var chunks []Chunk
	var current string

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if len(current)+len(para) > c.chunkSize {
			if current != "" {
				chunks = append(chunks, Chunk{Text: current, Metadata: meta})
			}
			current = para
			continue
		}

		if current == "" {
			current = para
		} else {
			current += "\n\n" + para
		}
	}

	if current != "" {
		chunks = append(chunks, Chunk{Text: current, Metadata: meta})
	}

	return chunks
}
