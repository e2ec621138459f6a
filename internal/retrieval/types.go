package retrieval

// Material is a unit of teacher-authored subject content. It is the only
// source of knowledge the retrieval layer ever sees; records are validated
// at the storage boundary before they get here.
type Material struct {
	ID       int
	Title    string
	Topic    string
	Level    string
	Author   string
	FullText string
}

// Metadata is a frozen copy of the owning material's descriptive fields,
// taken at chunk-creation time. Later edits to the material do not mutate
// existing chunks; a reload replaces them wholesale.
type Metadata struct {
	MaterialID int    `json:"material_id"`
	Title      string `json:"title"`
	Topic      string `json:"topic"`
	Level      string `json:"level"`
	Author     string `json:"author"`
}

// Chunk is a bounded, contiguous slice of a material's text.
type Chunk struct {
	Text     string
	Metadata Metadata
}

// ScoredChunk is a chunk ranked against one query. It carries enough
// metadata for the caller to cite the source material transparently.
type ScoredChunk struct {
	Text     string   `json:"text"`
	Score    float64  `json:"score"`
	Metadata Metadata `json:"metadata"`
}
