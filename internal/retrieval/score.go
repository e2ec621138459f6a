package retrieval

// titleMatchBonus is added once per query token that also appears in the
// chunk's title tokens, rewarding title matches independent of body term
// frequency.
const titleMatchBonus = 0.5

// queryStopwords are dropped from query tokens before scoring so frequent
// function words do not dominate the term-frequency ranking.
var queryStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "but": {}, "by": {},
	"for": {}, "from": {}, "has": {}, "have": {}, "in": {}, "is": {}, "it": {}, "of": {}, "on": {},
	"or": {}, "the": {}, "to": {}, "was": {}, "were": {}, "with": {},
}

func filterStopwords(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, isStop := queryStopwords[token]; isStop {
			continue
		}
		result = append(result, token)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// relevanceScore computes a term-frequency relevance score between a query
// and a chunk. For each query token present in the chunk, the token's
// frequency in the chunk divided by the chunk's total token count is added.
// There is no inverse-document-frequency weighting: the corpus is small and
// already topic-filtered, and a plain TF score keeps the ranking auditable
// against the literal material text.
func relevanceScore(queryTokens, chunkTokens, titleTokens []string) float64 {
	freq := make(map[string]int, len(chunkTokens))
	for _, tok := range chunkTokens {
		freq[tok]++
	}

	titleSet := make(map[string]struct{}, len(titleTokens))
	for _, tok := range titleTokens {
		titleSet[tok] = struct{}{}
	}

	total := float64(len(chunkTokens))
	var score float64
	for _, tok := range queryTokens {
		if n := freq[tok]; n > 0 {
			score += float64(n) / total
		}
		if _, ok := titleSet[tok]; ok {
			score += titleMatchBonus
		}
	}
	return score
}
