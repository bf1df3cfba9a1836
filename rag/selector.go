package rag

import "sort"

// Score counts the distinct chunk words that also appear in keywords.
func Score(content string, keywords map[string]struct{}) int {
	score := 0
	for w := range Keywords(content) {
		if _, ok := keywords[w]; ok {
			score++
		}
	}
	return score
}

// SelectBest returns the chunk sharing the most words with question. The
// first chunk to reach the maximum wins, and a zero score still wins.
func SelectBest(chunks []Chunk, question string) (SearchResult, error) {
	if len(chunks) == 0 {
		return SearchResult{}, ErrNoChunks
	}

	keywords := Keywords(question)
	best := SearchResult{Score: -1}
	for _, ch := range chunks {
		if score := Score(ch.Content, keywords); score > best.Score {
			best = SearchResult{Chunk: ch, Score: score}
		}
	}
	return best, nil
}

// Rank scores every chunk and returns the topK best, ties kept in input order.
func Rank(chunks []Chunk, question string, topK int) []SearchResult {
	keywords := Keywords(question)

	results := make([]SearchResult, 0, len(chunks))
	for _, ch := range chunks {
		results = append(results, SearchResult{
			Chunk: ch,
			Score: Score(ch.Content, keywords),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK < 0 {
		topK = 0
	}
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK]
}
