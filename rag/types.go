package rag

// Document is the full text of one input file
type Document struct {
	Source string // path the text was loaded from
	Text   string
}

// Chunk of a document
type Chunk struct {
	ID      string
	Content string
	Source  string // filename or doc ID
	Offset  int    // index of the first word in the document
	Words   int
}

// Keyword overlap result
type SearchResult struct {
	Chunk Chunk
	Score int
}
