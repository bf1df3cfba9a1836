package rag

// BuildPrompt places context and question into the fixed answer template.
// Neither value is escaped.
func BuildPrompt(context, question string) string {
	return "Context:\n" + context + "\n\nQuestion: " + question + "\nAnswer:"
}
