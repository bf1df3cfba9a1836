package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"go-rag-qa/generator"
	anthropicgenerator "go-rag-qa/generator/anthropic"
	googlegenerator "go-rag-qa/generator/google"
	groqgenerator "go-rag-qa/generator/groq"
	openaigenerator "go-rag-qa/generator/openai"
	"go-rag-qa/rag"
)

var ErrEmptyQuestion = errors.New("question is required")

type CLI struct {
	Question string `arg:"" optional:"" help:"Question to ask. Read from stdin when omitted."`

	// Document config
	File      string `help:"Path of the document to search (.txt or .pdf)" env:"RAG_FILE" default:"document.txt"`
	ChunkSize int    `help:"Maximum number of words per chunk" default:"300"`
	Overlap   int    `help:"Number of words shared by consecutive chunks" default:"50"`

	// Generator config
	Provider    string        `help:"Completion provider" enum:"groq,openai,anthropic,google" default:"groq"`
	ApiKey      string        `help:"API key for the provider; falls back to the provider's own env var" env:"RAG_API_KEY"`
	Model       string        `help:"Model identifier; empty uses the provider default"`
	BaseURL     string        `help:"Override the provider endpoint"`
	MaxTokens   int           `help:"Maximum tokens in the answer" default:"1024"`
	Temperature float64       `help:"Sampling temperature" default:"0.2"`
	Timeout     time.Duration `help:"Deadline for the whole run" default:"60s"`

	// Output config
	ShowContext bool   `help:"Print the best scoring chunks to stderr"`
	LogLevel    string `help:"Log level" enum:"debug,info,warn,error" default:"warn"`
}

// providerKeyEnv is consulted only when --api-key and RAG_API_KEY are empty.
var providerKeyEnv = map[string]string{
	"groq":      "GROQ_API_KEY",
	"openai":    "OPENAI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
	"google":    "GOOGLE_API_KEY",
}

type App struct {
	generator   generator.Generator
	chunkSize   int
	overlap     int
	showContext bool
	logger      *slog.Logger
	stderr      io.Writer
}

// Ask runs the whole pipeline for one question against one document.
func (a *App) Ask(ctx context.Context, path, question string) (string, error) {
	question = strings.ToLower(strings.TrimSpace(question))
	if question == "" {
		return "", ErrEmptyQuestion
	}

	doc, err := rag.LoadDocument(path)
	if err != nil {
		return "", err
	}
	a.logger.Debug("document loaded", "path", doc.Source, "bytes", len(doc.Text))

	chunks, err := rag.ChunkText(doc.Text, doc.Source, a.chunkSize, a.overlap)
	if err != nil {
		return "", err
	}
	a.logger.Debug("document chunked", "chunks", len(chunks), "chunk_size", a.chunkSize, "overlap", a.overlap)

	best, err := rag.SelectBest(chunks, question)
	if err != nil {
		return "", err
	}
	a.logger.Info("chunk selected", "id", best.Chunk.ID, "score", best.Score)

	if a.showContext {
		a.printContext(chunks, question)
	}

	answer, err := a.generator.Generate(ctx, rag.BuildPrompt(best.Chunk.Content, question))
	if err != nil {
		return "", err
	}
	return answer, nil
}

func (a *App) printContext(chunks []rag.Chunk, question string) {
	header := color.New(color.FgCyan, color.Bold)
	for i, res := range rag.Rank(chunks, question, 3) {
		header.Fprintf(a.stderr, "#%d %s (score %d)\n", i+1, res.Chunk.ID, res.Score)
		fmt.Fprintln(a.stderr, res.Chunk.Content)
		fmt.Fprintln(a.stderr)
	}
}

func newGenerator(ctx context.Context, cli *CLI, apiKey string) (generator.Generator, error) {
	opts := []generator.Option{
		generator.WithApiKey(apiKey),
		generator.WithModel(cli.Model),
		generator.WithBaseURL(cli.BaseURL),
		generator.WithMaxTokens(cli.MaxTokens),
		generator.WithTemperature(cli.Temperature),
	}

	switch cli.Provider {
	case "groq":
		return groqgenerator.NewGenerator(opts...)
	case "openai":
		return openaigenerator.NewGenerator(opts...)
	case "anthropic":
		return anthropicgenerator.NewGenerator(opts...)
	case "google":
		return googlegenerator.NewGenerator(ctx, opts...)
	}
	return nil, fmt.Errorf("unknown provider %q", cli.Provider)
}

// closeGenerator releases providers that hold a connection.
func closeGenerator(gen generator.Generator, logger *slog.Logger) {
	if c, ok := gen.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Warn("closing generator", "error", err)
		}
	}
}

func resolveApiKey(cli *CLI, getenv func(string) string) string {
	if cli.ApiKey != "" {
		return cli.ApiKey
	}
	return getenv(providerKeyEnv[cli.Provider])
}

func readQuestion(in io.Reader, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Ask a question: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read question: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// userMessage maps a run failure to the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, rag.ErrFileNotFound):
		return fmt.Sprintf("The document you're looking for cannot be found (%v).", err)
	case errors.Is(err, rag.ErrReadFailure):
		return fmt.Sprintf("The document could not be read (%v).", err)
	case errors.Is(err, rag.ErrInvalidChunkConfig):
		return fmt.Sprintf("Invalid chunking settings: %v.", err)
	case errors.Is(err, rag.ErrNoChunks):
		return "The document is empty, there is no content to search."
	case errors.Is(err, ErrEmptyQuestion):
		return "Please enter a question."
	case errors.Is(err, generator.ErrMissingApiKey):
		return "No API key configured. Set --api-key, RAG_API_KEY or the provider's key variable."
	case errors.Is(err, generator.ErrMaxTokens):
		return fmt.Sprintf("Invalid --max-tokens: %v.", err)
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out."
	case errors.Is(err, generator.ErrGeneration):
		return fmt.Sprintf("Failed to get an answer from the model: %v", err)
	}
	return fmt.Sprintf("Something went wrong: %v", err)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(h).With("run", uuid.NewString())
}

func run(ctx context.Context, cli *CLI, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, cli.LogLevel)

	question := cli.Question
	if question == "" {
		q, err := readQuestion(stdin, stderr)
		if err != nil {
			return err
		}
		question = q
	}

	ctx, cancel := context.WithTimeout(ctx, cli.Timeout)
	defer cancel()

	gen, err := newGenerator(ctx, cli, resolveApiKey(cli, os.Getenv))
	if err != nil {
		return err
	}
	defer closeGenerator(gen, logger)

	app := &App{
		generator:   gen,
		chunkSize:   cli.ChunkSize,
		overlap:     cli.Overlap,
		showContext: cli.ShowContext,
		logger:      logger.With("provider", cli.Provider),
		stderr:      stderr,
	}

	answer, err := app.Ask(ctx, cli.File, question)
	if err != nil {
		logger.Debug("run failed", "error", err)
		return err
	}

	fmt.Fprintln(stdout, answer)
	return nil
}

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("go-rag-qa"),
		kong.Description("Answer a question about a local document using its best matching chunk."),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &cli, os.Stdin, os.Stdout, os.Stderr); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, userMessage(err))
		stop()
		os.Exit(1)
	}
}
