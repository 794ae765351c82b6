package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"resume-rag/internal/batch"
	"resume-rag/internal/candidate"
	"resume-rag/internal/config"
	"resume-rag/internal/embedding"
	"resume-rag/internal/llmservice"
	"resume-rag/internal/rag"
	"resume-rag/internal/sink"
	"resume-rag/internal/store"
)

const defaultConfigPath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	_ = godotenv.Load()

	configPath := flag.String("config", defaultConfigPath, "Path to the config file")
	filePath := flag.String("file", "", "Resume file to upload and index")
	query := flag.String("query", "", "Question to answer")
	batchDir := flag.String("batch", "", "Directory of resumes to extract and forward (defaults to batch.dir from config)")
	flag.Parse()

	batchMode := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "batch" {
			batchMode = true
		}
	})

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	ctx := context.Background()

	if batchMode {
		dir := *batchDir
		if dir == "" {
			dir = cfg.Batch.Dir
		}
		if dir == "" {
			log.Fatal().Msg("No batch directory given: pass -batch <dir> or set batch.dir in config")
		}
		runBatch(ctx, cfg, dir)
		return
	}

	index, err := store.Open(&cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening vector store")
	}
	defer index.Close()

	svc := newService(cfg, index)

	if *filePath != "" {
		uploadResume(ctx, svc, *filePath)
		return
	}
	if *query != "" {
		askQuestion(ctx, svc, *query)
		return
	}

	interactiveLoop(ctx, svc)
}

func newService(cfg *config.Config, index store.VectorIndex) *rag.RAG {
	embedder, err := embedding.NewEmbedder(&cfg.EmbedLLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}

	gen, err := llmservice.NewClient(&cfg.GenLLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing generation client")
	}

	return rag.NewRAG(index, embedder, gen, cfg)
}

func runBatch(ctx context.Context, cfg *config.Config, dir string) {
	gen, err := llmservice.NewClient(&cfg.GenLLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing generation client")
	}

	runner := batch.NewRunner(cfg, gen, sink.NewClient(&cfg.Sink))
	sum, err := runner.Run(ctx, dir)
	if err != nil {
		log.Fatal().Err(err).Msg("Batch run failed")
	}
	fmt.Printf("Processed %d file(s): %d sent, %d skipped, %d failed\n",
		sum.Processed, sum.Sent, sum.Skipped, sum.Failed)
}

func uploadResume(ctx context.Context, svc *rag.RAG, filePath string) {
	tag, chunks, err := svc.Upload(ctx, filePath)
	if err != nil {
		log.Error().Err(err).Msg("Error uploading resume")
		return
	}
	fmt.Printf("Resume for %q stored successfully (%d chunks).\n", tag, chunks)
}

func askQuestion(ctx context.Context, svc *rag.RAG, query string) {
	resp, err := svc.Query(ctx, query)
	switch {
	case errors.Is(err, candidate.ErrNoCandidates):
		fmt.Println("No resumes indexed yet. Upload one first.")
	case errors.Is(err, candidate.ErrLowConfidence):
		fmt.Println("Could not identify a relevant candidate from your query.")
	case errors.Is(err, rag.ErrInsufficientContext):
		fmt.Println("No relevant chunks found.")
	case err != nil:
		log.Error().Err(err).Msg("Error querying")
	default:
		fmt.Printf("Matched candidate: %s (Confidence: %d%%)\n\n", resp.Candidate, resp.Confidence)
		fmt.Println(resp.Answer)
	}
}

func interactiveLoop(ctx context.Context, svc *rag.RAG) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("\n===== Resume Chatbot =====")
		fmt.Println("Commands: upload <file> | query <question> | exit")
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(cmd) {
		case "":
		case "upload":
			if rest == "" {
				fmt.Println("Usage: upload <file>")
				continue
			}
			uploadResume(ctx, svc, strings.Trim(rest, `"'`))
		case "query":
			if rest == "" {
				fmt.Println("Usage: query <question>")
				continue
			}
			askQuestion(ctx, svc, rest)
		case "exit":
			return
		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}
