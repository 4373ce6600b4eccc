package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"hitsum/internal/chunker"
	"hitsum/internal/config"
	"hitsum/internal/domain"
	"hitsum/internal/logging"
	"hitsum/internal/report"
	"hitsum/internal/service"
	"hitsum/internal/source"
	"hitsum/internal/summarizer"
	"hitsum/internal/tokenizer"
	"hitsum/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath string
		format  string
		useTUI  bool
		merge   bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ./hitsum.yaml or ~/.config/hitsum/config.yaml if not provided)")
	flag.StringVar(&format, "format", "", "Report format: text, json or yaml (overrides output.format)")
	flag.BoolVar(&useTUI, "tui", false, "Browse the reports in an interactive terminal UI")
	flag.BoolVar(&merge, "merge", false, "Rank all documents as a single batch")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: hitsum [--config=path] [--format=text|json|yaml] [--tui] [--merge] file1.txt [s3://bucket/prefix/ ...] [-]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if format != "" {
		cfg.Output.Format = format
	}
	if merge {
		cfg.Service.Merge = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	if err := run(ctx, cfg, inputs, useTUI); err != nil {
		logger.Error("hitsum failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.AppConfig, inputs []string, useTUI bool) error {
	tok := tokenizer.New(tokenizer.Options{
		Lowercase: cfg.Tokenizer.Lowercase,
		Stopwords: cfg.Tokenizer.Stopwords,
		MinLength: cfg.Tokenizer.MinLength,
	})

	var ch domain.Chunker
	switch cfg.Chunker.Type {
	case "sentence", "":
		ch = chunker.NewSentenceChunker(cfg.Chunker.SentencesPerChunk, cfg.Chunker.OverlapSentences, tok)
	default:
		return fmt.Errorf("unknown chunker: %s", cfg.Chunker.Type)
	}

	var sum domain.Summarizer
	var err error
	switch cfg.Summarizer.Type {
	case "hits", "":
		sum, err = summarizer.NewHITSSummarizer(cfg.Ranking())
	case "frequency":
		sum, err = summarizer.NewFrequencySummarizer(cfg.Summarizer.TopSentences, cfg.Summarizer.TopTokens)
	default:
		return fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}
	if err != nil {
		return fmt.Errorf("summarizer init failed: %w", err)
	}

	var opts []source.Option
	if s3 := cfg.Source.S3; s3 != nil {
		store, err := source.NewMinioStore(source.S3Options{
			Endpoint:     s3.Endpoint,
			Region:       s3.Region,
			AccessKeyEnv: s3.AccessKeyEnv,
			SecretKeyEnv: s3.SecretKeyEnv,
			Secure:       s3.Secure,
		})
		if err != nil {
			return err
		}
		opts = append(opts, source.WithObjectStore(store))
	}
	src := source.New(opts...)

	svc := service.NewSummaryService(src, ch, sum, service.Options{
		Workers: cfg.Service.Workers,
		Merge:   cfg.Service.Merge,
	})
	reports, err := svc.SummarizeDocuments(ctx, inputs)
	if err != nil {
		return err
	}

	if useTUI {
		_, err := tea.NewProgram(tui.New(reports), tea.WithAltScreen()).Run()
		return err
	}
	return report.Write(os.Stdout, cfg.Output.Format, reports)
}
