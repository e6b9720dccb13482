package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"ingles-autodidata/internal/application/usecases"
	"ingles-autodidata/internal/config"
	"ingles-autodidata/internal/domain/user"
	"ingles-autodidata/internal/domain/vocabulary"
	"ingles-autodidata/internal/infrastructure/excel"
	"ingles-autodidata/internal/infrastructure/filesystem"
	"ingles-autodidata/internal/infrastructure/persistence"
	"ingles-autodidata/internal/infrastructure/terminal"
	"ingles-autodidata/internal/interfaces/cli"
	"ingles-autodidata/internal/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Println("Usage of ingles-autodidata:")
		fmt.Print(config.Usage())
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ An error occurred: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ An error occurred: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Ctrl+C cancels pending reads; the menu loop then says goodbye and returns.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("application error", zap.Error(err))
		fmt.Printf("\n❌ An error occurred: %v\n", err)
		fmt.Println("Please restart the application.")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// Load content bundles, falling back to the built-in ones
	vocabularyLoader := filesystem.NewVocabularyLoader(log)
	words, err := vocabularyLoader.Load(cfg.Files.Vocabulary)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	grammarLoader := filesystem.NewGrammarLoader(log)
	exercises, err := grammarLoader.Load(cfg.Files.Grammar)
	if err != nil {
		return fmt.Errorf("failed to load grammar: %w", err)
	}

	scripts, err := filesystem.NewConversationLoader(log).Load(cfg.Files.Conversation)
	if err != nil {
		return fmt.Errorf("failed to load conversations: %w", err)
	}

	// Initialize repositories
	vocabularyRepo := persistence.NewVocabularyRepository(words, cfg.Files.Vocabulary, vocabularyLoader)
	grammarRepo := persistence.NewGrammarRepository(exercises, cfg.Files.Grammar, grammarLoader)
	conversationRepo := persistence.NewConversationRepository(scripts)

	if cfg.Import != "" {
		return importVocabulary(ctx, cfg.Import, vocabularyRepo, log)
	}

	store, err := persistence.NewUserStore(cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	profiles, err := user.OpenDirectory(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	// Initialize use cases
	clock := time.Now
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	userUseCase := usecases.NewUserUseCase(profiles, clock, log)
	progressUseCase := usecases.NewProgressUseCase(profiles, clock, log)
	sessionUseCase := usecases.NewSessionUseCase(
		vocabularyRepo,
		grammarRepo,
		conversationRepo,
		progressUseCase,
		usecases.SessionSizes{
			Vocabulary: cfg.Session.VocabularySize,
			Grammar:    cfg.Session.GrammarSize,
		},
		rng,
		clock,
		log,
	)

	log.Info("starting",
		zap.String("storage", cfg.Storage.Driver),
		zap.Int("profiles", profiles.Len()),
	)

	app := cli.NewApp(terminal.NewStdConsole(cfg.UI.Color), userUseCase, progressUseCase, sessionUseCase, cfg.ExportDir, log)
	return app.Run(ctx)
}

// importVocabulary adds the words of a spreadsheet to the vocabulary bundle and reports the outcome
func importVocabulary(ctx context.Context, path string, repo vocabulary.Repository, log *zap.Logger) error {
	result, err := excel.ImportWords(ctx, excel.DefaultImportConfig(path), repo)
	if err != nil {
		return fmt.Errorf("failed to import vocabulary: %w", err)
	}

	log.Info("vocabulary imported",
		zap.String("file", path),
		zap.Int("processed", result.TotalProcessed),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)

	fmt.Printf("📥 Processed %d rows: %d words added, %d skipped\n", result.TotalProcessed, result.Created, result.Skipped)
	for _, msg := range result.Errors {
		fmt.Printf("   ⚠️  %s\n", msg)
	}
	return nil
}
