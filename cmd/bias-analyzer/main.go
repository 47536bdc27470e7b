package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/pagelens/bias-filter/internal/core"
	"github.com/pagelens/bias-filter/internal/di"
	"github.com/pagelens/bias-filter/internal/filterdecide"
	"github.com/pagelens/bias-filter/internal/scoring"
)

func main() {
	flags := di.ParseFlags()

	// A config file selects the full, cache-backed wiring; plain flag
	// runs analyze once with no cache.
	var container *dig.Container
	var err error
	if flags.ConfigFile != "" {
		container, err = di.BuildContainer()
	} else {
		container, err = di.BuildCLIContainer(flags)
	}
	if err != nil {
		fmt.Printf("Failed to build container: %v\n", err)
		os.Exit(1)
	}

	err = container.Invoke(func(
		service *core.AnalysisService,
		userPrefs core.UserPreferences,
		logger *zap.Logger,
	) error {
		defer logger.Sync()
		return run(flags, service, userPrefs, logger)
	})
	if err != nil {
		fmt.Printf("Analysis failed: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *di.CLIFlags, service *core.AnalysisService, userPrefs core.UserPreferences, logger *zap.Logger) error {
	// Read page text from file or stdin
	var reader io.Reader
	if flags.InputFile != "" {
		file, err := os.Open(flags.InputFile)
		if err != nil {
			return fmt.Errorf("failed to open input file %s: %w", flags.InputFile, err)
		}
		defer file.Close()
		reader = file
		logger.Info("Reading page text from file", zap.String("file", flags.InputFile))
	} else {
		reader = os.Stdin
		logger.Info("Reading page text from stdin")
	}

	textBytes, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read page text: %w", err)
	}

	page := &core.PageContent{
		URL:  flags.URL,
		Text: string(textBytes),
	}
	if flags.AuthorID != "" {
		page.Author = &core.ExtractedAuthor{
			Platform:       flags.AuthorPlatform,
			Identifier:     flags.AuthorID,
			AccountAgeDays: flags.AccountAgeDays,
			Verified:       flags.Verified,
			FollowerCount:  flags.Followers,
		}
	}

	fmt.Printf("\n=== Page Summary ===\n")
	fmt.Printf("URL: %s\n", page.URL)
	fmt.Printf("Text length: %d bytes\n", len(page.Text))
	if page.Author != nil {
		fmt.Printf("Author: %s:%s\n", page.Author.Platform, page.Author.Identifier)
	}

	startTime := time.Now()
	result, err := service.AnalyzePage(context.Background(), page)
	if err != nil {
		return fmt.Errorf("failed to analyze page: %w", err)
	}
	duration := time.Since(startTime)

	fmt.Printf("\n=== Classification ===\n")
	for _, axis := range core.Axes() {
		low, high := scoring.AxisLabels(axis)
		fmt.Printf("%-10s %+4d  (%s / %s)\n", axis, result.AxisScore(axis), low, high)
	}
	fmt.Printf("Truth score: %d\n", result.TruthScore)
	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	fmt.Printf("Source tag: %s\n", result.SourceTag)
	if a := result.Author; a != nil {
		fmt.Printf("\n=== Author ===\n")
		fmt.Printf("Authenticity: %d\n", a.Authenticity)
		fmt.Printf("Coordination: %d\n", a.Coordination)
		fmt.Printf("Intent: %s (%.2f)\n", a.Intent.Primary, a.Intent.Confidence)
		fmt.Printf("Data quality: %s\n", a.DataQuality)
		for _, sig := range a.Signals {
			fmt.Printf("  signal: %-24s value=%.2f direction=%s\n", sig.Type, sig.Value, sig.Direction)
		}
	}

	// Apply preferences and decide
	action := filterdecide.Decide(result, userPrefs)

	fmt.Printf("\n=== Verdict ===\n")
	fmt.Printf("Action: %s\n", action.Action)
	if action.Reason != "" {
		fmt.Printf("Reason: %s\n", action.Reason)
	}
	fmt.Printf("Processing time: %v\n", duration)

	return nil
}
