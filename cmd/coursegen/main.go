// Command coursegen is the course research analysis CLI.
//
// It wires the file-backed adapters to the core pipeline service and
// hands control to the cobra command tree.
package main

import (
	"fmt"
	"os"

	"github.com/edukit-labs/coursegen-cli/internal/adapters/driven/config/file"
	"github.com/edukit-labs/coursegen-cli/internal/adapters/driven/outline/csvfile"
	"github.com/edukit-labs/coursegen-cli/internal/adapters/driven/research/jsonfile"
	"github.com/edukit-labs/coursegen-cli/internal/adapters/driven/storage/sqlite"
	"github.com/edukit-labs/coursegen-cli/internal/adapters/driving/cli"
	"github.com/edukit-labs/coursegen-cli/internal/core/services"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "coursegen:", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	taxonomy, err := file.LoadTaxonomy(config.GetString("taxonomy.path"))
	if err != nil {
		return fmt.Errorf("load taxonomy: %w", err)
	}

	prompts, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("open prompt store: %w", err)
	}
	defer prompts.Close()
	// Template edits made while the process runs are picked up on the
	// next assembly. A failed watch just means editing requires a restart.
	if err := prompts.Watch(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: prompt templates will not hot-reload: %v\n", err)
	}

	normalizer, err := services.NewNormalizer(taxonomy)
	if err != nil {
		return err
	}
	scorer, err := services.NewQualityScorer()
	if err != nil {
		return err
	}
	extractor, err := services.NewTerminologyExtractor(taxonomy)
	if err != nil {
		return err
	}

	var assemblerOpts []services.AssemblerOption
	if ceiling := config.GetInt("pipeline.token_ceiling"); ceiling > 0 {
		assemblerOpts = append(assemblerOpts, services.WithTokenCeiling(ceiling))
	}
	assembler, err := services.NewPromptAssembler(assemblerOpts...)
	if err != nil {
		return err
	}
	assembler.SetPromptStore(prompts)

	research := jsonfile.NewStore()
	outlines := csvfile.NewStore()

	// The report store is optional. A broken projects database should
	// not block the analysis commands, so we degrade to no persistence.
	var pipelineOpts []services.PipelineOption
	svcs := &cli.Services{Outlines: outlines}
	store, err := sqlite.NewStore(config.GetString("storage.data_dir"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: report store unavailable, projects will not be saved: %v\n", err)
	} else {
		defer store.Close()
		reports := store.ReportStore()
		pipelineOpts = append(pipelineOpts, services.WithReportStore(reports))
		svcs.Reports = reports
	}

	pipeline, err := services.NewPipeline(research, outlines, normalizer, scorer, extractor, assembler, pipelineOpts...)
	if err != nil {
		return err
	}
	svcs.Pipeline = pipeline

	cli.SetServices(svcs)
	return cli.Execute(version)
}
