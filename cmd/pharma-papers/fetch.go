package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Shreyasr1/pharma-papers/internal/classify"
	"github.com/Shreyasr1/pharma-papers/internal/extract"
	"github.com/Shreyasr1/pharma-papers/internal/observability"
	"github.com/Shreyasr1/pharma-papers/internal/pubmed"
	"github.com/Shreyasr1/pharma-papers/internal/report"
	"github.com/Shreyasr1/pharma-papers/pkg/types"
)

// runFetch drives the pipeline: search, fetch, extract, classify, report.
func runFetch(cmd *cobra.Command, args []string) error {
	query := args[0]
	debug, _ := cmd.Flags().GetBool("debug")
	outFile, _ := cmd.Flags().GetString("file")

	log := observability.NewLogger(os.Stderr, debug)
	cfg := pipelineConfig(cmd)

	keywords := classify.Default()
	if cfg.Classify.KeywordsFile != "" {
		ks, err := classify.LoadKeywords(cfg.Classify.KeywordsFile)
		if err != nil {
			return err
		}
		keywords = ks
	}

	log.Info().Str("query", query).Int("max_results", cfg.PubMed.MaxResults).Msg("searching for papers")

	client := pubmed.New(cfg.PubMed, log)
	ctx := cmd.Context()

	pmids, err := client.Search(ctx, query, cfg.PubMed.MaxResults)
	if err != nil {
		return err
	}
	if len(pmids) == 0 {
		log.Warn().Msg("no papers found matching the query")
		fmt.Fprintln(os.Stdout, "No papers found matching the query.")
		return nil
	}

	docs, err := client.FetchDetails(ctx, pmids)
	if err != nil {
		return err
	}

	var papers []types.PaperRecord
	for _, doc := range docs {
		records, diags := extract.ExtractBatch(doc)
		for _, d := range diags {
			if errors.Is(d.Err, types.ErrStructuralParse) {
				log.Warn().Err(d.Err).Msg("batch document not well-formed, skipping batch")
				continue
			}
			log.Warn().Str("pmid", d.PMID).Err(d.Err).Msg("skipping article")
		}
		papers = append(papers, records...)
	}
	log.Info().Int("parsed", len(papers)).Msg("parsed article records")

	classified := classify.Classify(papers, keywords)
	log.Info().Int("matched", len(classified)).Msg("papers with pharma/biotech affiliations")

	if outFile != "" {
		if err := report.Save(outFile, classified); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Results saved to %s\n", outFile)
		return nil
	}

	report.PrintResults(os.Stdout, classified)
	return nil
}

// pipelineConfig assembles the stage configuration from the config file,
// environment, flags, and loaded secrets. Flags win over the config file;
// secrets only fill values nothing else provided.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	maxResults, _ := cmd.Flags().GetInt("max")
	keywordsFile, _ := cmd.Flags().GetString("keywords")
	outFile, _ := cmd.Flags().GetString("file")

	if keywordsFile == "" {
		keywordsFile = viper.GetString("classify.keywords_file")
	}

	cfg := types.PipelineConfig{
		PubMed: types.PubMedConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("pubmed.timeout"),
				UserAgent: viper.GetString("pubmed.user_agent"),
			},
			BaseURL:    viper.GetString("pubmed.base_url"),
			Tool:       viper.GetString("pubmed.tool"),
			Email:      secretDefault("ncbi-email", viper.GetString("pubmed.email")),
			APIKey:     secretDefault("ncbi-api-key", viper.GetString("pubmed.api_key")),
			MaxResults: maxResults,
			BatchSize:  viper.GetInt("pubmed.batch_size"),
			BatchDelay: viper.GetDuration("pubmed.batch_delay"),
		},
		Classify: types.ClassifyConfig{
			KeywordsFile: keywordsFile,
		},
		Report: types.ReportConfig{
			File: outFile,
		},
	}
	return cfg
}
