package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pharma-papers/0.1"). Per prd001-retrieval R5.2.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the PubMed retrieval stage.
// Per prd001-retrieval R1.3, R5.1-R5.5.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the NCBI E-utilities endpoint. Overridable for tests.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Tool is the tool name sent with every request, per NCBI usage policy.
	Tool string `json:"tool" yaml:"tool"`

	// Email is the contact email sent with every request, required by NCBI
	// for heavy usage.
	Email string `json:"email" yaml:"email"`

	// APIKey is an optional NCBI API key. With a key NCBI allows 10 requests
	// per second instead of 3.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults caps the number of PMIDs returned by a search (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// BatchSize is the number of PMIDs fetched per efetch call (default 50).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// BatchDelay is the pause between consecutive efetch calls (default 500ms).
	BatchDelay time.Duration `json:"batch_delay" yaml:"batch_delay"`
}

// ClassifyConfig holds settings for the affiliation classification stage.
// Per prd003-classification R5.1.
type ClassifyConfig struct {
	// KeywordsFile is an optional YAML file overriding the built-in keyword
	// sets and company-suffix list.
	KeywordsFile string `json:"keywords_file,omitempty" yaml:"keywords_file,omitempty"`
}

// ReportConfig holds settings for the report output stage.
// Per prd004-reporting R1.1, R2.1.
type ReportConfig struct {
	// File is the output path. Empty means console output; a ".xlsx" extension
	// selects spreadsheet output, anything else CSV.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	PubMed   PubMedConfig   `json:"pubmed" yaml:"pubmed"`
	Classify ClassifyConfig `json:"classify" yaml:"classify"`
	Report   ReportConfig   `json:"report" yaml:"report"`
}
