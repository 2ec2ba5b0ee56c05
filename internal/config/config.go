package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the run manifest: where the raw source files live, where the
// generated documents go, and the fuzzy matcher's tuning. Values come from
// taxogen.yaml (or TAXOGEN_CONFIG) with TAXOGEN_* env overrides.
type Config struct {
	RawDir string `yaml:"raw_dir"`
	OutDir string `yaml:"out_dir"`

	// Raw source filenames, resolved against RawDir.
	HSSections    string `yaml:"hs_sections"`
	HSCodes       string `yaml:"hs_codes"`
	CPCStructure  string `yaml:"cpc_structure"`
	CNWorkbook    string `yaml:"cn_workbook"`
	HTSExport     string `yaml:"hts_export"`
	TariffExport  string `yaml:"tariff_export"`
	CensusImports string `yaml:"census_imports"`
	EPAFactors    string `yaml:"epa_factors"`

	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`
	FuzzyTopN      int     `yaml:"fuzzy_top_n"`
	FuzzyShards    int     `yaml:"fuzzy_shards"`
}

// Load reads the manifest and applies env overrides and defaults. A
// missing manifest file is not an error; defaults and env cover it.
func Load() (Config, error) {
	var cfg Config

	path := envOr("TAXOGEN_CONFIG", "taxogen.yaml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	envOverride(&cfg.RawDir, "TAXOGEN_RAW_DIR")
	envOverride(&cfg.OutDir, "TAXOGEN_OUT_DIR")
	envOverrideInt(&cfg.FuzzyTopN, "TAXOGEN_FUZZY_TOP_N")
	envOverrideInt(&cfg.FuzzyShards, "TAXOGEN_FUZZY_SHARDS")
	envOverrideFloat(&cfg.FuzzyThreshold, "TAXOGEN_FUZZY_THRESHOLD")

	if cfg.RawDir == "" {
		cfg.RawDir = "raw-data"
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "data"
	}
	if cfg.HSSections == "" {
		cfg.HSSections = "hs-sections.csv"
	}
	if cfg.HSCodes == "" {
		cfg.HSCodes = "hs-codes.csv"
	}
	if cfg.CPCStructure == "" {
		cfg.CPCStructure = "cpc-structure.txt"
	}
	if cfg.CNWorkbook == "" {
		cfg.CNWorkbook = "cn-2025.xlsx"
	}
	if cfg.HTSExport == "" {
		cfg.HTSExport = "hts-2026.json"
	}
	if cfg.TariffExport == "" {
		cfg.TariffExport = "ca-tariff.csv"
	}
	if cfg.CensusImports == "" {
		cfg.CensusImports = "imp-code.txt"
	}
	if cfg.EPAFactors == "" {
		cfg.EPAFactors = "supply-chain-factors.csv"
	}
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = 0.3
	}
	if cfg.FuzzyTopN <= 0 {
		cfg.FuzzyTopN = 3
	}
	if cfg.FuzzyShards <= 0 {
		cfg.FuzzyShards = 4
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
