// pkg/config/tools.go
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/Korupama/euit-datatools/pkg/model"
)

// Defaults for the score expansion of the sample study results.
const (
	DefaultExpandSource = "scripts/database/other_data/ket_qua_hoc_tap_mau.csv"
	DefaultExpandOutput = "scripts/database/other_data/ket_qua_hoc_tap_mau_expanded.csv"
	DefaultIDStart      = 23520542
	DefaultIDEnd        = 23520589
	DefaultSeed         = 12345
	DefaultScoreMin     = 5.0
	DefaultScoreMax     = 10.0
	DefaultScoreStep    = 0.5
)

// Defaults for the regulations SQL generator.
const (
	DefaultDocumentsDir = "src/backend/StaticContent/documents"
	DefaultExtension    = ".pdf"
	DefaultTable        = "van_ban"
)

// ExpandConfig holds the parameters of the study result expansion
type ExpandConfig struct {
	SourcePath string
	OutputPath string
	Delimiter  rune

	IDs  model.IDRange
	Seed int64

	// Sampled scores are uniform in [ScoreMin, ScoreMax], snapped to ScoreStep
	ScoreMin  float64
	ScoreMax  float64
	ScoreStep float64
}

// RegulationsConfig holds the parameters of the regulations SQL generator
type RegulationsConfig struct {
	DocumentsDir string
	Extension    string
	Table        string
	NameColumn   string
	URLColumn    string
	DateColumn   string
}

// LoadExpandConfig loads expansion settings from environment variables
func LoadExpandConfig() (*ExpandConfig, error) {
	delimiter, err := parseDelimiter(getEnv("EXPAND_DELIMITER", ","))
	if err != nil {
		return nil, err
	}

	return &ExpandConfig{
		SourcePath: getEnv("EXPAND_SOURCE", DefaultExpandSource),
		OutputPath: getEnv("EXPAND_OUTPUT", DefaultExpandOutput),
		Delimiter:  delimiter,
		IDs: model.IDRange{
			Start: getEnvAsInt("EXPAND_ID_START", DefaultIDStart),
			End:   getEnvAsInt("EXPAND_ID_END", DefaultIDEnd),
		},
		Seed:      getEnvAsInt64("EXPAND_SEED", DefaultSeed),
		ScoreMin:  getEnvAsFloat("EXPAND_SCORE_MIN", DefaultScoreMin),
		ScoreMax:  getEnvAsFloat("EXPAND_SCORE_MAX", DefaultScoreMax),
		ScoreStep: getEnvAsFloat("EXPAND_SCORE_STEP", DefaultScoreStep),
	}, nil
}

// DefaultExpandConfig returns the expansion settings without consulting the environment
func DefaultExpandConfig() *ExpandConfig {
	return &ExpandConfig{
		SourcePath: DefaultExpandSource,
		OutputPath: DefaultExpandOutput,
		Delimiter:  ',',
		IDs:        model.IDRange{Start: DefaultIDStart, End: DefaultIDEnd},
		Seed:       DefaultSeed,
		ScoreMin:   DefaultScoreMin,
		ScoreMax:   DefaultScoreMax,
		ScoreStep:  DefaultScoreStep,
	}
}

// Validate checks the expansion settings
func (c *ExpandConfig) Validate() error {
	if c.SourcePath == "" {
		return errors.New("expand source path is required")
	}
	if c.OutputPath == "" {
		return errors.New("expand output path is required")
	}
	if c.IDs.Len() == 0 {
		return fmt.Errorf("identifier range %d..%d is empty", c.IDs.Start, c.IDs.End)
	}
	if c.ScoreStep <= 0 {
		return errors.New("score step must be positive")
	}
	if c.ScoreMin > c.ScoreMax {
		return fmt.Errorf("score range %.2f..%.2f is inverted", c.ScoreMin, c.ScoreMax)
	}
	if c.Delimiter == '"' || c.Delimiter == '\r' || c.Delimiter == '\n' {
		return fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}
	return nil
}

// LoadRegulationsConfig loads generator settings from environment variables
func LoadRegulationsConfig() *RegulationsConfig {
	return &RegulationsConfig{
		DocumentsDir: getEnv("REGULATIONS_DOCUMENTS_DIR", DefaultDocumentsDir),
		Extension:    getEnv("REGULATIONS_EXTENSION", DefaultExtension),
		Table:        getEnv("REGULATIONS_TABLE", DefaultTable),
		NameColumn:   getEnv("REGULATIONS_NAME_COLUMN", "ten_van_ban"),
		URLColumn:    getEnv("REGULATIONS_URL_COLUMN", "url_van_ban"),
		DateColumn:   getEnv("REGULATIONS_DATE_COLUMN", "ngay_ban_hanh"),
	}
}

// DefaultRegulationsConfig returns the generator settings without consulting the environment
func DefaultRegulationsConfig() *RegulationsConfig {
	return &RegulationsConfig{
		DocumentsDir: DefaultDocumentsDir,
		Extension:    DefaultExtension,
		Table:        DefaultTable,
		NameColumn:   "ten_van_ban",
		URLColumn:    "url_van_ban",
		DateColumn:   "ngay_ban_hanh",
	}
}

// Validate checks the generator settings
func (c *RegulationsConfig) Validate() error {
	if c.DocumentsDir == "" {
		return errors.New("documents directory is required")
	}
	if c.Extension == "" {
		return errors.New("document extension is required")
	}
	if c.Table == "" || c.NameColumn == "" || c.URLColumn == "" || c.DateColumn == "" {
		return errors.New("table and column names are required")
	}
	return nil
}

func parseDelimiter(s string) (rune, error) {
	if s == `\t` || s == "tab" {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}
