package scoring

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/align"
)

// Scheme kinds accepted by Config.Type.
const (
	TypeBasic  = "basic"
	TypeMatrix = "matrix"
)

// BuiltinBLOSUM62 is the Config.Matrix value selecting the embedded matrix.
const BuiltinBLOSUM62 = "blosum62"

// MaxConfigSize bounds the size of a scoring configuration file (64KB).
const MaxConfigSize = 64 * 1024

// Config describes a byte scoring scheme in YAML:
//
//	type: basic          # basic | matrix
//	match: 1             # basic only
//	mismatch: -1         # basic only
//	gap: -1              # basic only
//	matrix: blosum62     # matrix only: "blosum62" or a file path
//	case_sensitive: false
type Config struct {
	Type          string `yaml:"type" validate:"required,oneof=basic matrix"`
	Match         int    `yaml:"match"`
	Mismatch      int    `yaml:"mismatch"`
	Gap           int    `yaml:"gap"`
	Matrix        string `yaml:"matrix" validate:"required_if=Type matrix"`
	CaseSensitive bool   `yaml:"case_sensitive"`
}

// DefaultConfig returns a basic +1/-1/-1 case-insensitive scheme.
func DefaultConfig() Config {
	return Config{Type: TypeBasic, Match: 1, Mismatch: -1, Gap: -1}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints; failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ReadConfigFile returns the contents of the file at path, refusing files
// larger than MaxConfigSize.
func ReadConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxConfigSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrInvalidConfig, path, info.Size(), MaxConfigSize)
	}

	return os.ReadFile(path)
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := ReadConfigFile(path)
	if err != nil {
		return Config{}, err
	}

	return ParseConfig(data)
}

// Build validates c and constructs the scheme it describes.
func (c Config) Build() (align.ScoringScheme[byte], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	switch c.Type {
	case TypeMatrix:
		var (
			m   *Matrix
			err error
		)
		if strings.EqualFold(c.Matrix, BuiltinBLOSUM62) {
			m, err = BLOSUM62(c.CaseSensitive)
		} else {
			m, err = LoadMatrix(c.Matrix, c.CaseSensitive)
		}
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		s := NewBasic[byte](c.Match, c.Mismatch, c.Gap)
		if !c.CaseSensitive {
			s.Equal = FoldASCII
		}
		return s, nil
	}
}
