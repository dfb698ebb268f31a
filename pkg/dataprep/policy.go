package dataprep

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Imputation strategies selectable per policy.
const (
	StrategyMean     = "mean"
	StrategyMedian   = "median"
	StrategyMode     = "mode"
	StrategyConstant = "constant"
	StrategyDrop     = "drop"
)

// Policy documents how cleaning treats missing values. Rows missing a
// required field are always dropped; the policy only governs the
// remaining optional fields.
type Policy struct {
	// NumericStrategy fills missing numeric spec fields:
	// mean, median, mode, constant, or drop (drop the row).
	NumericStrategy string  `yaml:"numeric_strategy"`
	NumericConstant float64 `yaml:"numeric_constant"`

	// CategoricalStrategy fills missing categorical fields:
	// mode, constant, or drop.
	CategoricalStrategy string `yaml:"categorical_strategy"`
	CategoricalConstant string `yaml:"categorical_constant"`

	// MaxMissingRatio drops an optional column entirely when more than
	// this fraction of its values is missing. 1 keeps every column.
	MaxMissingRatio float64 `yaml:"max_missing_ratio"`

	// ClipLower/ClipUpper clip numeric columns to this percentile band
	// after imputation. The default band [0, 100] and the zero band
	// both disable clipping.
	ClipLower float64 `yaml:"clip_lower"`
	ClipUpper float64 `yaml:"clip_upper"`
}

// DefaultPolicy is the documented default: median for numeric fields
// (robust to the skewed spec distributions in the scraped data),
// a constant "Unknown" for categorical fields, no column dropping,
// no clipping.
func DefaultPolicy() Policy {
	return Policy{
		NumericStrategy:     StrategyMedian,
		CategoricalStrategy: StrategyConstant,
		CategoricalConstant: "Unknown",
		MaxMissingRatio:     1,
		ClipLower:           0,
		ClipUpper:           100,
	}
}

// LoadPolicy reads a Policy from a YAML file. Omitted fields keep their
// defaults.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("dataprep: parsing policy %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("dataprep: policy %s: %w", path, err)
	}
	return p, nil
}

// Validate rejects unknown strategies and inverted clip bands.
func (p Policy) Validate() error {
	switch p.NumericStrategy {
	case StrategyMean, StrategyMedian, StrategyMode, StrategyConstant, StrategyDrop:
	default:
		return fmt.Errorf("unknown numeric strategy %q", p.NumericStrategy)
	}
	switch p.CategoricalStrategy {
	case StrategyMode, StrategyConstant, StrategyDrop:
	default:
		return fmt.Errorf("unknown categorical strategy %q", p.CategoricalStrategy)
	}
	if p.ClipLower < 0 || p.ClipUpper > 100 || p.ClipLower > p.ClipUpper {
		return fmt.Errorf("invalid clip band [%v, %v]", p.ClipLower, p.ClipUpper)
	}
	if p.MaxMissingRatio < 0 || p.MaxMissingRatio > 1 {
		return fmt.Errorf("max_missing_ratio %v outside [0, 1]", p.MaxMissingRatio)
	}
	return nil
}

func (p Policy) clipEnabled() bool {
	if p.ClipUpper <= 0 {
		return false // zero-value band, not a request to clip everything
	}
	return p.ClipLower > 0 || p.ClipUpper < 100
}
