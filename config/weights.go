package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gacha-backend/gacha"
)

type weightsFile struct {
	Weights map[int]float64 `yaml:"weights"`
}

// LoadWeights reads a rarity weight table from YAML. An empty path yields
// gacha.DefaultWeights.
//
//	weights:
//	  1: 40
//	  2: 30
func LoadWeights(path string) (gacha.WeightTable, error) {
	if path == "" {
		return gacha.DefaultWeights(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights file: %w", err)
	}

	var f weightsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse weights file %s: %w", path, err)
	}

	weights := gacha.WeightTable(f.Weights)
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("weights file %s: %w", path, err)
	}
	return weights, nil
}
