package rarity

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

// TierConfig describes one rarity tier: its relative draw weight, the number
// of distinct assets in its pool, and the URL prefix its assets live under.
// Asset indexes run [1, PoolSize].
type TierConfig struct {
	Weight    float64 `json:"weight"`
	PoolSize  int     `json:"pool_size"`
	AssetPath string  `json:"asset_path"`
}

// Table is the immutable rarity configuration, loaded once at process start.
type Table struct {
	tiers map[domain.Tier]TierConfig
	total float64
}

// Load reads and validates a tier table from a JSON file.
// Validation is strict: the process should refuse to start on a bad table
// rather than fail at request time.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rarity table file: %w", err)
	}

	var raw map[domain.Tier]TierConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse rarity table: %w", err)
	}

	return New(raw)
}

// New builds a Table from an explicit tier map, validating it.
func New(tiers map[domain.Tier]TierConfig) (*Table, error) {
	if err := validate(tiers); err != nil {
		return nil, err
	}

	total := 0.0
	for _, cfg := range tiers {
		total += cfg.Weight
	}

	copied := make(map[domain.Tier]TierConfig, len(tiers))
	for t, cfg := range tiers {
		copied[t] = cfg
	}

	return &Table{tiers: copied, total: total}, nil
}

func validate(tiers map[domain.Tier]TierConfig) error {
	for _, tier := range domain.TiersByRarity {
		cfg, ok := tiers[tier]
		if !ok {
			return fmt.Errorf("rarity table missing tier %q", tier)
		}
		if math.IsNaN(cfg.Weight) || math.IsInf(cfg.Weight, 0) || cfg.Weight < 0 {
			return fmt.Errorf("tier %q has invalid weight %v", tier, cfg.Weight)
		}
		if cfg.PoolSize <= 0 {
			return fmt.Errorf("tier %q has invalid pool size %d", tier, cfg.PoolSize)
		}
		if cfg.AssetPath == "" {
			return fmt.Errorf("tier %q has empty asset path", tier)
		}
	}
	for tier := range tiers {
		if !domain.IsValidTier(tier) {
			return fmt.Errorf("unknown tier %q in rarity table", tier)
		}
	}

	anyPositive := false
	for _, cfg := range tiers {
		if cfg.Weight > 0 {
			anyPositive = true
			break
		}
	}
	if !anyPositive {
		return fmt.Errorf("rarity table has no tier with positive weight")
	}

	return nil
}

// Get returns the configuration for a tier.
func (t *Table) Get(tier domain.Tier) TierConfig {
	return t.tiers[tier]
}

// TotalWeight returns the sum of all tier weights (the sample space).
func (t *Table) TotalWeight() float64 {
	return t.total
}

// AssetPath builds the asset path for a (tier, index) pair,
// e.g. "/covert/pic7.png".
func (t *Table) AssetPath(tier domain.Tier, index int) string {
	return fmt.Sprintf("%s%d.png", t.tiers[tier].AssetPath, index)
}
