package check

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/jsonc"
)

// fileConfig is the shape of a checker configuration file.
type fileConfig struct {
	Strict   *bool             `json:"strict,omitempty"`
	SkipList string            `json:"skiplist,omitempty"`
	Severity map[string]string `json:"severity,omitempty"`
}

// ApplyConfigFile applies a JSON configuration file. Comments and
// trailing commas are tolerated, so the file can be annotated:
//
//	{
//	    // tolerate ancient tags
//	    "severity": {
//	        "missingTaggerEntry": "ignore",
//	    },
//	    "strict": true,
//	    "skiplist": ".git/fsck-skip",
//	}
//
// Severity keys follow the same folding as [Checker.SetSeverity]. The
// skip-list path is resolved relative to the working directory, not the
// config file.
func (c *Checker) ApplyConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("check: config %s: %w", path, err)
	}

	var cfg fileConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return fmt.Errorf("check: config %s: %w", path, err)
	}

	if cfg.Strict != nil {
		c.strict = *cfg.Strict
	}
	if cfg.SkipList != "" {
		if err := c.LoadSkipList(cfg.SkipList); err != nil {
			return err
		}
	}

	// Deterministic application order so the first bad entry reported is
	// stable.
	keys := make([]string, 0, len(cfg.Severity))
	for key := range cfg.Severity {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := c.SetSeverity(key, cfg.Severity[key]); err != nil {
			return fmt.Errorf("check: config %s: %w", path, err)
		}
	}
	return nil
}
