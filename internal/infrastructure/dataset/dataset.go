package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/domain/entities"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/validator"
)

//go:embed data/*.json
var files embed.FS

const (
	platformsFile           = "data/platforms.json"
	competitiveInsightsFile = "data/competitive_insights.json"
	timelineFile            = "data/timeline.json"
	clusteringFile          = "data/clustering_results.json"
)

// Dataset is the static sentiment data bundled with the binary
type Dataset struct {
	Platforms           []entities.PlatformData
	CompetitiveInsights []entities.CompetitiveInsight
	Timeline            []entities.TimelineEvent
}

var (
	loadOnce sync.Once
	loaded   *Dataset
	loadErr  error
)

// Load decodes and validates the bundled dataset. It runs once per process;
// later calls return the same value.
func Load() (*Dataset, error) {
	loadOnce.Do(func() {
		loaded, loadErr = decode(validator.New())
	})
	return loaded, loadErr
}

// ClusteringDocument returns the bundled sample clustering document
func ClusteringDocument() ([]byte, error) {
	return files.ReadFile(clusteringFile)
}

func decode(v *validator.CustomValidator) (*Dataset, error) {
	d := &Dataset{}
	if err := decodeFile(platformsFile, &d.Platforms); err != nil {
		return nil, err
	}
	if err := decodeFile(competitiveInsightsFile, &d.CompetitiveInsights); err != nil {
		return nil, err
	}
	if err := decodeFile(timelineFile, &d.Timeline); err != nil {
		return nil, err
	}
	if err := Validate(v, d); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeFile(name string, dst interface{}) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// Validate checks field constraints plus the cross-record rules the
// validator tags cannot express.
func Validate(v *validator.CustomValidator, d *Dataset) error {
	if err := validator.ValidateSlice(v, d.Platforms); err != nil {
		return fmt.Errorf("invalid platform data: %w", err)
	}
	if err := validator.ValidateSlice(v, d.CompetitiveInsights); err != nil {
		return fmt.Errorf("invalid competitive insight: %w", err)
	}
	if err := validator.ValidateSlice(v, d.Timeline); err != nil {
		return fmt.Errorf("invalid timeline event: %w", err)
	}

	seenPlatforms := make(map[entities.Platform]bool, len(d.Platforms))
	seenTopics := make(map[string]bool)
	for _, p := range d.Platforms {
		if seenPlatforms[p.Platform] {
			return fmt.Errorf("duplicate platform %q", p.Platform)
		}
		seenPlatforms[p.Platform] = true
		for _, t := range p.Topics {
			if seenTopics[t.ID] {
				return fmt.Errorf("duplicate topic id %q", t.ID)
			}
			seenTopics[t.ID] = true
		}
	}
	for _, p := range entities.Platforms {
		if !seenPlatforms[p] {
			return fmt.Errorf("missing platform %q", p)
		}
	}
	return nil
}
