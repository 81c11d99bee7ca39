package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Gobusters/ectologger"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
)

// Key identifies one page variant: which order section the item belongs to
// and how the selected price is provisioned and typed.
type Key struct {
	OrderItemType    models.OrderItemType
	PriceType        models.PriceType
	ProvisioningType models.ProvisioningType
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.OrderItemType, k.PriceType, strings.ToLower(string(k.ProvisioningType)))
}

// Provider loads page manifests from the filesystem by path convention
// ({orderItemType}/{priceType}/{provisioningType}/manifest.json) and caches
// the parsed result per key.
type Provider struct {
	baseDir string
	cache   sync.Map // map[string]*Manifest
	logger  ectologger.Logger
}

// NewProvider creates a provider rooted at baseDir.
func NewProvider(baseDir string, logger ectologger.Logger) *Provider {
	return &Provider{
		baseDir: baseDir,
		logger:  logger,
	}
}

// Get returns the manifest for the page variant. The first load parses and
// validates the file; later calls return the cached schema.
func (p *Provider) Get(key Key) (*Manifest, error) {
	if cached, ok := p.cache.Load(key.String()); ok {
		return cached.(*Manifest), nil
	}

	path := filepath.Join(p.baseDir, string(key.OrderItemType), string(key.PriceType),
		strings.ToLower(string(key.ProvisioningType)), "manifest.json")

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", key, err)
	}

	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("manifest %s is malformed: %w", key, err)
	}

	if err := validateManifest(&m); err != nil {
		return nil, fmt.Errorf("manifest %s is invalid: %w", key, err)
	}

	p.logger.WithField("manifest", key.String()).Debug("loaded page manifest")

	actual, _ := p.cache.LoadOrStore(key.String(), &m)
	return actual.(*Manifest), nil
}

func validateManifest(m *Manifest) error {
	if len(m.ErrorMessages) == 0 {
		return fmt.Errorf("errorMessages is empty")
	}

	seen := map[string]bool{}
	check := func(q *Question) error {
		if q.ID == "" {
			return fmt.Errorf("question without id")
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		switch q.Type {
		case QuestionText, QuestionRadio, QuestionDate:
		default:
			return fmt.Errorf("question %q has unknown type %q", q.ID, q.Type)
		}
		return nil
	}

	for i := range m.Questions {
		if err := check(&m.Questions[i]); err != nil {
			return err
		}
	}
	for _, t := range []*Table{m.AddPriceTable, m.SolutionTable} {
		if t == nil {
			continue
		}
		if len(t.CellInfo) != len(t.ColumnInfo) {
			return fmt.Errorf("table declares %d columns but %d cells", len(t.ColumnInfo), len(t.CellInfo))
		}
		for i := range t.CellInfo {
			cell := &t.CellInfo[i]
			if cell.Kind == CellQuestion {
				if cell.Question == nil {
					return fmt.Errorf("question cell without question")
				}
				if err := check(cell.Question); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
