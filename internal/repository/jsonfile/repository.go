package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/abdoulbah/stockpile/internal/domain/models"
)

// DefaultPath is used when the caller supplies no file path.
const DefaultPath = "inventory.json"

// Repository persists a stock map as a single flat JSON object on disk.
type Repository struct {
	logger *zap.Logger
}

// New creates a JSON file repository.
func New(logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{logger: logger}
}

// Load reads and decodes the stock map stored at path. The file handle is
// released on every exit path, including a decode failure mid-stream.
func (r *Repository) Load(path string) (models.Stock, error) {
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory file %s: %w", path, err)
	}
	defer f.Close()

	var stock models.Stock
	if err := json.NewDecoder(f).Decode(&stock); err != nil {
		return nil, fmt.Errorf("parse inventory file %s: %w", path, err)
	}
	if stock == nil {
		// A file holding JSON null decodes without error.
		stock = models.Stock{}
	}

	r.logger.Debug("inventory file read", zap.String("path", path), zap.Int("items", len(stock)))
	return stock, nil
}

// Save encodes the stock map as a JSON object at path, truncating any
// existing file.
func (r *Repository) Save(path string, stock models.Stock) error {
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create inventory file %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(stock); err != nil {
		return fmt.Errorf("encode inventory file %s: %w", path, err)
	}

	r.logger.Debug("inventory file written", zap.String("path", path), zap.Int("items", len(stock)))
	return nil
}
