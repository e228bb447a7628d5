package inventory

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/abdoulbah/stockpile/internal/domain/models"
)

// DefaultLowStockThreshold is the quantity below which an item is flagged
// when the caller does not pick a threshold.
const DefaultLowStockThreshold = 5

// ErrNotFound is returned by Quantity when the item has no stock entry.
var ErrNotFound = errors.New("item not found in inventory")

// Repository abstracts how a stock map is persisted.
type Repository interface {
	Load(path string) (models.Stock, error)
	Save(path string, stock models.Stock) error
}

// Store owns the in-memory stock map and every operation over it. It is
// meant for a single logical caller; wrap it externally if concurrent use
// ever becomes a requirement.
type Store struct {
	stock  models.Stock
	repo   Repository
	out    io.Writer
	now    func() time.Time
	logger *zap.Logger
}

// NewStore wires a store starting from an empty stock map.
func NewStore(repo Repository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		stock:  models.Stock{},
		repo:   repo,
		out:    os.Stdout,
		now:    time.Now,
		logger: logger,
	}
}

// SetOutput redirects report lines and remove notices, which otherwise go
// to stdout.
func (s *Store) SetOutput(w io.Writer) {
	s.out = w
}

// Add increases the stored quantity of item by qty. An empty item name is
// ignored. A negative qty effectively decrements. When journal is non-nil a
// timestamped line describing the addition is appended to it.
func (s *Store) Add(item string, qty int, journal *models.Journal) {
	if item == "" {
		s.logger.Debug("skipping add with empty item name")
		return
	}

	s.stock[item] += qty
	if journal != nil {
		journal.Append(fmt.Sprintf("%s: Added %d of %s", s.now().Format(time.RFC3339), qty, item))
	}

	s.logger.Debug("stock added", zap.String("item", item), zap.Int("qty", qty))
}

// Remove decreases the stored quantity of item by qty. A missing item is
// reported with a notice on the output stream and leaves the stock
// untouched. When the remaining quantity drops to zero or below the entry
// is deleted outright, so a quantity is never left negative.
func (s *Store) Remove(item string, qty int) {
	current, ok := s.stock[item]
	if !ok {
		fmt.Fprintf(s.out, "Error: %s not found in inventory.\n", item)
		s.logger.Warn("remove on missing item", zap.String("item", item))
		return
	}

	current -= qty
	if current <= 0 {
		delete(s.stock, item)
		s.logger.Debug("stock depleted", zap.String("item", item))
		return
	}

	s.stock[item] = current
	s.logger.Debug("stock removed", zap.String("item", item), zap.Int("qty", qty))
}

// Quantity returns the current quantity of item, or an error wrapping
// ErrNotFound when the item has no entry.
func (s *Store) Quantity(item string) (int, error) {
	qty, ok := s.stock[item]
	if !ok {
		return 0, fmt.Errorf("%s: %w", item, ErrNotFound)
	}
	return qty, nil
}

// Load replaces the whole stock map with the contents persisted at path.
// Existing entries are discarded, never merged.
func (s *Store) Load(path string) error {
	stock, err := s.repo.Load(path)
	if err != nil {
		return err
	}

	s.stock = stock
	s.logger.Info("inventory loaded", zap.String("path", path), zap.Int("items", len(stock)))
	return nil
}

// Save persists the whole stock map to path, overwriting whatever is there.
func (s *Store) Save(path string) error {
	if err := s.repo.Save(path, s.stock); err != nil {
		return err
	}

	s.logger.Info("inventory saved", zap.String("path", path), zap.Int("items", len(s.stock)))
	return nil
}

// Report writes one "<name> -> <quantity>" line per item to the output
// stream, sorted by name so the output is stable.
func (s *Store) Report() {
	fmt.Fprintln(s.out, "Items Report")
	for _, name := range s.sortedNames() {
		fmt.Fprintf(s.out, "%s -> %d\n", name, s.stock[name])
	}
}

// LowStock returns the names of items whose quantity is strictly below
// threshold, sorted by name. The stock map is not modified.
func (s *Store) LowStock(threshold int) []string {
	low := make([]string, 0)
	for name, qty := range s.stock {
		if qty < threshold {
			low = append(low, name)
		}
	}
	sort.Strings(low)
	return low
}

// Items returns an independent copy of the current stock map.
func (s *Store) Items() models.Stock {
	return s.stock.Clone()
}

func (s *Store) sortedNames() []string {
	names := make([]string, 0, len(s.stock))
	for name := range s.stock {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
