package inventory

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoulbah/stockpile/internal/domain/models"
	"github.com/abdoulbah/stockpile/internal/repository/jsonfile"
)

func newTestStore(t *testing.T) (*Store, *bytes.Buffer) {
	t.Helper()

	s := NewStore(jsonfile.New(nil), nil)
	out := &bytes.Buffer{}
	s.SetOutput(out)
	return s, out
}

func TestAddAccumulates(t *testing.T) {
	s, _ := newTestStore(t)

	s.Add("apple", 10, nil)
	s.Add("apple", 7, nil)

	qty, err := s.Quantity("apple")
	require.NoError(t, err)
	assert.Equal(t, 17, qty)
}

func TestAddNegativeQtyDecrements(t *testing.T) {
	s, _ := newTestStore(t)

	s.Add("banana", 5, nil)
	s.Add("banana", -2, nil)

	qty, err := s.Quantity("banana")
	require.NoError(t, err)
	assert.Equal(t, 3, qty)
}

func TestAddIgnoresEmptyName(t *testing.T) {
	s, _ := newTestStore(t)

	s.Add("", 5, nil)

	assert.Empty(t, s.Items())
}

func TestAddAppendsJournal(t *testing.T) {
	s, _ := newTestStore(t)
	s.now = func() time.Time {
		return time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)
	}

	journal := &models.Journal{}
	s.Add("apple", 4, journal)

	require.Equal(t, 1, journal.Len())
	assert.Equal(t, "2026-01-02T15:04:05Z: Added 4 of apple", journal.Entries()[0])
}

func TestAddWithoutJournal(t *testing.T) {
	s, _ := newTestStore(t)

	// nil journal means no logging was requested.
	s.Add("apple", 1, nil)

	qty, err := s.Quantity("apple")
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
}

func TestRemoveKeepsPositiveRemainder(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add("apple", 10, nil)

	s.Remove("apple", 3)

	qty, err := s.Quantity("apple")
	require.NoError(t, err)
	assert.Equal(t, 7, qty)
}

func TestRemoveDeletesOnZero(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add("apple", 3, nil)

	s.Remove("apple", 3)

	_, err := s.Quantity("apple")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveDeletesInsteadOfGoingNegative(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add("apple", 3, nil)

	s.Remove("apple", 5)

	_, err := s.Quantity("apple")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, s.Items(), "apple")
}

func TestRemoveMissingItemEmitsNotice(t *testing.T) {
	s, out := newTestStore(t)
	s.Add("apple", 3, nil)

	s.Remove("orange", 1)

	assert.Equal(t, "Error: orange not found in inventory.\n", out.String())
	assert.Equal(t, models.Stock{"apple": 3}, s.Items())
}

func TestQuantityMissingItem(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Quantity("apple")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "apple")
}

func TestLowStockStrictlyBelowThreshold(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add("apple", 10, nil)
	s.Add("banana", 2, nil)
	s.Add("pear", 5, nil)

	assert.Equal(t, []string{"banana"}, s.LowStock(5))
}

func TestLowStockSortedByName(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add("pear", 1, nil)
	s.Add("apple", 2, nil)
	s.Add("banana", 3, nil)

	assert.Equal(t, []string{"apple", "banana", "pear"}, s.LowStock(DefaultLowStockThreshold))
}

func TestReportSortedLines(t *testing.T) {
	s, out := newTestStore(t)
	s.Add("pear", 5, nil)
	s.Add("apple", 7, nil)

	s.Report()

	assert.Equal(t, "Items Report\napple -> 7\npear -> 5\n", out.String())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	s, _ := newTestStore(t)
	s.Add("apple", 10, nil)
	s.Add("banana", 2, nil)
	require.NoError(t, s.Save(path))

	fresh, _ := newTestStore(t)
	require.NoError(t, fresh.Load(path))

	assert.Equal(t, models.Stock{"apple": 10, "banana": 2}, fresh.Items())
}

func TestLoadReplacesNotMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	saved, _ := newTestStore(t)
	saved.Add("y", 2, nil)
	require.NoError(t, saved.Save(path))

	s, _ := newTestStore(t)
	s.Add("x", 1, nil)
	require.NoError(t, s.Load(path))

	assert.Equal(t, models.Stock{"y": 2}, s.Items())
}

func TestLoadMissingFile(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add("apple", 1, nil)

	err := s.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	// A failed load leaves the stock untouched.
	assert.Equal(t, models.Stock{"apple": 1}, s.Items())
}

func TestItemsReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add("apple", 1, nil)

	items := s.Items()
	items["apple"] = 99

	qty, err := s.Quantity("apple")
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
}
