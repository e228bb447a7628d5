package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdoulbah/stockpile/internal/domain/models"
)

var addCmd = &cobra.Command{
	Use:   "add <item> <qty>",
	Short: "Add a quantity of an item to the stock",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove <item> <qty>",
	Short: "Remove a quantity of an item from the stock",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemove,
}

var qtyCmd = &cobra.Command{
	Use:   "qty <item>",
	Short: "Print the current quantity of an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runQty,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print every item with its quantity",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

var lowCmd = &cobra.Command{
	Use:   "low",
	Short: "List items whose quantity is below the threshold",
	Args:  cobra.NoArgs,
	RunE:  runLow,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the canned demonstration sequence",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	lowCmd.Flags().Int("threshold", 0, "quantity threshold (defaults to STOCKPILE_LOW_STOCK_THRESHOLD)")
}

func parseQty(raw string) (int, error) {
	qty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("quantity must be an integer, got %q", raw)
	}
	return qty, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	qty, err := parseQty(args[1])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.loadExisting(); err != nil {
		return err
	}

	journal := &models.Journal{}
	a.store.Add(args[0], qty, journal)
	for _, line := range journal.Entries() {
		a.logger.Debug("journal", zap.String("entry", line))
	}

	return a.save()
}

func runRemove(cmd *cobra.Command, args []string) error {
	qty, err := parseQty(args[1])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.loadExisting(); err != nil {
		return err
	}

	a.store.Remove(args[0], qty)
	return a.save()
}

func runQty(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.loadExisting(); err != nil {
		return err
	}

	qty, err := a.store.Quantity(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %d\n", args[0], qty)
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.loadExisting(); err != nil {
		return err
	}

	a.store.Report()
	return nil
}

func runLow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.loadExisting(); err != nil {
		return err
	}

	threshold := a.cfg.Store.LowStockThreshold
	if cmd.Flags().Changed("threshold") {
		threshold, err = cmd.Flags().GetInt("threshold")
		if err != nil {
			return err
		}
	}

	for _, name := range a.store.LowStock(threshold) {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

// runDemo replays the original demonstration sequence: a few adds and
// removes (one against a missing item), a quantity query, a low-stock
// check, then a save/load round trip followed by a report.
func runDemo(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	journal := &models.Journal{}
	a.store.Add("apple", 10, journal)
	a.store.Add("banana", -2, journal)
	a.store.Remove("apple", 3)
	a.store.Remove("orange", 1)

	qty, err := a.store.Quantity("apple")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Apple stock: %d\n", qty)
	fmt.Fprintf(cmd.OutOrStdout(), "Low items: %v\n", a.store.LowStock(a.cfg.Store.LowStockThreshold))

	if err := a.save(); err != nil {
		return err
	}
	if err := a.store.Load(a.cfg.Store.FilePath); err != nil {
		return err
	}
	a.store.Report()

	for _, line := range journal.Entries() {
		a.logger.Debug("journal", zap.String("entry", line))
	}
	return nil
}
