package generator

import (
	"github.com/bistroboard/demogen/internal/models"
)

// Table file names, shared with the schema and import commands.
const (
	TableSalesBuckets = "sales_buckets"
	TableLaborDaily   = "labor_daily"
	TableItemMixDaily = "item_mix_daily"
	TableInventory    = "inventory_daily"
)

// SalesBucketHeaders is the CSV column order for the sales table.
var SalesBucketHeaders = []string{
	"location_id", "ts",
	"sales_gross", "sales_net", "tickets", "covers",
	"discounts", "voids", "comps", "refunds",
	"channel_dine_in", "channel_pickup", "channel_delivery",
}

// LaborDailyHeaders is the CSV column order for the labor table.
var LaborDailyHeaders = []string{
	"location_id", "date",
	"scheduled_hours", "actual_hours", "labor_cost_est",
	"overtime_hours", "headcount",
}

// ItemMixDailyHeaders is the CSV column order for the item-mix table.
var ItemMixDailyHeaders = []string{
	"location_id", "date", "item_id", "item_name",
	"qty", "revenue_net", "margin_est", "attach_rate",
}

// InventoryDailyHeaders is the CSV column order for the inventory table.
var InventoryDailyHeaders = []string{
	"location_id", "date", "item_id", "item_name",
	"stock_on_hand", "stock_in", "stock_out", "waste_est", "stockout_flag",
}

func salesBucketRow(b models.SalesBucket) []string {
	return []string{
		b.LocationID,
		FormatTime(b.Timestamp),
		FormatMoney(b.SalesGross),
		FormatMoney(b.SalesNet),
		FormatInt(b.Tickets),
		FormatInt(b.Covers),
		FormatMoney(b.Discounts),
		FormatMoney(b.Voids),
		FormatMoney(b.Comps),
		FormatMoney(b.Refunds),
		FormatMoney(b.ChannelDineIn),
		FormatMoney(b.ChannelPickup),
		FormatMoney(b.ChannelDelivery),
	}
}

func laborDayRow(l models.LaborDay) []string {
	return []string{
		l.LocationID,
		FormatDate(l.Date),
		FormatFloat64(l.ScheduledHours),
		FormatFloat64(l.ActualHours),
		FormatMoney(l.LaborCostEst),
		FormatFloat64(l.OvertimeHours),
		FormatInt(l.Headcount),
	}
}

func itemMixDayRow(m models.ItemMixDay) []string {
	return []string{
		m.LocationID,
		FormatDate(m.Date),
		m.ItemID,
		m.ItemName,
		FormatInt(m.Qty),
		FormatMoney(m.RevenueNet),
		FormatFloat64(m.MarginEst),
		FormatFloat64(m.AttachRate),
	}
}

func inventoryDayRow(i models.InventoryDay) []string {
	return []string{
		i.LocationID,
		FormatDate(i.Date),
		i.ItemID,
		i.ItemName,
		FormatFloat64(i.StockOnHand),
		FormatFloat64(i.StockIn),
		FormatFloat64(i.StockOut),
		FormatFloat64(i.WasteEst),
		FormatBool(i.StockoutFlag),
	}
}

// datasetWriters bundles the four per-table CSV writers for one run.
type datasetWriters struct {
	sales     *CSVWriter
	labor     *CSVWriter
	itemMix   *CSVWriter
	inventory *CSVWriter
}

func newDatasetWriters(outputDir string, compress bool) (*datasetWriters, error) {
	w := &datasetWriters{}
	tables := []struct {
		name    string
		headers []string
		dest    **CSVWriter
	}{
		{TableSalesBuckets, SalesBucketHeaders, &w.sales},
		{TableLaborDaily, LaborDailyHeaders, &w.labor},
		{TableItemMixDaily, ItemMixDailyHeaders, &w.itemMix},
		{TableInventory, InventoryDailyHeaders, &w.inventory},
	}

	for _, t := range tables {
		writer, err := NewCSVWriter(CSVWriterConfig{
			OutputDir: outputDir,
			Filename:  t.name,
			Headers:   t.headers,
			Compress:  compress,
		})
		if err != nil {
			w.Close()
			return nil, err
		}
		*t.dest = writer
	}
	return w, nil
}

// WriteDataset appends one location's dataset to the shared table
// files. Safe to call concurrently from per-location workers.
func (w *datasetWriters) WriteDataset(ds *Dataset) (int64, error) {
	rows := make([][]string, 0, len(ds.SalesBuckets))
	for _, b := range ds.SalesBuckets {
		rows = append(rows, salesBucketRow(b))
	}
	if err := w.sales.WriteRows(rows); err != nil {
		return 0, err
	}

	rows = rows[:0]
	for _, l := range ds.LaborDaily {
		rows = append(rows, laborDayRow(l))
	}
	if err := w.labor.WriteRows(rows); err != nil {
		return 0, err
	}

	rows = rows[:0]
	for _, m := range ds.ItemMixDaily {
		rows = append(rows, itemMixDayRow(m))
	}
	if err := w.itemMix.WriteRows(rows); err != nil {
		return 0, err
	}

	rows = rows[:0]
	for _, i := range ds.InventoryDay {
		rows = append(rows, inventoryDayRow(i))
	}
	if err := w.inventory.WriteRows(rows); err != nil {
		return 0, err
	}

	return int64(len(ds.SalesBuckets) + len(ds.LaborDaily) +
		len(ds.ItemMixDaily) + len(ds.InventoryDay)), nil
}

// Close closes all table writers, returning the first error seen.
func (w *datasetWriters) Close() error {
	var firstErr error
	for _, cw := range []*CSVWriter{w.sales, w.labor, w.itemMix, w.inventory} {
		if cw == nil {
			continue
		}
		if err := cw.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
