// Package engine holds the pure aggregation functions behind the sales
// dashboard. Every function reads its input, never mutates it, and returns a
// fresh value; none of them reads a clock, touches I/O or logs.
package engine

import (
	"strings"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	dateLayout,
}

// statusSynonyms maps every accepted spelling onto a canonical status.
var statusSynonyms = map[string]domain.Status{
	"completed": domain.StatusCompleted,
	"complete":  domain.StatusCompleted,
	"delivered": domain.StatusCompleted,
	"concluded": domain.StatusCompleted,
	"finished":  domain.StatusCompleted,
	"canceled":  domain.StatusCanceled,
	"cancelled": domain.StatusCanceled,
	"voided":    domain.StatusCanceled,
	"pending":   domain.StatusPending,
	"open":      domain.StatusPending,
	"preparing": domain.StatusPending,
}

// Window is an inclusive range of calendar dates. A zero bound is open.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow truncates both bounds to their calendar date and rejects an
// inverted range.
func NewWindow(start, end time.Time) (Window, error) {
	w := Window{}
	if !start.IsZero() {
		w.Start = calendarDay(start)
	}
	if !end.IsZero() {
		w.End = calendarDay(end)
	}
	if !w.Start.IsZero() && !w.End.IsZero() && w.End.Before(w.Start) {
		return Window{}, domain.NewConfigurationError("window", "end date is before start date")
	}
	return w, nil
}

func (w Window) Bounded() bool { return !w.Start.IsZero() && !w.End.IsZero() }

// Contains reports whether t falls within [Start 00:00:00, End 23:59:59].
func (w Window) Contains(t time.Time) bool {
	t = t.UTC()
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && !t.Before(w.End.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// Days is the number of calendar days covered, 0 when unbounded.
func (w Window) Days() int {
	if !w.Bounded() {
		return 0
	}
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

type NormalizeResult struct {
	Records     []domain.SaleRecord
	Skipped     int
	OutOfWindow int
	Errors      []domain.ValidationError
}

// Normalize validates raw rows and keeps the ones inside the window. Rows
// without a sale id, with an unparsable timestamp or repeating an earlier
// sale id are skipped and reported; nothing else rejects a row.
func Normalize(raw []domain.RawSale, window Window) NormalizeResult {
	res := NormalizeResult{Records: make([]domain.SaleRecord, 0, len(raw))}
	seen := make(map[string]struct{}, len(raw))

	for i, r := range raw {
		saleID := strings.TrimSpace(string(r.SaleID))
		if saleID == "" {
			res.reject(i, "", "missing sale_id")
			continue
		}
		ts, ok := parseTimestamp(r.Timestamp)
		if !ok {
			res.reject(i, saleID, "unparsable timestamp "+quote(r.Timestamp))
			continue
		}
		if _, dup := seen[saleID]; dup {
			res.reject(i, saleID, "duplicate sale_id")
			continue
		}
		seen[saleID] = struct{}{}

		if !window.Contains(ts) {
			res.OutOfWindow++
			continue
		}

		res.Records = append(res.Records, domain.SaleRecord{
			SaleID:            saleID,
			StoreID:           r.StoreID,
			StoreName:         nameOrPlaceholder(r.StoreName),
			ChannelID:         r.ChannelID,
			ChannelName:       nameOrPlaceholder(r.ChannelName),
			CustomerID:        strings.TrimSpace(string(r.CustomerID)),
			CustomerName:      nameOrPlaceholder(r.CustomerName),
			Timestamp:         ts,
			Amount:            nonNegative(r.Amount),
			Status:            NormalizeStatus(r.Status),
			Products:          normalizeLines(r.Products),
			ProductionSeconds: nonNegativeSeconds(r.ProductionSeconds),
			DeliverySeconds:   nonNegativeSeconds(r.DeliverySeconds),
		})
	}
	return res
}

func (res *NormalizeResult) reject(index int, saleID, reason string) {
	res.Skipped++
	res.Errors = append(res.Errors, domain.ValidationError{Index: index, SaleID: saleID, Reason: reason})
}

// NormalizeStatus lower-cases s and maps known synonyms. Unknown values pass
// through lower-cased.
func NormalizeStatus(s string) domain.Status {
	key := strings.ToLower(strings.TrimSpace(s))
	if st, ok := statusSynonyms[key]; ok {
		return st
	}
	return domain.Status(key)
}

// Completed returns the completed sales of records.
func Completed(records []domain.SaleRecord) []domain.SaleRecord {
	out := make([]domain.SaleRecord, 0, len(records))
	for _, r := range records {
		if r.Status.IsCompleted() {
			out = append(out, r)
		}
	}
	return out
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func normalizeLines(lines []domain.RawProductLine) []domain.ProductLine {
	out := make([]domain.ProductLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		out = append(out, domain.ProductLine{
			Name:      nameOrPlaceholder(l.Name),
			Quantity:  l.Quantity,
			LineTotal: nonNegative(l.LineTotal),
			BasePrice: nonNegative(l.BasePrice),
		})
	}
	return out
}

func nonNegative(a domain.Amount) decimal.Decimal {
	if !a.Valid || a.Decimal.IsNegative() {
		return decimal.Zero
	}
	return a.Decimal
}

func nonNegativeSeconds(v *int64) *int64 {
	if v == nil {
		return nil
	}
	s := *v
	if s < 0 {
		s = 0
	}
	return &s
}

func nameOrPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.PlaceholderName
	}
	return s
}

func quote(s string) string {
	return "\"" + s + "\""
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func calendarMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
