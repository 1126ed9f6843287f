package engine

import (
	"testing"
	"time"

	"sales-metrics-service/internal/sales/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLines(r domain.SaleRecord, lines ...domain.ProductLine) domain.SaleRecord {
	r.Products = lines
	return r
}

func line(name string, qty int64, total string) domain.ProductLine {
	return domain.ProductLine{Name: name, Quantity: qty, LineTotal: amount(total)}
}

func TestRankProducts(t *testing.T) {
	records := []domain.SaleRecord{
		withLines(completedSale("1", at(2024, time.January, 1, 12), "a", "A", "30"), line("Pizza", 2, "40"), line("Soda", 3, "9")),
		withLines(completedSale("2", at(2024, time.January, 1, 13), "a", "A", "30"), line("Pizza", 1, "20"), line("Beer", 3, "30")),
	}
	got := RankProducts(records)
	require.Len(t, got, 3)
	assert.Equal(t, "Beer", got[0].Name)
	assert.Equal(t, int64(3), got[0].Quantity)
	assert.Equal(t, "Pizza", got[1].Name)
	assert.True(t, got[1].Revenue.Equal(amount("60")))
	assert.Equal(t, "Soda", got[2].Name)
}

func TestProductMargins(t *testing.T) {
	costed := func(name string, qty int64, total, base string) domain.ProductLine {
		l := line(name, qty, total)
		l.BasePrice = amount(base)
		return l
	}
	records := []domain.SaleRecord{
		withLines(completedSale("1", at(2024, time.January, 1, 12), "a", "A", "0"),
			costed("Pizza", 2, "80", "15"), costed("Soda", 3, "15", "2")),
		withLines(completedSale("2", at(2024, time.January, 2, 12), "a", "A", "0"),
			costed("Pizza", 1, "40", "15"), line("Gift", 1, "0")),
	}

	got := ProductMargins(records)
	require.Len(t, got, 3)

	assert.Equal(t, "Pizza", got[0].Name)
	assert.Equal(t, int64(3), got[0].Quantity)
	assert.True(t, got[0].Revenue.Equal(amount("120")))
	assert.True(t, got[0].Cost.Equal(amount("45")))
	assert.True(t, got[0].Margin.Equal(amount("75")))

	assert.Equal(t, "Soda", got[1].Name)
	assert.True(t, got[1].Margin.Equal(amount("9")))

	assert.Equal(t, "Gift", got[2].Name)
	assert.True(t, got[2].Margin.IsZero())

	assert.Empty(t, ProductMargins(nil))
}

func TestProductsByHour(t *testing.T) {
	records := []domain.SaleRecord{
		withLines(completedSale("1", at(2024, time.January, 1, 12), "a", "A", "0"), line("Pizza", 5, "0"), line("Soda", 2, "0")),
		withLines(completedSale("2", at(2024, time.January, 2, 14), "a", "A", "0"), line("Soda", 1, "0")),
		withLines(completedSale("3", at(2024, time.January, 2, 20), "a", "A", "0"), line("Wine", 1, "0"), line("Beer", 1, "0")),
	}

	got := ProductsByHour(records)
	require.Len(t, got, len(HourWindows))

	lunch := got[2]
	assert.Equal(t, "11-15h", lunch.Window.Label)
	assert.Equal(t, domain.ProductQuantity{Name: "Pizza", Quantity: 5}, lunch.Top)
	assert.Equal(t, domain.ProductQuantity{Name: "Soda", Quantity: 3}, lunch.Worst)

	dinner := got[4]
	assert.Equal(t, "Beer", dinner.Top.Name)
	assert.Equal(t, "Beer", dinner.Worst.Name)

	quiet := got[0]
	assert.Equal(t, domain.PlaceholderName, quiet.Top.Name)
	assert.Equal(t, int64(0), quiet.Top.Quantity)

	best, ok := BestOfDay(got)
	require.True(t, ok)
	assert.Equal(t, "Pizza", best.Top.Name)

	_, ok = BestOfDay(ProductsByHour(nil))
	assert.False(t, ok)
}

func TestTimeSelector(t *testing.T) {
	// 2024-01-01 is a Monday
	records := []domain.SaleRecord{
		completedSale("mon-10", at(2024, time.January, 1, 10), "a", "A", "1"),
		completedSale("mon-15", at(2024, time.January, 1, 15), "a", "A", "1"),
		completedSale("tue-12", at(2024, time.January, 2, 12), "a", "A", "1"),
	}

	sel := TimeSelector{Weekday: intPtr(1), StartHour: intPtr(11), EndHour: intPtr(15)}
	require.NoError(t, sel.Validate())
	got := sel.Select(records)
	require.Len(t, got, 1)
	assert.Equal(t, "mon-15", got[0].SaleID)

	assert.Len(t, TimeSelector{}.Select(records), 3)

	invalid := []TimeSelector{
		{Weekday: intPtr(7)},
		{StartHour: intPtr(3)},
		{StartHour: intPtr(10), EndHour: intPtr(9)},
		{StartHour: intPtr(0), EndHour: intPtr(24)},
	}
	for _, s := range invalid {
		assert.ErrorIs(t, s.Validate(), domain.ErrInvalidConfiguration)
	}
}

func TestStaleProducts(t *testing.T) {
	now := at(2024, time.June, 30, 12)
	daysAgo := func(d int) *time.Time {
		ts := now.AddDate(0, 0, -d)
		return &ts
	}
	catalog := []domain.CatalogProduct{
		{ID: 1, Name: "Old", LastSaleAt: daysAgo(95)},
		{ID: 2, Name: "Mid", LastSaleAt: daysAgo(60)},
		{ID: 3, Name: "Recent", LastSaleAt: daysAgo(45)},
		{ID: 4, Name: "Fresh", LastSaleAt: daysAgo(29)},
		{ID: 5, Name: "Edge", LastSaleAt: daysAgo(30)},
		{ID: 6, Name: "Never"},
	}

	got, err := StaleProducts(catalog, now, DefaultStaleConfig())
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "Never", got[0].Name)
	assert.True(t, got[0].NeverSold)
	assert.Equal(t, domain.RiskHigh, got[0].Tier)
	assert.Nil(t, got[0].LastSaleAt)

	assert.Equal(t, "Old", got[1].Name)
	assert.Equal(t, 95, got[1].DaysWithoutSale)
	assert.Equal(t, domain.RiskHigh, got[1].Tier)

	assert.Equal(t, "Mid", got[2].Name)
	assert.Equal(t, domain.RiskMedium, got[2].Tier)

	assert.Equal(t, "Recent", got[3].Name)
	assert.Equal(t, domain.RiskWatch, got[3].Tier)
}

func TestStaleConfigValidate(t *testing.T) {
	bad := []StaleConfig{
		{FloorDays: -1, MediumDays: 60, HighDays: 90},
		{FloorDays: 30, MediumDays: 30, HighDays: 90},
		{FloorDays: 30, MediumDays: 60, HighDays: 60},
	}
	for _, c := range bad {
		_, err := StaleProducts(nil, time.Now(), c)
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	}
}
