package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/sales_dashboard/internal/period"
	saleModel "github.com/festy23/sales_dashboard/internal/sale/model"
	sellerModel "github.com/festy23/sales_dashboard/internal/seller/model"
	teamModel "github.com/festy23/sales_dashboard/internal/team/model"
)

var ref = time.Date(2024, time.March, 13, 15, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func sale(id, seller, team, amount string, at time.Time) saleModel.Sale {
	return saleModel.Sale{
		ID:         id,
		SellerID:   seller,
		TeamID:     team,
		Amount:     decimal.RequireFromString(amount),
		OccurredAt: at,
	}
}

func teams() []teamModel.Team {
	return []teamModel.Team{
		{ID: "eq1", Name: "Equipe Norte"},
		{ID: "eq2", Name: "Equipe Sul"},
		{ID: "eq3", Name: "Equipe Leste"},
	}
}

func sellers() []sellerModel.Seller {
	return []sellerModel.Seller{
		{ID: "v1", Name: "João Silva", TeamID: strPtr("eq1"), TeamName: strPtr("Equipe Norte")},
		{ID: "v2", Name: "Maria Santos", TeamID: strPtr("eq1"), TeamName: strPtr("Equipe Norte")},
		{ID: "v3", Name: "Pedro Costa", TeamID: strPtr("eq2"), TeamName: strPtr("Equipe Sul")},
		{ID: "v6", Name: "Zeca"},
	}
}

func resolve(t *testing.T, k period.Kind) *period.Range {
	t.Helper()
	rng, err := period.Resolve(k, ref)
	require.NoError(t, err)
	return &rng
}

func TestFilter(t *testing.T) {
	sales := []saleModel.Sale{
		sale("today-late", "v1", "eq1", "10", time.Date(2024, 3, 13, 23, 59, 59, 0, time.UTC)),
		sale("yesterday", "v1", "eq1", "10", time.Date(2024, 3, 12, 23, 59, 59, 0, time.UTC)),
		sale("month-start", "v1", "eq1", "10", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		sale("last-month", "v1", "eq1", "10", time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)),
		sale("tomorrow", "v1", "eq1", "10", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)),
	}

	ids := func(ss []saleModel.Sale) []string {
		out := []string{}
		for _, s := range ss {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []string{"today-late"}, ids(Filter(sales, resolve(t, period.Day))))
	assert.Equal(t, []string{"today-late", "yesterday", "month-start"}, ids(Filter(sales, resolve(t, period.Month))))
	assert.Len(t, Filter(sales, nil), 5)
}

func TestFilter_Week(t *testing.T) {
	sales := []saleModel.Sale{
		sale("sun", "v1", "eq1", "1", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
		sale("sat", "v1", "eq1", "1", time.Date(2024, 3, 16, 23, 0, 0, 0, time.UTC)),
		sale("prev-sat", "v1", "eq1", "1", time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)),
		sale("next-sun", "v1", "eq1", "1", time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)),
	}

	got := Filter(sales, resolve(t, period.Week))

	require.Len(t, got, 2)
	assert.Equal(t, "sun", got[0].ID)
	assert.Equal(t, "sat", got[1].ID)
}

func TestSummarize(t *testing.T) {
	sales := []saleModel.Sale{
		sale("a", "v1", "eq1", "1500", time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)),
		sale("b", "v2", "eq1", "2300.50", time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC)),
		sale("c", "v3", "eq2", "999", time.Date(2024, 3, 12, 14, 0, 0, 0, time.UTC)),
		sale("d", "v3", "eq2", "100", time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)),
	}

	got := Summarize(sales, *resolve(t, period.Day))

	require.Equal(t, 3, got.Count)
	assert.True(t, decimal.RequireFromString("3900.50").Equal(got.Total), got.Total.String())
	assert.Equal(t, "b", got.Items[0].ID)
	assert.Equal(t, "a", got.Items[1].ID, "ties keep input order")
	assert.Equal(t, "d", got.Items[2].ID)
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, *resolve(t, period.Fortnight))

	assert.Equal(t, 0, got.Count)
	assert.True(t, got.Total.IsZero())
	assert.NotNil(t, got.Items)
}

func TestByTeam(t *testing.T) {
	sales := []saleModel.Sale{
		sale("1", "v1", "eq1", "1500", ref),
		sale("2", "v2", "eq1", "2300", ref.Add(-time.Hour)),
		// v3 belongs to eq2 but this sale was booked against eq3.
		sale("3", "v3", "eq3", "1000", ref),
		sale("4", "v3", "eq2", "500", ref.AddDate(0, 0, -1)),
		sale("5", "v9", "eq404", "7000", ref),
	}

	t.Run("day", func(t *testing.T) {
		got := ByTeam(teams(), sales, resolve(t, period.Day))

		require.Len(t, got, 3)
		assert.Equal(t, "eq1", got[0].ID)
		assert.Equal(t, 2, got[0].Count)
		assert.True(t, decimal.NewFromInt(3800).Equal(got[0].Total))
		assert.True(t, decimal.NewFromInt(1900).Equal(got[0].Mean))

		assert.Equal(t, "eq3", got[1].ID)
		assert.True(t, decimal.NewFromInt(1000).Equal(got[1].Total))

		assert.Equal(t, "eq2", got[2].ID)
		assert.Equal(t, 0, got[2].Count)
		assert.True(t, got[2].Total.IsZero())
		assert.True(t, got[2].Mean.IsZero())
		assert.Equal(t, "Equipe Sul", got[2].Name)
	})

	t.Run("all time", func(t *testing.T) {
		got := ByTeam(teams(), sales, nil)

		require.Len(t, got, 3)
		assert.Equal(t, []string{"eq1", "eq3", "eq2"}, []string{got[0].ID, got[1].ID, got[2].ID})
		assert.Equal(t, 1, got[2].Count)
	})

	t.Run("zero sales keeps store order", func(t *testing.T) {
		got := ByTeam(teams(), nil, resolve(t, period.Week))

		require.Len(t, got, 3)
		assert.Equal(t, []string{"eq1", "eq2", "eq3"}, []string{got[0].ID, got[1].ID, got[2].ID})
		for _, g := range got {
			assert.Zero(t, g.Count)
			assert.True(t, g.Mean.IsZero())
		}
	})
}

func TestByTeam_SameTeamSetForEveryPeriod(t *testing.T) {
	sales := []saleModel.Sale{
		sale("1", "v1", "eq1", "1500", ref),
		sale("2", "v3", "eq2", "800", ref.AddDate(0, 0, -2)),
	}

	groupIDs := func(gs []Group) map[string]bool {
		out := map[string]bool{}
		for _, g := range gs {
			out[g.ID] = true
		}
		return out
	}

	day := ByTeam(teams(), sales, resolve(t, period.Day))
	week := ByTeam(teams(), sales, resolve(t, period.Week))

	assert.Equal(t, groupIDs(day), groupIDs(week))
	assert.Len(t, day, 3)
}

func TestBySeller(t *testing.T) {
	sales := []saleModel.Sale{
		sale("1", "v1", "eq1", "100", ref),
		sale("2", "v1", "eq1", "200", ref),
		sale("3", "v1", "eq1", "0", ref),
		sale("4", "v3", "eq2", "300", ref),
		sale("5", "v6", "eq1", "50", ref),
	}

	got := BySeller(sellers(), sales, resolve(t, period.Month))

	require.Len(t, got, 4)

	// v1 and v3 tie on 300; v1 comes first in store order.
	assert.Equal(t, "v1", got[0].ID)
	assert.Equal(t, 3, got[0].Count)
	assert.True(t, decimal.NewFromInt(100).Equal(got[0].Mean))
	assert.Equal(t, "Equipe Norte", *got[0].TeamName)

	assert.Equal(t, "v3", got[1].ID)
	assert.Equal(t, "Equipe Sul", *got[1].TeamName)

	assert.Equal(t, "v6", got[2].ID)
	assert.Nil(t, got[2].TeamName)
	assert.True(t, decimal.NewFromInt(50).Equal(got[2].Total))

	assert.Equal(t, "v2", got[3].ID)
	assert.Zero(t, got[3].Count)
	assert.True(t, got[3].Mean.IsZero())
}

func TestBySeller_MeanNeverDividesByZero(t *testing.T) {
	got := BySeller(sellers(), []saleModel.Sale{sale("1", "v2", "eq1", "0", ref)}, nil)

	for _, g := range got {
		if g.Count == 0 {
			assert.True(t, g.Mean.IsZero(), g.ID)
			continue
		}
		assert.True(t, g.Total.Div(decimal.NewFromInt(int64(g.Count))).Equal(g.Mean), g.ID)
	}
}
