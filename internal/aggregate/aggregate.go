// Package aggregate summarizes sales over a period, overall or grouped by
// team or seller.
//
// All functions are pure: callers load sales, teams and sellers from the
// store and pass them in. A nil *period.Range means no period filter.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/festy23/sales_dashboard/internal/period"
	saleModel "github.com/festy23/sales_dashboard/internal/sale/model"
	sellerModel "github.com/festy23/sales_dashboard/internal/seller/model"
	teamModel "github.com/festy23/sales_dashboard/internal/team/model"
)

// Summary is the ungrouped aggregate of a period.
type Summary struct {
	// Items are ordered by OccurredAt, newest first.
	Items []saleModel.Sale
	Total decimal.Decimal
	Count int
}

// Group is the aggregate of one team or seller.
type Group struct {
	ID   string
	Name string
	// TeamName is set for seller groups whose seller belongs to a known team.
	TeamName *string
	Count    int
	Total    decimal.Decimal
	Mean     decimal.Decimal
}

// Filter returns the sales whose OccurredAt date lies in rng, keeping order.
func Filter(sales []saleModel.Sale, rng *period.Range) []saleModel.Sale {
	out := make([]saleModel.Sale, 0, len(sales))
	for _, s := range sales {
		if rng == nil || rng.Contains(s.OccurredAt) {
			out = append(out, s)
		}
	}
	return out
}

// Summarize totals the sales of rng.
func Summarize(sales []saleModel.Sale, rng period.Range) Summary {
	items := Filter(sales, &rng)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OccurredAt.After(items[j].OccurredAt)
	})

	total := decimal.Zero
	for _, s := range items {
		total = total.Add(s.Amount)
	}

	return Summary{Items: items, Total: total, Count: len(items)}
}

// ByTeam returns one group per team, in teams order before sorting,
// attributing each sale to its own TeamID.
func ByTeam(teams []teamModel.Team, sales []saleModel.Sale, rng *period.Range) []Group {
	groups := make([]Group, 0, len(teams))
	for _, t := range teams {
		groups = append(groups, Group{ID: t.ID, Name: t.Name})
	}
	return accumulate(groups, Filter(sales, rng), func(s saleModel.Sale) string { return s.TeamID })
}

// BySeller returns one group per seller, carrying the seller's current team name.
func BySeller(sellers []sellerModel.Seller, sales []saleModel.Sale, rng *period.Range) []Group {
	groups := make([]Group, 0, len(sellers))
	for _, s := range sellers {
		groups = append(groups, Group{ID: s.ID, Name: s.Name, TeamName: s.TeamName})
	}
	return accumulate(groups, Filter(sales, rng), func(s saleModel.Sale) string { return s.SellerID })
}

// accumulate adds each sale to the group named by key, computes means and
// sorts by total descending. Ties keep the incoming group order. Sales whose
// key matches no group are ignored.
func accumulate(groups []Group, sales []saleModel.Sale, key func(saleModel.Sale) string) []Group {
	index := make(map[string]int, len(groups))
	for i := range groups {
		groups[i].Total = decimal.Zero
		groups[i].Mean = decimal.Zero
		if _, dup := index[groups[i].ID]; !dup {
			index[groups[i].ID] = i
		}
	}

	for _, s := range sales {
		i, ok := index[key(s)]
		if !ok {
			continue
		}
		groups[i].Count++
		groups[i].Total = groups[i].Total.Add(s.Amount)
	}

	for i := range groups {
		if groups[i].Count > 0 {
			groups[i].Mean = groups[i].Total.Div(decimal.NewFromInt(int64(groups[i].Count)))
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.GreaterThan(groups[j].Total)
	})
	return groups
}
