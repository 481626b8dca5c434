// package cost aggregates entry costs into per-member balances and a
// settlement plan. It is a sibling consumer of the same entry records the
// timeline engine reads; it knows nothing about layout.
package cost

import (
	"math"
	"sort"

	"github.com/triplinehq/tripline/plan"
)

// Expense is one entry's cost, flattened out of its category record.
type Expense struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Amount   float64  `json:"amount"`
	PaidBy   string   `json:"paid_by"`
	Sharers  []string `json:"sharers"`
}

// MemberTotal is one member's position: what they fronted, what their share
// of the spending is, and the resulting net (positive = owed money).
type MemberTotal struct {
	Member string  `json:"member"`
	Paid   float64 `json:"paid"`
	Share  float64 `json:"share"`
	Net    float64 `json:"net"`
}

// Breakdown is the full cost summary for one trip.
type Breakdown struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
	Members    []MemberTotal      `json:"members"`
	Transfers  []Transfer         `json:"transfers"`
}

// Compute aggregates every costed entry into member balances and a
// settlement plan. Entries with no cost are ignored; an expense with no
// explicit split list is shared by all trip members.
func Compute(trip *plan.Trip, entries plan.Entries) *Breakdown {
	expenses := Expenses(entries)

	var (
		members    = trip.Members
		paid       = map[string]float64{}
		share      = map[string]float64{}
		byCategory = map[string]float64{}
		total      float64
	)

	for _, e := range expenses {
		total += e.Amount
		byCategory[e.Category] += e.Amount

		if e.PaidBy != "" {
			paid[e.PaidBy] += e.Amount
		}

		sharers := e.Sharers
		if len(sharers) == 0 {
			sharers = members
		}
		if len(sharers) == 0 {
			continue
		}
		perHead := e.Amount / float64(len(sharers))
		for _, member := range sharers {
			share[member] += perHead
		}
	}

	names := make(map[string]bool, len(members))
	for _, m := range members {
		names[m] = true
	}
	for m := range paid {
		names[m] = true
	}
	for m := range share {
		names[m] = true
	}

	totals := make([]MemberTotal, 0, len(names))
	balances := make(map[string]float64, len(names))
	for member := range names {
		mt := MemberTotal{
			Member: member,
			Paid:   paid[member],
			Share:  share[member],
		}
		mt.Net = mt.Paid - mt.Share
		totals = append(totals, mt)
		balances[member] = mt.Net
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Member < totals[j].Member
	})

	return &Breakdown{
		Total:      total,
		ByCategory: byCategory,
		Members:    totals,
		Transfers:  Settle(balances),
	}
}

// Expenses flattens all costed entries across categories.
func Expenses(entries plan.Entries) []Expense {
	expenses := make([]Expense, 0, entries.Len())

	add := func(id, name, category string, amount float64, paidBy string, sharers []string) {
		if amount == 0 {
			return
		}
		expenses = append(expenses, Expense{
			ID:       id,
			Name:     name,
			Category: category,
			Amount:   amount,
			PaidBy:   paidBy,
			Sharers:  sharers,
		})
	}

	for _, f := range entries.Flights {
		add(f.ID, f.Airline+" "+f.FlightNumber, "flight", f.Cost, f.PaidBy, f.SplitWith)
	}
	for _, l := range entries.Lodgings {
		add(l.ID, l.Name, "lodging", l.Cost, l.PaidBy, l.SplitWith)
	}
	for _, c := range entries.CarRentals {
		add(c.ID, c.Agency, "car_rental", c.Cost, c.PaidBy, c.SplitWith)
	}
	for _, r := range entries.Restaurants {
		add(r.ID, r.Name, "restaurant", r.Cost, r.PaidBy, r.SplitWith)
	}
	for _, a := range entries.Activities {
		add(a.ID, a.Name, "activity", a.Cost, a.PaidBy, a.SplitWith)
	}

	return expenses
}

// Transfer is one suggested repayment.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// centEpsilon treats sub-cent residue from uneven splits as settled.
const centEpsilon = 0.005

// Settle turns net balances into a short list of transfers: repeatedly
// match the largest debtor with the largest creditor. Deterministic; ties
// break on member name.
func Settle(balances map[string]float64) []Transfer {
	type position struct {
		member string
		net    float64
	}

	var debtors, creditors []position
	for member, net := range balances {
		switch {
		case net < -centEpsilon:
			debtors = append(debtors, position{member, -net})
		case net > centEpsilon:
			creditors = append(creditors, position{member, net})
		}
	}

	byOwed := func(ps []position) func(i, j int) bool {
		return func(i, j int) bool {
			if ps[i].net == ps[j].net {
				return ps[i].member < ps[j].member
			}
			return ps[i].net > ps[j].net
		}
	}
	sort.Slice(debtors, byOwed(debtors))
	sort.Slice(creditors, byOwed(creditors))

	transfers := []Transfer{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := math.Min(debtors[i].net, creditors[j].net)
		transfers = append(transfers, Transfer{
			From:   debtors[i].member,
			To:     creditors[j].member,
			Amount: math.Round(amount*100) / 100,
		})
		debtors[i].net -= amount
		creditors[j].net -= amount
		if debtors[i].net <= centEpsilon {
			i++
		}
		if creditors[j].net <= centEpsilon {
			j++
		}
	}

	return transfers
}
