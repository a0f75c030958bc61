package knapsack

import (
	"fmt"

	"github.com/samber/lo"
)

// An Item is an object that can be put in the knapsack.
type Item struct {
	ID     int
	Profit int
	Weight int
}

func (it Item) String() string {
	return fmt.Sprintf("%d %d %d", it.ID, it.Profit, it.Weight)
}

// An Instance is a knapsack problem: a capacity and the items to choose from, in input order.
type Instance struct {
	Capacity int
	Items    []Item
}

// TotalWeight returns the sum of the weights of items.
func TotalWeight(items []Item) int {
	return lo.SumBy(items, func(it Item) int { return it.Weight })
}

// TotalProfit returns the sum of the profits of items.
func TotalProfit(items []Item) int {
	return lo.SumBy(items, func(it Item) int { return it.Profit })
}
