package algorithms

import (
	"fmt"
	"strings"
)

// CostFunc maps a raw collaboration weight to a traversal cost. Higher
// weights must not cost more than lower ones and costs must be
// non-negative. maxWeight is the largest weight in the graph.
type CostFunc func(weight, maxWeight int) float64

// InverseCost is the default transform, 1/(w+1). It is strictly positive,
// bounded by 1 for w >= 0 and independent of maxWeight.
func InverseCost(weight, _ int) float64 {
	return 1.0 / (float64(weight) + 1.0)
}

// LinearCost is maxWeight-w+1, never less than 1. It depends on the
// graph's maximum weight and selects different paths from InverseCost, so
// it must be chosen explicitly.
func LinearCost(weight, maxWeight int) float64 {
	c := maxWeight - weight + 1
	if c < 1 {
		c = 1
	}
	return float64(c)
}

// Cost function names accepted by CostFuncByName.
const (
	CostInverse = "inverse"
	CostLinear  = "linear"
)

// CostFuncByName resolves a configured cost function name.
func CostFuncByName(name string) (CostFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", CostInverse:
		return InverseCost, nil
	case CostLinear:
		return LinearCost, nil
	default:
		return nil, fmt.Errorf("unknown cost function %q", name)
	}
}
