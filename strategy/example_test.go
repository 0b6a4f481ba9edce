package strategy_test

import (
	"fmt"

	"github.com/boushphong/go-design-patterns/strategy"
)

// ExamplePlanner plans the same three legs under two moods; only the
// strategy value changes between the runs.
func ExamplePlanner() {
	p := strategy.NewPlanner(strategy.Motorway{})

	fast, err := p.Plan(120, 80, 50)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("motorway: %.2f h, %.1f L\n", fast.Hours, fast.FuelL)

	p.SetStrategy(strategy.Eco{})
	slow, err := p.Plan(120, 80, 50)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("eco:      %.2f h, %.1f L\n", slow.Hours, slow.FuelL)
	// Output:
	// motorway: 2.27 h, 21.2 L
	// eco:      3.57 h, 12.5 L
}
