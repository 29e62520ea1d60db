package prob_test

import (
	"fmt"

	"github.com/katalvlaran/probspace/prob"
)

// ExampleNew demonstrates construction and the validation failures:
// a fair coin constructs; a negative value and a bad total are rejected.
func ExampleNew() {
	coin, err := prob.New(map[string]float64{"heads": 0.5, "tails": 0.5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("domain:", coin.Domain())

	_, err = prob.New(map[string]float64{"heads": -0.1, "tails": 1.1})
	fmt.Println(err)

	_, err = prob.New(map[string]float64{"heads": 0.25, "tails": 0.25})
	fmt.Println(err)
	// Output:
	// domain: [heads tails]
	// prob: invalid probability distribution: probabilities must be nonnegative: P(heads)=-0.1
	// prob: invalid probability distribution: probabilities must sum to 1: total=0.5
}

// ExampleSpace_Probability queries a fair coin: a singleton, the empty
// event, and the full domain.
func ExampleSpace_Probability() {
	coin, _ := prob.New(map[string]float64{"heads": 0.5, "tails": 0.5})

	heads, _ := coin.Probability(prob.NewEvent("heads"))
	empty, _ := coin.Probability(prob.NewEvent[string]())
	all, _ := coin.Probability(prob.NewEvent("heads", "tails"))

	fmt.Printf("P(heads)=%.2f\nP(∅)=%.2f\nP(all)=%.2f\n", heads, empty, all)
	// Output:
	// P(heads)=0.50
	// P(∅)=0.00
	// P(all)=1.00
}

// ExampleSpace_Conditional computes conditional odds on a fair die and
// shows the zero-probability conditioning failure.
func ExampleSpace_Conditional() {
	die, _ := prob.New(map[int]float64{
		1: 1.0 / 6.0, 2: 1.0 / 6.0, 3: 1.0 / 6.0,
		4: 1.0 / 6.0, 5: 1.0 / 6.0, 6: 1.0 / 6.0,
	})

	low, _ := die.Conditional(prob.NewEvent(1, 2), prob.NewEvent(1, 2, 3, 4, 5, 6))
	fmt.Printf("P({1,2}|all)=%.4f\n", low)

	_, err := die.Conditional(prob.NewEvent(3), prob.NewEvent[int]())
	fmt.Println(err)
	// Output:
	// P({1,2}|all)=0.3333
	// prob: conditioning event has probability zero
}

// ExampleSpace_SetIgnoreUnknown contrasts strict and lenient handling of an
// event that references an outcome outside the domain.
func ExampleSpace_SetIgnoreUnknown() {
	coin, _ := prob.New(map[string]float64{"heads": 0.5, "tails": 0.5})
	wrong := prob.NewEvent("heads", "moose")

	_, err := coin.Probability(wrong)
	fmt.Println(err)

	coin.SetIgnoreUnknown(true)
	p, _ := coin.Probability(wrong)
	fmt.Printf("lenient: P(heads,moose)=%.2f\n", p)
	// Output:
	// prob: event contains outcome not in sample space: moose
	// lenient: P(heads,moose)=0.50
}
