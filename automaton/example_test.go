package automaton_test

import (
	"fmt"

	"github.com/katalvlaran/robustrepair/automaton"
)

// Example demonstrates composing a one-event sender with a two-event
// receiver that share one synchronizing event ("send").
func Example() {
	sender := automaton.New([]automaton.Event{
		{Label: "send", Controllable: true, Observable: true},
	})
	senderDone := sender.AddState(true)
	_ = sender.AddTransition(0, "send", senderDone)

	receiver := automaton.New([]automaton.Event{
		{Label: "send", Controllable: true, Observable: true},
		{Label: "rec", Controllable: false, Observable: true},
	})
	mid := receiver.AddState(false)
	done := receiver.AddState(true)
	_ = receiver.AddTransition(0, "send", mid)
	_ = receiver.AddTransition(mid, "rec", done)

	plant, err := automaton.Compose(sender, receiver)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("states:", plant.NumStates())
	// Output: states: 3
}
