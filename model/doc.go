// Package model loads automata from the three file formats the engine
// accepts (§6 of the design): process-algebra text (.lts, via an external
// conversion subprocess), explicit automaton JSON, and FSM text. Dispatch is
// a tagged variant resolved once at load time from the file extension,
// replacing the Python original's dynamic-typing dispatch in
// StateMachine.to_fsm (§9 design notes: "Dynamic typing of model inputs").
package model
