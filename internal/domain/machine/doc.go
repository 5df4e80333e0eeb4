// Package machine contains the finite-state machine value types.
//
// MooreMachine attaches an output to every state, MealyMachine attaches an
// output to every (state, input) transition. Both are built in one step by
// their constructors, which copy all inputs, and are read-only afterwards.
package machine
