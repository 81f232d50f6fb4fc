// Package engine wires the pipeline together: it loads the plant, the
// environment/properties, the safety specification, and the preferred
// behaviors named in a Config, and hands the resulting search.Problem to
// package search, which runs the solver, extractor, minimizer and checker
// for every bracket (§7: "driver → automaton kernel loads models →
// search engine invokes solver/extractor/minimizer/checker repeatedly").
//
// New loads every model file once; Synthesize may be called any number of
// times against the same loaded models (different n budgets); Close removes
// the staging directory named by Config.StagingDir.
package engine
