// Package legality implements the cross-generation move-legality engine.
//
// A check walks a chain of per-generation learn groups backward through the
// generations a creature has visited, attempting to explain each move slot
// with that generation's learn methods: level-up, machine, tutor, egg
// inheritance, and fixed hatchling bonuses. Each slot records which
// generation, evolutionary stage, and method explained it. A slot nobody
// can explain stays unresolved — that is a normal outcome, not an error;
// callers treat unresolved slots as illegal moves.
package legality
