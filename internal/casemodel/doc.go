// Package casemodel is the heart of the pipeline: it classifies the fields
// of a definition struct into case records, enforces the invariants that make
// the variant↔raw-value mapping well-defined, and hands a validated model to
// code generation.
//
// Pipeline:
//  1. Build — one classification pass over the declaration, no errors raised
//  2. Validate — every violation found in one pass is reported together
//  3. On success, a CaseModel with resolved raw values, ready for synthesis
package casemodel
