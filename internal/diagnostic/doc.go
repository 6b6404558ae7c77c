// Package diagnostic provides structured, position-anchored errors for the
// rawenum pipeline.
//
// Key capabilities:
//   - Stable namespaced codes, one per defect kind
//   - Notes pointing at related positions ("previously declared here")
//   - Suggested fixes expressed as pure structural tree edits
//   - A Bag collector so one run reports every defect at once
package diagnostic
