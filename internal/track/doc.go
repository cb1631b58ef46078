// Package track owns the multi-tracker orchestration core.
//
// Responsibilities: per-session tracker lifecycle (initialization,
// exclusion of methods that fail to start), the per-frame update loop,
// uniform loss/survival bookkeeping across heterogeneous tracking
// methods, and the final survival summary.
// Key types: Method, Session, Entry, Summary.
//
// Dependency rule: track never imports the video or report packages.
// Frame sources, displays, and tracking methods reach the loop only
// through the interfaces declared here.
package track
