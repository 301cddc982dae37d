// Package auth defines the identity surface of the application: who the
// current user is and how sessions are established and torn down.
//
// Storage code never reaches for an ambient current user. An auth.Session
// is handed explicitly to every store operation, so ownership scoping is
// visible at each call site and test doubles need no global state.
package auth
