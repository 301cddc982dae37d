// Package store defines the persistence contract for tasks.
//
// Implementations live in subpackages: store/firestore talks to Cloud
// Firestore, store/memory keeps everything in process for demo mode and
// tests. Every operation takes the caller's auth.Session so ownership
// scoping is explicit at the call site.
package store
