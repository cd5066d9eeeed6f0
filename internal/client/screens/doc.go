// Package screens holds the per-screen state of the client.
//
// Every holder exposes a single observable state value and a set of intent
// methods. Intents run one at a time on the holder's scope and report
// failures both as a returned error and in the state's error field. Closing a
// holder cancels its pending work and its upstream subscriptions.
package screens
