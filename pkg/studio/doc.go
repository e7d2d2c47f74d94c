// Package studio ties the recording subsystem together: a small state
// machine over the studio's UI modes, an orchestrator that keeps the
// machine and the active recording session in lockstep, the recently
// opened solutions list, and user preferences.
//
// Everything here follows the single-threaded cooperative model of the
// rest of the module: no internal locking, all calls expected from one
// event-processing goroutine.
package studio
