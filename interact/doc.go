// Package interact simulates user input against a dom.HTMLDocument for use in
// tests: focusing and blurring, clicks, double-clicks, taps and typing.
//
// Every entry point validates its target before the first event fires, then
// emits a fixed sequence of synthetic events. Focus changes go through a
// FocusCoordinator, which relies on the host's native focus calls for the
// active element but synthesizes the focus-family events a host without
// system focus would not fire, so traces are the same whether or not the test
// window is focused.
package interact
