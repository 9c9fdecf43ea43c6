// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive session loop of the client.
//
// The loop renders a numbered text menu, reads one line at a time through a
// [Prompter], dispatches the chosen action to the client services and prints
// a short summary. On a terminal every answer is typed into a bubbletea
// textinput field, masked for passwords.
//
// A keyboard interrupt is delivered as [ErrInterrupted] at the next prompt
// boundary: during an action it cancels the action, at the authenticated menu
// it logs the user out and at the anonymous menu it ends the loop.
package tui
