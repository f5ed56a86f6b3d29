// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Yurii Karpenko

// Package app contains shared application-layer constants used across the
// assistant-bot command handlers and the REPL.
//
// All Msg* constants are human-readable message strings printed to the user
// to describe the outcome of an operation. Keeping them in one place ensures
// consistent wording throughout the assistant.
package app

const (
	// MsgWelcome is printed once at startup.
	MsgWelcome = "Welcome to the assistant bot!"

	// MsgPrompt is the REPL input prompt.
	MsgPrompt = "Enter a command: "

	// MsgHowCanIHelp is the reply to the hello command.
	MsgHowCanIHelp = "How can I help you?"

	// MsgGoodBye is printed when the user closes the assistant.
	MsgGoodBye = "Good bye!"

	// MsgInvalidCommand is printed when the verb matches no known command.
	MsgInvalidCommand = "Invalid command."

	// MsgNotEnoughArguments is printed when a command receives fewer
	// arguments than it requires.
	MsgNotEnoughArguments = "Not enough arguments provided."

	// MsgContactNotFound is printed when a command targets a name that is
	// not in the address book.
	MsgContactNotFound = "Contact not found."

	// MsgNoUpcomingBirthdays is printed when the seven-day window contains
	// no birthdays.
	MsgNoUpcomingBirthdays = "No upcoming birthdays in the next 7 days."
)
