// Package console renders menus, prompts, task listings and result messages
// for the interactive loop, and reads the user's answers.
//
// Output is styled with lipgloss. Styles degrade to plain text when the
// output is not a terminal. Password prompts are masked when input is a
// terminal and fall back to a plain line read otherwise, so scripted input
// works unchanged.
package console
