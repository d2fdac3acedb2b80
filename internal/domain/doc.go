// Package domain contains the core entities of the task list: users, tasks
// and the validation rules that apply to them. It has no knowledge of the
// backend that persists them or the console that displays them.
package domain
