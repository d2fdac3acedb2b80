// Package mocks provides centralized test doubles for the store interfaces.
//
// Two flavours are available for each interface:
//
//   - Mock* types are in-memory fakes with optional function fields. Left
//     alone they behave like a working backend, which makes them suitable for
//     behavioural tests of services and the session controller.
//   - TestifyMock* types embed testify's mock.Mock for tests that need to
//     assert exact calls or inject failures.
//
// Usage:
//
//	tasks := mocks.NewMockTaskStore()
//	svc := service.NewTaskService(tasks, nil)
//
//	failing := new(mocks.TestifyMockTaskStore)
//	failing.On("ListByUser", mock.Anything, "uid-1").Return(nil, errors.New("unavailable"))
//
// The fakes are not safe for concurrent use.
package mocks
