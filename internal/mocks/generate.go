// Package mocks provides mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// port interfaces. The mocks are generated using go:generate directives and
// provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	storage := mocks.NewMockSessionStorage(ctrl)
//	storage.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
package mocks

// Generate mock for SessionStorage interface from internal/ports.
// This creates MockSessionStorage with methods for all SessionStorage
// interface methods: Load, Store, Clear
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_storage_mock.go github.com/taskdeck/taskdeck/internal/ports SessionStorage
