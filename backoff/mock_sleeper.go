package backoff

import "github.com/stretchr/testify/mock"

// MockSleeper is a mock implementation of Sleeper using testify/mock.
type MockSleeper struct {
	mock.Mock
}

func (m *MockSleeper) Sleep(seconds uint64) {
	m.Called(seconds)
}
