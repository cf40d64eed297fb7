package impl

import (
	"context"
	"testing"
	"time"

	mockRepo "beanwatch/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func TestSessionCleanup_SweepsExpiredSessions(t *testing.T) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)

	swept := make(chan struct{}, 1)
	tokenRepo.EXPECT().
		DeleteExpiredTokens(mock.Anything).
		RunAndReturn(func(ctx context.Context) error {
			select {
			case swept <- struct{}{}:
			default:
			}

			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())

	go sweepExpiredSessions(ctx, tokenRepo, newDiscardLogger(), 5*time.Millisecond)

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("expired sessions were never swept")
	}

	cancel()
	// Let the sweeper observe the cancellation before expectations are asserted.
	time.Sleep(20 * time.Millisecond)
}
