package solver

import "context"

// Provider supplies feedback for a submitted guess. It is the only point at
// which a solve blocks; implementations include the game referee, a human at a
// terminal and scripted test doubles.
type Provider interface {
	Submit(ctx context.Context, guess Word) (Feedback, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, guess Word) (Feedback, error)

func (f ProviderFunc) Submit(ctx context.Context, guess Word) (Feedback, error) {
	return f(ctx, guess)
}
