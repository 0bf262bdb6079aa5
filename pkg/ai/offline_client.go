package ai

import "context"

// offline is the stand-in used when no provider key is configured or
// the process runs in mock mode. It never performs network I/O; its
// error routes every orchestrator through the deterministic fallback.
type offline struct{}

func Offline() TextClient { return &offline{} }

func (offline) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	return "", ErrOffline
}
