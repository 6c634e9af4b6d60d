package completion

import "context"

// DefaultEndpoint is used by HTTPProvider when no endpoint is configured.
const DefaultEndpoint = "http://localhost:3000/api/complete"

// Provider returns a suggestion for the caret between before and after.
//
// Implementations are called from a tea.Cmd goroutine and must honour ctx.
// Any error means "no suggestion"; callers never surface it to the user.
type Provider interface {
	GetCompletion(ctx context.Context, before, after, prompt string) (string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, before, after, prompt string) (string, error)

func (f ProviderFunc) GetCompletion(ctx context.Context, before, after, prompt string) (string, error) {
	return f(ctx, before, after, prompt)
}

// Static returns a provider that always suggests text.
func Static(text string) Provider {
	return ProviderFunc(func(ctx context.Context, _, _, _ string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return text, nil
	})
}
