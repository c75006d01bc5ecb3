package generator

import "context"

// Generator produces a text completion for a prompt. Implementations
// prepend their own fixed system instructions; the prompt is the only
// per-request input.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
