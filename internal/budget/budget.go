// Package budget enforces the snapshot token limits on incoming prompts.
package budget

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tiktoken-go/tokenizer"

	"github.com/ghostgate/ghostseal/internal/snapshot"
)

// ErrOverBudget indicates a prompt that exceeds the snapshot's headroom.
var ErrOverBudget = errors.New("prompt exceeds token budget")

// Checker counts prompt tokens with tiktoken and enforces the snapshot's
// headroom: a prompt may use at most max_tokens minus the synthesis reserve,
// so a gated decision always has room left to synthesize its answer.
type Checker struct {
	limits snapshot.Config

	codecOnce sync.Once
	codec     tokenizer.Codec
	codecErr  error
}

// NewChecker creates a checker bound to the given snapshot limits.
func NewChecker(limits snapshot.Config) *Checker {
	return &Checker{limits: limits}
}

func (c *Checker) getCodec() (tokenizer.Codec, error) {
	c.codecOnce.Do(func() {
		c.codec, c.codecErr = tokenizer.Get(tokenizer.Cl100kBase)
	})
	return c.codec, c.codecErr
}

// Headroom returns the maximum prompt token count the snapshot allows.
func (c *Checker) Headroom() int {
	return c.limits.MaxTokens - c.limits.SynthesisReserve
}

// Count returns the token count of prompt.
func (c *Checker) Count(prompt string) (int, error) {
	codec, err := c.getCodec()
	if err != nil {
		return 0, fmt.Errorf("get tokenizer codec: %w", err)
	}
	ids, _, err := codec.Encode(prompt)
	if err != nil {
		return 0, fmt.Errorf("encode prompt: %w", err)
	}
	return len(ids), nil
}

// Check returns the prompt's token count, failing with ErrOverBudget when it
// exceeds the headroom.
func (c *Checker) Check(prompt string) (int, error) {
	count, err := c.Count(prompt)
	if err != nil {
		return 0, err
	}
	if max := c.Headroom(); count > max {
		return count, fmt.Errorf("%w: %d tokens, limit %d", ErrOverBudget, count, max)
	}
	return count, nil
}
