// Package shortcode draws the 3-character redirect codes assigned to bookmarks.
package shortcode

import (
	"context"
	"errors"
	"fmt"

	nanoid "github.com/jaevor/go-nanoid"
)

// Alphabet holds the 62 symbols a code is drawn from.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Length is the fixed code length: 62^3 = 238,328 possible codes.
const Length = 3

// DefaultMaxAttempts bounds the number of draws per Generate call.
const DefaultMaxAttempts = 10

// reserved codes collide with top-level routes and are never handed out.
var reserved = map[string]bool{"api": true}

// ErrExhausted is returned when every draw collided with a stored code.
var ErrExhausted = errors.New("short code space exhausted")

//go:generate mockgen -source=shortcode.go -destination=shortcode_mock.go -package=shortcode

// ExistenceChecker reports whether a code is already assigned.
type ExistenceChecker interface {
	ExistsByShortCode(ctx context.Context, code string) (bool, error)
}

// Generator produces codes that are unique among stored bookmarks at draw time.
type Generator struct {
	checker     ExistenceChecker
	draw        func() string
	maxAttempts int
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts overrides DefaultMaxAttempts. Non-positive values are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithDrawFunc replaces the random source.
func WithDrawFunc(draw func() string) Option {
	return func(g *Generator) {
		g.draw = draw
	}
}

// New creates a Generator backed by a uniform crypto/rand draw over Alphabet.
func New(checker ExistenceChecker, opts ...Option) (*Generator, error) {
	draw, err := nanoid.CustomASCII(Alphabet, Length)
	if err != nil {
		return nil, fmt.Errorf("init short code source: %w", err)
	}

	g := &Generator{
		checker:     checker,
		draw:        draw,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate draws codes until one is free or the attempt budget runs out.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		code := g.draw()
		if reserved[code] {
			continue
		}

		exists, err := g.checker.ExistsByShortCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check short code %q: %w", code, err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrExhausted, g.maxAttempts)
}

// IsValid checks that code has the generator's shape.
func IsValid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !isAlphanumeric(code[i]) {
			return false
		}
	}
	return true
}

func isAlphanumeric(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
