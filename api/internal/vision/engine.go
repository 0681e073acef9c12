// Package vision abstracts the vision-capable model providers behind a single
// Engine interface. Each provider lives in its own subpackage.
package vision

import (
	"context"
	"errors"
	"strings"
)

type Engine interface {
	Name() string
	GetModel() string
	// Evaluate sends the prompt with one attached image and returns the raw
	// model text. Validation of that text is the caller's job.
	Evaluate(ctx context.Context, prompt string, image []byte, mime string) (string, error)
}

type Engines struct {
	OpenAI  Engine
	Gemini  Engine
	Default string
}

func (e *Engines) GetEngine(name string) (Engine, error) {
	if strings.TrimSpace(name) == "" {
		name = e.Default
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gpt", "openai":
		if e.OpenAI == nil {
			return nil, errors.New("openai engine is not configured")
		}
		return e.OpenAI, nil
	case "gemini":
		if e.Gemini == nil {
			return nil, errors.New("gemini engine is not configured")
		}
		return e.Gemini, nil
	default:
		return nil, errors.New("unknown engine; use 'openai' or 'gemini'")
	}
}
