package srv

import (
	"context"
	"errors"
	"os"

	"github.com/liveem/livem-core/pkg/ai"
	"github.com/liveem/livem-core/pkg/ai/gemini"
	"github.com/liveem/livem-core/pkg/ai/openai"
)

// ReviewAI produces one block of prose from one composed prompt. That is
// the whole external AI boundary of this app: no streaming, no retries.
type ReviewAI interface {
	Generate(ctx context.Context, prompt string) (ai.GenerateResponse, error)
	Lang() string
}

type AIConfig struct {
	Gemini Gemini `toml:"gemini"`
	Openai Openai `toml:"openai"`
	// Usage list
	// review
	Usage map[string]string `toml:"usage"`
}

func (c *AIConfig) FromENV() {
	c.Usage = make(map[string]string)
	c.Usage["review"] = os.Getenv("LIVEM_AI_USAGE_REVIEW")

	c.Gemini.FromENV()
	c.Openai.FromENV()
}

type Gemini struct {
	Token     string `toml:"token"`
	ChatModel string `toml:"chat_model"`
}

func (c *Gemini) FromENV() {
	c.Token = os.Getenv("LIVEM_AI_GEMINI_TOKEN")
	c.ChatModel = os.Getenv("LIVEM_AI_GEMINI_CHAT_MODEL")
}

func (cfg *Gemini) Install(root *AI) {
	if cfg.Token == "" {
		return
	}
	root.Install(gemini.NAME, gemini.New(cfg.Token, ai.ModelName{ChatModel: cfg.ChatModel}))
}

type Openai struct {
	Token     string `toml:"token"`
	Endpoint  string `toml:"endpoint"`
	ChatModel string `toml:"chat_model"`
}

func (c *Openai) FromENV() {
	c.Token = os.Getenv("LIVEM_AI_OPENAI_TOKEN")
	c.Endpoint = os.Getenv("LIVEM_AI_OPENAI_ENDPOINT")
	c.ChatModel = os.Getenv("LIVEM_AI_OPENAI_CHAT_MODEL")
}

func (cfg *Openai) Install(root *AI) {
	if cfg.Token == "" {
		return
	}
	root.Install(openai.NAME, openai.New(cfg.Token, cfg.Endpoint, ai.ModelName{ChatModel: cfg.ChatModel}))
}

type AI struct {
	chatDrivers map[string]ReviewAI

	chatUsage   map[string]ReviewAI
	chatDefault ReviewAI
}

var ERROR_NO_AI_DRIVER = errors.New("no ai driver configured")

// Install registers a driver. The first installed driver becomes the
// default until the usage table says otherwise.
func (s *AI) Install(name string, driver ReviewAI) {
	s.chatDrivers[name] = driver
	if s.chatDefault == nil {
		s.chatDefault = driver
	}
}

func (s *AI) Generate(ctx context.Context, prompt string) (ai.GenerateResponse, error) {
	if d := s.chatUsage["review"]; d != nil {
		return d.Generate(ctx, prompt)
	}
	if s.chatDefault == nil {
		return ai.GenerateResponse{}, ERROR_NO_AI_DRIVER
	}
	return s.chatDefault.Generate(ctx, prompt)
}

func (s *AI) Lang() string {
	if d := s.chatUsage["review"]; d != nil {
		return d.Lang()
	}
	if s.chatDefault == nil {
		return ai.MODEL_BASE_LANGUAGE_EN
	}
	return s.chatDefault.Lang()
}

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		a := &AI{
			chatDrivers: make(map[string]ReviewAI),
			chatUsage:   make(map[string]ReviewAI),
		}

		cfg.Gemini.Install(a)
		cfg.Openai.Install(a)

		for usage, name := range cfg.Usage {
			if d := a.chatDrivers[name]; d != nil {
				a.chatUsage[usage] = d
			}
		}

		s.ai = a
	}
}
