package model

import "strings"

// DefaultIndicators are name fragments that usually belong to games,
// launchers and graphics runtimes.
var DefaultIndicators = []string{
	"game",
	"steam",
	"epic",
	"uplay",
	"origin",
	"riot",
	"valorant",
	"league",
	"csgo",
	"cs2",
	"dota",
	"apex",
	"fortnite",
	"minecraft",
	"roblox",
	"gta",
	"unity",
	"unreal",
	"dx11",
	"dx12",
	"vulkan",
}

// Classifier flags process names containing any of its indicator tokens,
// ignoring case.
type Classifier struct {
	indicators []string
}

// NewClassifier lowercases the tokens once and drops empty ones, since an
// empty token would match every name.
func NewClassifier(indicators []string) *Classifier {
	c := &Classifier{indicators: make([]string, 0, len(indicators))}
	for _, tok := range indicators {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		c.indicators = append(c.indicators, tok)
	}
	return c
}

// Classify reports whether name contains an indicator token.
func (c *Classifier) Classify(name string) bool {
	_, ok := c.Match(name)
	return ok
}

// Match returns the first indicator found in name.
func (c *Classifier) Match(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, tok := range c.indicators {
		if strings.Contains(lower, tok) {
			return tok, true
		}
	}
	return "", false
}

// Indicators returns a copy of the normalized token list.
func (c *Classifier) Indicators() []string {
	out := make([]string, len(c.indicators))
	copy(out, c.indicators)
	return out
}
