package verse

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// ErrGeneration marks failures of the external content provider.
var ErrGeneration = errors.New("verse generation failed")

const (
	// fallbackReference is used when the reference-selection call fails.
	fallbackReference = "Salmos 23:1"

	imagePromptPrefix = "ethereal divine light, heavenly clouds, golden rays, peaceful bright atmosphere, religious spiritual art, masterpiece, "
	imagePromptChars  = 30
	imageSeedMax      = 999999
)

var referencePrefix = regexp.MustCompile(`(?i)^vers[íi]culo:\s*`)

// ChatClient performs one chat completion. temperature < 0 uses the
// provider default.
type ChatClient interface {
	Complete(ctx context.Context, system, user string, temperature float64) (string, error)
}

// Generator produces a fresh verse artifact for a (slot, language, date)
// triple through three sequential completion calls plus a deterministic
// image-URL construction.
type Generator struct {
	chat ChatClient
	log  zerolog.Logger
}

func NewGenerator(chat ChatClient, log zerolog.Logger) *Generator {
	return &Generator{
		chat: chat,
		log:  log.With().Str("component", "generator").Logger(),
	}
}

func (g *Generator) Generate(ctx context.Context, slot Slot, lang Language, date string) (*Verse, error) {
	langPrompts, ok := prompts[lang]
	if !ok {
		return nil, fmt.Errorf("%w: no prompts for language %q", ErrGeneration, lang)
	}

	reference := g.pickReference(ctx, slot, date)

	reference, text, err := g.fetchText(ctx, langPrompts.BiblePrompt, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch verse text: %v", ErrGeneration, err)
	}

	imageURL := buildImageURL(text)

	explanation, err := g.fetchExplanation(ctx, langPrompts.PastorPrompt, reference, text)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch explanation: %v", ErrGeneration, err)
	}

	return &Verse{
		Reference:   reference,
		Text:        text,
		Explanation: explanation,
		ImageURL:    imageURL,
		Language:    lang,
	}, nil
}

// pickReference asks the provider for a fresh verse reference. A failure
// here is not fatal: the fallback reference is used instead.
func (g *Generator) pickReference(ctx context.Context, slot Slot, date string) string {
	salt := randomSalt()
	system := fmt.Sprintf(
		"You are a Bible Verse Selector. Select a UNIQUE and inspiring Bible Verse reference for %s (%s). Salt: %s. Return ONLY the reference. NEVER pick Zefanías 3:17, Salmo 23:1, or Juan 3:16.",
		date, slot, salt,
	)
	user := fmt.Sprintf("Pick a totally new verse for %s of %s. Be creative. ID: %s", slot, date, salt)

	raw, err := g.chat.Complete(ctx, system, user, 1.0)
	if err != nil {
		g.log.Warn().Err(err).Msg("using fallback verse reference")
		return fallbackReference
	}

	return referencePrefix.ReplaceAllString(strings.TrimSpace(raw), "")
}

// fetchText retrieves the verse text in the target translation. The
// provider is told to answer "ref|text"; when the separator is missing the
// whole payload is kept as text and the requested reference stands. That is
// the intended fallback for malformed output, not an error.
func (g *Generator) fetchText(ctx context.Context, biblePrompt, reference string) (string, string, error) {
	raw, err := g.chat.Complete(ctx, biblePrompt, "Cita: "+reference, 0.1)
	if err != nil {
		return "", "", err
	}

	content := strings.ReplaceAll(strings.TrimSpace(raw), "*", "")
	if before, after, found := strings.Cut(content, "|"); found {
		return strings.TrimSpace(before), strings.TrimSpace(after), nil
	}
	return reference, content, nil
}

func (g *Generator) fetchExplanation(ctx context.Context, pastorPrompt, reference, text string) (string, error) {
	user := fmt.Sprintf("Versículo: %s - %q", reference, text)
	raw, err := g.chat.Complete(ctx, pastorPrompt, user, -1)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(strings.TrimSpace(raw), "*", ""), nil
}

func buildImageURL(text string) string {
	prompt := url.PathEscape(imagePromptPrefix + firstRunes(text, imagePromptChars))
	seed := rand.Intn(imageSeedMax)
	return fmt.Sprintf("https://pollinations.ai/p/%s?width=800&height=450&seed=%d&model=flux&nologo=true", prompt, seed)
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

const saltAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSalt() string {
	b := make([]byte, 7)
	for i := range b {
		b[i] = saltAlphabet[rand.Intn(len(saltAlphabet))]
	}
	return string(b)
}
