// File: options.go
// Title: Text Construction Options
// Description: Bundles the allocator, surrogate policy and locale used to
//              construct Texts, and builds them from a loaded configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-11
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-11 v0.1.0: Initial implementation

package textbuf

import (
	"golang.org/x/text/language"

	"github.com/msto63/textkit/foundation/core/config"
	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/utf8x"
)

// Configuration keys read by OptionsFromConfig
const (
	KeyMaxBytes   = "allocator.max_bytes"
	KeySurrogates = "validation.surrogates"
	KeyLocale     = "format.locale"
)

// Options carries the settings applied to every Text built through it
type Options struct {
	Allocator  Allocator
	Surrogates utf8x.SurrogatePolicy
	Locale     language.Tag
}

// DefaultOptions returns the Go heap allocator, strict validation and the
// undetermined locale
func DefaultOptions() Options {
	return Options{
		Allocator:  DefaultAllocator,
		Surrogates: utf8x.SurrogatesReject,
		Locale:     language.Und,
	}
}

// ConfigRules returns the validation rules for the keys OptionsFromConfig reads
func ConfigRules() config.ValidationRules {
	return config.ValidationRules{
		KeyMaxBytes:   {Type: "int", Min: config.IntPtr(0), Max: config.IntPtr(MaxAlloc)},
		KeySurrogates: {Type: "string", OneOf: []string{"strict", "reject", "lenient", "allow", "wtf8", "wtf-8"}},
		KeyLocale:     {Type: "string"},
	}
}

// OptionsFromConfig reads the allocator budget, surrogate policy and locale.
// A positive allocator.max_bytes selects a LimitedAllocator which logs
// refused requests to logger when it is not nil.
func OptionsFromConfig(cfg *config.Config, logger *log.Logger) (Options, error) {
	opts := DefaultOptions()
	if cfg == nil {
		return opts, nil
	}

	if err := cfg.Validate(ConfigRules()).Err(); err != nil {
		return opts, err
	}

	policy, err := utf8x.ParseSurrogatePolicy(cfg.GetString(KeySurrogates))
	if err != nil {
		return opts, err
	}
	opts.Surrogates = policy

	if loc := cfg.GetString(KeyLocale); loc != "" {
		tag, err := language.Parse(loc)
		if err != nil {
			return opts, tkerror.Wrap(err, "invalid locale").
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("textbuf.OptionsFromConfig").
				WithDetail("locale", loc)
		}
		opts.Locale = tag
	}

	if limit := cfg.GetInt(KeyMaxBytes, 0); limit > 0 {
		la := NewLimitedAllocator(nil, limit)
		if logger != nil {
			la.SetLogger(logger.WithName("allocator"))
		}
		opts.Allocator = la
	}

	return opts, nil
}

// Empty returns an empty Text with these options
func (o Options) Empty() *Text {
	return Empty(o.Allocator).WithPolicy(o.Surrogates)
}

// New returns a Text holding a copy of p
func (o Options) New(p []byte) (*Text, error) {
	return o.apply(New(o.Allocator, p))
}

// NewString returns a Text holding a copy of s
func (o Options) NewString(s string) (*Text, error) {
	return o.apply(NewString(o.Allocator, s))
}

// NewFormatted renders with the options' locale; the undetermined locale
// renders like fmt
func (o Options) NewFormatted(format string, args ...interface{}) (*Text, error) {
	if o.Locale == language.Und {
		return o.apply(NewFormatted(o.Allocator, format, args...))
	}
	return o.apply(NewFormattedLocale(o.Allocator, o.Locale, format, args...))
}

func (o Options) apply(t *Text, err error) (*Text, error) {
	if err != nil {
		return nil, err
	}
	return t.WithPolicy(o.Surrogates), nil
}
