// File: format.go
// Title: Formatted Construction
// Description: Formatters render a printf-style template before the result
//              is copied into a Text. Templates are checked first so that a
//              verb without an operand or an operand without a verb is
//              reported as a FormatError instead of fmt's %!v(MISSING)
//              markers ending up in the text. The rendered output is
//              checked as well, which catches operands of the wrong type
//              and bad argument indexes.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-07
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Locale printers from golang.org/x/text/message
// - 2026-10-15 v0.3.0: Reject output carrying fmt error markers

package textbuf

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

// Formatter renders a template with its arguments
type Formatter interface {
	Format(format string, args ...interface{}) (string, error)
}

// FormatterFunc adapts a function to Formatter
type FormatterFunc func(format string, args ...interface{}) (string, error)

// Format implements Formatter
func (f FormatterFunc) Format(format string, args ...interface{}) (string, error) {
	return f(format, args...)
}

// SprintfFormatter renders with fmt.Sprintf after checking the template
type SprintfFormatter struct{}

// Format implements Formatter
func (SprintfFormatter) Format(format string, args ...interface{}) (string, error) {
	if err := CheckTemplate(format, len(args)); err != nil {
		return "", err
	}
	return checkRendered(format, fmt.Sprintf(format, args...), args)
}

// LocaleFormatter renders with a golang.org/x/text message printer, so
// numbers are grouped the way the locale expects
type LocaleFormatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocaleFormatter returns a formatter for tag
func NewLocaleFormatter(tag language.Tag) *LocaleFormatter {
	return &LocaleFormatter{tag: tag, printer: message.NewPrinter(tag)}
}

// Tag returns the formatter's locale
func (f *LocaleFormatter) Tag() language.Tag {
	return f.tag
}

// Format implements Formatter
func (f *LocaleFormatter) Format(format string, args ...interface{}) (string, error) {
	if err := CheckTemplate(format, len(args)); err != nil {
		return "", err
	}
	return checkRendered(format, f.printer.Sprintf(format, args...), args)
}

// CheckTemplate verifies that format consumes exactly nargs operands. A
// '*' width or precision consumes an operand of its own. Templates using
// explicit argument indexes such as %[2]d are left to the check of the
// rendered output.
func CheckTemplate(format string, nargs int) error {
	verbs, indexed, err := countVerbs(format)
	if err != nil {
		return err
	}
	if indexed || verbs == nargs {
		return nil
	}

	problem := "missing operands"
	if nargs > verbs {
		problem = "extra operands"
	}
	return tkerror.Newf("template has %d verbs but %d operands (%s)", verbs, nargs, problem).
		WithCode(tkerror.CodeFormatFailed).
		WithDetail("verbs", verbs).
		WithDetail("args", nargs)
}

// badVerbMarker starts every error fmt writes into its output, such as
// %!d(string=x), %!(EXTRA ...) or %!s(BADINDEX)
const badVerbMarker = "%!"

// checkRendered fails when out holds more fmt error markers than the
// template and the operands account for
func checkRendered(format, out string, args []interface{}) (string, error) {
	markers := strings.Count(out, badVerbMarker)
	allowed := strings.Count(format, badVerbMarker)
	if markers <= allowed {
		return out, nil
	}
	for _, arg := range args {
		allowed += strings.Count(fmt.Sprint(arg), badVerbMarker)
	}
	if markers <= allowed {
		return out, nil
	}
	return "", tkerror.Newf("template could not render its operands: %q", out).
		WithCode(tkerror.CodeFormatFailed).
		WithDetail("markers", markers-allowed)
}

func countVerbs(format string) (verbs int, indexed bool, err error) {
	end := len(format)
	for i := 0; i < end; i++ {
		if format[i] != '%' {
			continue
		}
		start := i
		i++
		if i < end && format[i] == '%' {
			continue
		}

		for i < end && strings.IndexByte("+-# 0", format[i]) >= 0 {
			i++
		}
		if i < end && format[i] == '[' {
			return 0, true, nil
		}

		if i < end && format[i] == '*' {
			verbs++
			i++
		} else {
			for i < end && format[i] >= '0' && format[i] <= '9' {
				i++
			}
		}

		if i < end && format[i] == '.' {
			i++
			if i < end && format[i] == '[' {
				return 0, true, nil
			}
			if i < end && format[i] == '*' {
				verbs++
				i++
			} else {
				for i < end && format[i] >= '0' && format[i] <= '9' {
					i++
				}
			}
		}

		if i < end && format[i] == '[' {
			return 0, true, nil
		}
		if i >= end {
			return 0, false, tkerror.Newf("dangling %% at offset %d", start).
				WithCode(tkerror.CodeFormatFailed).
				WithDetail("offset", start)
		}
		verbs++
	}
	return verbs, false, nil
}

func formatFailed(op, format string, cause error) error {
	return tkerrors.FormatFailed(tkerrors.ModuleTextbuf, op, format, cause)
}
