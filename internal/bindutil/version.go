package bindutil

import (
	"context"
	"fmt"
	"strings"

	version "github.com/hashicorp/go-version"
	"github.com/rohtau/rez/internal/executil"
	"github.com/rs/zerolog"
)

// ExtractOptions positions the version inside a tool's output.
type ExtractOptions struct {
	// LineIndex selects the stdout line carrying the version. Negative
	// values count from the last line.
	LineIndex int

	// WordIndex selects the word within that line. Negative values count
	// from the last word.
	WordIndex int

	// VersionRank caps how many version tokens are kept, so build or
	// vendor metadata after the semantic version is not treated as a
	// significant component. Bind modules override it per tool.
	VersionRank int
}

// DefaultExtractOptions returns the common case: first line, last word,
// three version tokens.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{LineIndex: 0, WordIndex: -1, VersionRank: 3}
}

// Extractor determines a tool's version by running it with a version
// flag and parsing the output heuristically.
type Extractor struct {
	runner executil.Runner
	logger *zerolog.Logger
	debug  bool
}

// NewExtractor creates an Extractor. The debug flag gates its diagnostic
// log lines.
func NewExtractor(r executil.Runner, log *zerolog.Logger, debug bool) *Extractor {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Extractor{runner: r, logger: log, debug: debug}
}

// Extract runs exepath with versionArgs and parses a structured version
// from the captured stdout. A non-zero exit yields ExecError carrying the
// exit code and stderr; any failure in the parse chain yields
// VersionParseError carrying the raw text. One invocation, one attempt -
// there is no fallback across alternative version flags.
func (x *Extractor) Extract(ctx context.Context, exepath string, versionArgs []string, opts ExtractOptions) (*version.Version, error) {
	res, err := x.runner.Run(ctx, append([]string{exepath}, versionArgs...))
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &ExecError{Exe: exepath, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	lines := strings.Split(strings.TrimSpace(res.Stdout), "\n")
	li, ok := normalizeIndex(opts.LineIndex, len(lines))
	if !ok {
		return nil, &VersionParseError{
			Raw: res.Stdout,
			Err: fmt.Errorf("no line at index %d in %d line(s) of output", opts.LineIndex, len(lines)),
		}
	}
	line := strings.TrimSpace(lines[li])

	if x.debug {
		x.logger.Debug().Str("line", line).Msg("extracting version from output")
	}

	words := strings.Fields(line)
	wi, ok := normalizeIndex(opts.WordIndex, len(words))
	if !ok {
		return nil, &VersionParseError{
			Raw: line,
			Err: fmt.Errorf("no word at index %d in %d word(s)", opts.WordIndex, len(words)),
		}
	}

	// Normalize "2.10.3-beta.7" style strings into tokens and cap them at
	// VersionRank.
	toks := strings.Fields(strings.NewReplacer(".", " ", "-", " ").Replace(words[wi]))
	rank := opts.VersionRank
	if rank > len(toks) {
		rank = len(toks)
	}
	if rank < 0 {
		rank = 0
	}
	strver := joinVersionTokens(toks[:rank])

	v, err := version.NewVersion(strver)
	if err != nil {
		return nil, &VersionParseError{Raw: line, Err: err}
	}

	if x.debug {
		x.logger.Debug().Str("version", v.String()).Msg("extracted version")
	}
	return v, nil
}

// CheckVersion verifies that a discovered version is within the allowed
// range. A nil or empty range accepts everything.
func CheckVersion(v *version.Version, rng version.Constraints) error {
	if len(rng) == 0 {
		return nil
	}
	if !rng.Check(v) {
		return &VersionRangeError{Version: v, Range: rng}
	}
	return nil
}

// joinVersionTokens builds a parseable version string from capped tokens.
// Leading numeric tokens form the dotted core; any remaining tokens
// become a pre-release suffix, so alphanumeric captures like
// ["2" "10" "3" "beta"] stay valid versions ("2.10.3-beta") instead of
// failing the numeric-core grammar.
func joinVersionTokens(toks []string) string {
	core := len(toks)
	for i, tok := range toks {
		if !isNumeric(tok) {
			core = i
			break
		}
	}
	if core == 0 || core == len(toks) {
		return strings.Join(toks, ".")
	}
	return strings.Join(toks[:core], ".") + "-" + strings.Join(toks[core:], ".")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalizeIndex resolves i against a sequence of length n, counting
// negative indices from the end.
func normalizeIndex(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
