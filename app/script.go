package app

import (
	"fmt"
	"strings"

	"sparkcalc/calc"

	"github.com/spf13/afero"
)

// A script is a list of whitespace-separated button labels, one press each.
// "@rad" and "@deg" switch the angle mode, and "#" starts a comment that
// runs to the end of the line.
//
//	7 + 8 = =    # 30
//	@deg 0 cos

// LoadScript reads and validates a script from fs.
func LoadScript(fs afero.Fs, path string) ([]string, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("app: read script: %w", err)
	}
	steps, err := ParseScript(string(b))
	if err != nil {
		return nil, fmt.Errorf("app: %s: %w", path, err)
	}
	return steps, nil
}

// ParseScript splits s into presses, rejecting unknown labels.
func ParseScript(s string) ([]string, error) {
	var steps []string
	for i, line := range strings.Split(s, "\n") {
		if j := strings.IndexByte(line, '#'); j >= 0 {
			line = line[:j]
		}
		for _, tok := range strings.Fields(line) {
			if mode, ok := strings.CutPrefix(tok, "@"); ok {
				if _, err := calc.ParseAngleMode(mode); err != nil {
					return nil, fmt.Errorf("line %d: %w", i+1, err)
				}
			} else if _, err := calc.ParseIntent(tok); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			steps = append(steps, tok)
		}
	}
	return steps, nil
}
