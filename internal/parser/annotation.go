package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// TypeAnnotation holds a parsed @bitfield annotation
type TypeAnnotation struct {
	Include string // Wrapper type whose field set is shared into this one (optional)
}

// ParseAnnotation parses a @bitfield annotation from comment text
//
// Expected format:
//
//	// @bitfield
//	// @bitfield include=LinkStatus
//
// Params are space-separated key=value pairs.
func ParseAnnotation(comment string) (*TypeAnnotation, error) {
	re := regexp.MustCompile(`^@bitfield(?:\s+(.+))?$`)
	matches := re.FindStringSubmatch(strings.TrimSpace(comment))
	if matches == nil {
		return nil, fmt.Errorf("no @bitfield annotation found")
	}

	anno := &TypeAnnotation{}
	if matches[1] == "" {
		return anno, nil
	}

	pairRe := regexp.MustCompile(`(\w+)=([\w.]+)`)
	for _, part := range strings.Fields(matches[1]) {
		pair := pairRe.FindStringSubmatch(part)
		if pair == nil || pair[0] != part {
			return nil, fmt.Errorf("invalid parameter: %s", part)
		}

		switch pair[1] {
		case "include":
			anno.Include = pair[2]
		default:
			return nil, fmt.Errorf("unknown parameter: %s", pair[1])
		}
	}

	return anno, nil
}

// FindAnnotation searches comment lines for a @bitfield annotation.
// Returns the annotation and true if found. A malformed @bitfield line is
// reported as an error rather than skipped so that schema mistakes fail at
// generation time, not silently.
func FindAnnotation(comments []string) (*TypeAnnotation, bool, error) {
	for _, comment := range comments {
		if !strings.HasPrefix(strings.TrimSpace(comment), "@bitfield") {
			continue
		}
		anno, err := ParseAnnotation(comment)
		if err != nil {
			return nil, true, err
		}
		return anno, true, nil
	}
	return nil, false, nil
}

// CleanComment removes comment markers from a line
// "// @bitfield include=X" → "@bitfield include=X"
// "/* @bitfield */" → "@bitfield"
func CleanComment(line string) string {
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, "//") {
		return strings.TrimSpace(strings.TrimPrefix(line, "//"))
	}

	if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		return strings.TrimSpace(line)
	}

	return line
}
