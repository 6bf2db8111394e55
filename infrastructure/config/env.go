package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// envPrefix is prepended to a run option's name to form its override
// lookup: max_tries becomes HTN_MAX_TRIES, uppercased.
const envPrefix = "HTN_"

// envExpander expands ${VAR}, ${VAR:-default}, and ${VAR:?msg} references
// inside a scenario file's raw bytes before YAML parsing, the same
// bracket/simple two-pass approach the teacher's env.go uses.
type envExpander struct {
	strict  bool
	missing []string
}

var (
	bracketPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-[^}]*|:\?[^}]*)?\}`)
	simplePattern  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// Expand substitutes environment variable references in input.
func (e *envExpander) Expand(input string) (string, error) {
	e.missing = nil

	result := bracketPattern.ReplaceAllStringFunc(input, func(match string) string {
		inner := match[2 : len(match)-1]
		parts := strings.SplitN(inner, ":", 2)
		varName := parts[0]
		var modifier string
		if len(parts) > 1 {
			modifier = parts[1]
		}

		value, exists := os.LookupEnv(varName)
		switch {
		case strings.HasPrefix(modifier, "-"):
			if !exists || value == "" {
				return modifier[1:]
			}
		case strings.HasPrefix(modifier, "?"):
			if !exists || value == "" {
				e.missing = append(e.missing, fmt.Sprintf("%s: %s", varName, modifier[1:]))
				return match
			}
		default:
			if !exists {
				if e.strict {
					e.missing = append(e.missing, varName)
				}
				return ""
			}
		}
		return value
	})

	result = simplePattern.ReplaceAllStringFunc(result, func(match string) string {
		varName := match[1:]
		value, exists := os.LookupEnv(varName)
		if !exists {
			if e.strict {
				e.missing = append(e.missing, varName)
			}
			return ""
		}
		return value
	})

	if len(e.missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingEnvVar, strings.Join(e.missing, ", "))
	}
	return result, nil
}

// applyRunOverrides layers HTN_-prefixed environment variables on top of a
// scenario's run: block, for overriding tunables in CI/deployment without
// editing the scenario file (HTN_MAX_TRIES, HTN_MAX_DEPTH, HTN_VERBOSE,
// HTN_VERIFY_GOALS, HTN_ACT).
func applyRunOverrides(run RunOptions) RunOptions {
	if v, ok := lookupInt(envPrefix + "MAX_TRIES"); ok {
		run.MaxTries = v
	}
	if v, ok := lookupInt(envPrefix + "MAX_DEPTH"); ok {
		run.MaxDepth = v
	}
	if v, ok := lookupInt(envPrefix + "VERBOSE"); ok {
		run.Verbose = v
	}
	if v, ok := lookupBool(envPrefix + "VERIFY_GOALS"); ok {
		run.VerifyGoals = v
	}
	if v, ok := lookupBool(envPrefix + "ACT"); ok {
		run.Act = v
	}
	return run
}

func lookupInt(name string) (int, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func lookupBool(name string) (bool, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return b, true
}
