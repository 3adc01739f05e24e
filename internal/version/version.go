package version

import "github.com/fatih/color"

// Version information for the convsys CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.3.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored returns Version with its major, minor and patch parts colored.
// Versions that are not of the form X.Y.Z[-suffix] are returned unchanged.
func Colored(enabled bool) string {
	major, minor, patch, suffix, ok := split(Version)
	if !ok || !enabled {
		return Version
	}
	paint := func(c *color.Color, s string) string {
		c.EnableColor()
		return c.Sprint(s)
	}
	return paint(majorColor, major) + "." + paint(minorColor, minor) + "." + paint(patchColor, patch) + suffix
}

func split(v string) (major, minor, patch, suffix string, ok bool) {
	parts := [3]string{}
	rest := v
	for i := 0; i < 3; i++ {
		end := 0
		for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
			end++
		}
		if end == 0 {
			return "", "", "", "", false
		}
		parts[i] = rest[:end]
		rest = rest[end:]
		if i < 2 {
			if len(rest) == 0 || rest[0] != '.' {
				return "", "", "", "", false
			}
			rest = rest[1:]
		}
	}
	return parts[0], parts[1], parts[2], rest, true
}
