package reorganizer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/n2code/reorganizer/internal"
)

const baseScheme = "base:" + string(filepath.Separator) + string(filepath.Separator)

const dot string = "."
const dirSeparator = string(filepath.Separator)
const dotDirSeparator = dot + dirSeparator
const doubleDot = dot + dot
const doubleDotDirSeparator = doubleDot + dirSeparator

// displayablePath renders a path relative to the working directory captured at creation.
// Without a known working directory paths below the base are shown anchored.
func (r *reorganizer) displayablePath(absolutePath string) string {
	absolutePath = filepath.Clean(absolutePath)
	if r.wd == "" {
		return anchoredPath(absolutePath, r.layout.Base)
	}
	return pleasantPath(absolutePath, r.layout.Base, r.wd)
}

func anchoredPath(absolute string, base string) string {
	if absolute != base && !isChildOf(absolute, base) {
		return absolute
	}
	anchored, _ := filepath.Rel(base, absolute) //error impossible because both are rooted
	if anchored == dot {
		return baseScheme
	}
	return baseScheme + anchored
}

func isChildOf(child string, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	internal.AssertNoError(err, "paths should both be absolute")
	return !(rel == dot || rel == doubleDot || strings.HasPrefix(rel, doubleDotDirSeparator))
}

// pleasantPath turns an absolute path into something easily understandable from the current context.
// If the working directory is the base or inside it a relative path with leading "./" is emitted.
// If the current location is outside the base an anchored path with abbreviated base is printed.
// Targets outside the base are reflected unchanged.
func pleasantPath(absolute string, base string, wd string) string {
	if absolute != base && !isChildOf(absolute, base) {
		return absolute
	}
	if wdAboveBase := isChildOf(base, wd); wdAboveBase || (wd != base && !isChildOf(wd, base)) {
		return anchoredPath(absolute, base)
	}

	prefix := ""
	relative, _ := filepath.Rel(wd, absolute) //error impossible because both are rooted
	if relative == dot {
		return dot
	}
	if !strings.HasPrefix(relative, doubleDotDirSeparator) && relative != doubleDot {
		prefix = dotDirSeparator
	}
	return prefix + relative
}

// validateName checks that name is a single path segment which is neither "." nor "..".
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if name == dot || name == doubleDot {
		return fmt.Errorf("name not allowed: %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name must not contain path separators: %q", name)
	}
	return nil
}

// mustAbsFilepath calls filepath.Abs and asserts that it is successful
func mustAbsFilepath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		panic(err)
	}
	return abs
}
