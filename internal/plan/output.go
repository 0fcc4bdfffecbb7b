package plan

import (
	"path/filepath"
	"regexp"
	"strings"

	"bundle-planner/internal/buildconf"
	"bundle-planner/internal/diagnostic"
)

var placeholderRe = regexp.MustCompile(`\[([^\[\]]*)\]`)

// Filename template placeholders. Hash placeholders accept a ":N" length.
var (
	plainPlaceholders = map[string]struct{}{
		"name": {}, "id": {}, "ext": {}, "query": {},
	}
	hashPlaceholders = map[string]struct{}{
		"contenthash": {}, "chunkhash": {}, "fullhash": {}, "hash": {},
	}
	hashLengthRe = regexp.MustCompile(`^[1-9][0-9]*$`)
)

func resolveOutput(ctx string, out buildconf.Output) (OutputDescriptor, []error) {
	var errs []error

	dir := out.Path

	switch {
	case strings.TrimSpace(dir) == "":
		errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidPath, "output.path", "output directory is empty"))
	case strings.ContainsRune(dir, 0):
		errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidPath, "output.path", "output directory contains a NUL byte"))
	default:
		dir = joinContext(ctx, dir)
	}

	if err := checkFilename(out.Filename); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return OutputDescriptor{}, errs
	}

	return OutputDescriptor{
		Directory:  dir,
		Filename:   out.Filename,
		File:       filepath.Join(dir, out.Filename),
		PublicPath: out.PublicPath,
	}, nil
}

func checkFilename(name string) error {
	const field = "output.filename"

	if strings.TrimSpace(name) == "" {
		return diagnostic.Errorf(diagnostic.ReasonInvalidPath, field, "output filename is empty")
	}

	if strings.ContainsRune(name, 0) {
		return diagnostic.Errorf(diagnostic.ReasonInvalidPath, field, "output filename contains a NUL byte")
	}

	if filepath.IsAbs(name) {
		return diagnostic.Errorf(diagnostic.ReasonInvalidPath, field, "output filename %q must be relative to output.path", name)
	}

	cleaned := filepath.ToSlash(filepath.Clean(name))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return diagnostic.Errorf(diagnostic.ReasonInvalidPath, field, "output filename %q escapes the output directory", name)
	}

	for _, m := range placeholderRe.FindAllStringSubmatch(name, -1) {
		if !validPlaceholder(m[1]) {
			return diagnostic.Errorf(diagnostic.ReasonInvalidPath, field, "unknown placeholder %q in output filename", m[0])
		}
	}

	return nil
}

func validPlaceholder(p string) bool {
	name, length, hasLength := strings.Cut(p, ":")

	if _, ok := plainPlaceholders[name]; ok {
		return !hasLength
	}

	if _, ok := hashPlaceholders[name]; ok {
		return !hasLength || hashLengthRe.MatchString(length)
	}

	return false
}

// OutputFile returns the output file path for the named chunk, with the
// [name] placeholder filled in. Hash placeholders are left for the bundler.
func (p *BuildPlan) OutputFile(chunk string) string {
	return strings.ReplaceAll(p.Output.File, "[name]", chunk)
}
