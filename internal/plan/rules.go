package plan

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"bundle-planner/internal/buildconf"
	"bundle-planner/internal/common"
	"bundle-planner/internal/diagnostic"
	"bundle-planner/internal/registry"
	"bundle-planner/internal/suggest"
)

func resolveRules(ctx string, reg *registry.Registry, rules []buildconf.TransformRule) ([]ResolvedRule, []error) {
	if len(rules) == 0 {
		return nil, nil
	}

	out := make([]ResolvedRule, 0, len(rules))

	var errs []error

	for i := range rules {
		rr, ruleErrs := resolveRule(ctx, reg, i, &rules[i])
		if len(ruleErrs) > 0 {
			errs = append(errs, ruleErrs...)
			continue
		}

		out = append(out, rr)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return out, nil
}

func resolveRule(ctx string, reg *registry.Registry, idx int, rule *buildconf.TransformRule) (ResolvedRule, []error) {
	field := fmt.Sprintf("module.rules[%d]", idx)
	rr := ResolvedRule{
		Index:   idx,
		Test:    append([]string(nil), rule.Test...),
		Exclude: append([]string(nil), rule.Exclude...),
		Include: append([]string(nil), rule.Include...),
	}

	var errs []error

	rr.test, errs = compileRegexps(rule.Test, field+".test", errs)
	rr.exclude, errs = compileRegexps(rule.Exclude, field+".exclude", errs)

	for i, pattern := range rule.Include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidPattern,
				fmt.Sprintf("%s.include[%d]", field, i), "invalid glob %q: %v", pattern, err))

			continue
		}

		rr.include = append(rr.include, g)
	}

	specs, ok := rule.LoaderSpecs()
	if !ok {
		errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidValue, field,
			"rule sets both loader and use"))
	}

	declared := make([]ResolvedLoader, 0, len(specs))

	for i, spec := range specs {
		loaderField := fmt.Sprintf("%s.use[%d]", field, i)
		if strings.TrimSpace(spec.Loader) == "" {
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidValue, loaderField, "loader name is empty"))
			continue
		}

		kind, found := reg.Loader(spec.Loader)
		if !found {
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonUnknownKind, loaderField,
				"unknown loader %q%s", spec.Loader, suggest.Hint(spec.Loader, kindNames(reg.Loaders()))))

			continue
		}

		opts, optErrs := validateOptions(ctx, kind, spec.Options, loaderField+".options")
		if len(optErrs) > 0 {
			errs = append(errs, optErrs...)
			continue
		}

		declared = append(declared, ResolvedLoader{Name: kind.Name, Options: opts})
	}

	if len(errs) > 0 {
		return ResolvedRule{}, errs
	}

	// The loader closest to the file runs first.
	rr.Loaders = common.Reversed(declared)

	return rr, nil
}

func compileRegexps(patterns []string, field string, errs []error) ([]*regexp.Regexp, []error) {
	var out []*regexp.Regexp

	for i, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidPattern,
				fmt.Sprintf("%s[%d]", field, i), "invalid regular expression %q: %v", p, err))

			continue
		}

		out = append(out, re)
	}

	return out, errs
}

// Matches reports whether the rule applies to file: some test pattern
// matches (a rule without tests matches everything), no exclude pattern
// matches, and at least one include glob matches when any are set.
func (r *ResolvedRule) Matches(file string) bool {
	file = filepath.ToSlash(file)

	if len(r.test) > 0 && !anyRegexp(r.test, file) {
		return false
	}

	if anyRegexp(r.exclude, file) {
		return false
	}

	if len(r.include) == 0 {
		return true
	}

	for _, g := range r.include {
		if g.Match(file) {
			return true
		}
	}

	return false
}

func anyRegexp(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}

	return false
}

// Match returns the rule that applies to file: the first matching rule in
// declaration order.
func (p *BuildPlan) Match(file string) (ResolvedRule, bool) {
	for i := range p.Rules {
		if p.Rules[i].Matches(file) {
			return p.Rules[i], true
		}
	}

	return ResolvedRule{}, false
}

// LoadersFor returns the loader names to run on file in execution order,
// or nil when no rule applies.
func (p *BuildPlan) LoadersFor(file string) []string {
	rule, ok := p.Match(file)
	if !ok {
		return nil
	}

	return rule.LoaderNames()
}
