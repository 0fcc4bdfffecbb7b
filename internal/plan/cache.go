package plan

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru"
	"github.com/zeebo/blake3"

	"bundle-planner/internal/buildconf"
	"bundle-planner/internal/common"
)

// Cache memoizes successful resolutions by configuration content. Every
// call returns its own copy of the cached plan: a caller that modifies the
// exported slices or option maps of its plan does not affect other callers
// or later hits. Compiled matchers are shared. Failed resolutions are not
// cached.
type Cache struct {
	resolver *Resolver
	plans    *lru.Cache
}

// NewCache wraps r with a cache holding at most size plans. A nil resolver
// selects the built-in kinds.
func NewCache(r *Resolver, size int) (*Cache, error) {
	if r == nil {
		r = defaultResolver
	}

	plans, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan cache: %w", err)
	}

	return &Cache{resolver: r, plans: plans}, nil
}

// Resolve returns the cached plan for cfg or resolves and caches it.
func (c *Cache) Resolve(cfg *buildconf.BuildConfig) (*BuildPlan, error) {
	if cfg == nil {
		return c.resolver.Resolve(nil)
	}

	data, err := buildconf.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	key := blake3.Sum256(data)

	if v, ok := c.plans.Get(key); ok {
		return v.(*BuildPlan).clone(), nil
	}

	p, err := c.resolver.Resolve(cfg)
	if err != nil {
		return nil, err
	}

	c.plans.Add(key, p)

	return p.clone(), nil
}

// Len reports how many plans are cached.
func (c *Cache) Len() int {
	return c.plans.Len()
}

// Purge drops every cached plan.
func (c *Cache) Purge() {
	c.plans.Purge()
}

// clone copies every exported slice and option map of p. The compiled
// matchers of each rule are read-only and stay shared.
func (p *BuildPlan) clone() *BuildPlan {
	out := *p
	out.Aliases = slices.Clone(p.Aliases)

	if p.Rules != nil {
		out.Rules = make([]ResolvedRule, len(p.Rules))
		for i, r := range p.Rules {
			r.Test = slices.Clone(r.Test)
			r.Exclude = slices.Clone(r.Exclude)
			r.Include = slices.Clone(r.Include)

			loaders := make([]ResolvedLoader, len(r.Loaders))
			for j, l := range r.Loaders {
				loaders[j] = ResolvedLoader{Name: l.Name, Options: common.CloneMap(l.Options)}
			}

			r.Loaders = loaders
			out.Rules[i] = r
		}
	}

	if p.Plugins != nil {
		out.Plugins = make([]ResolvedPlugin, len(p.Plugins))
		for i, pl := range p.Plugins {
			out.Plugins[i] = ResolvedPlugin{
				Name:    pl.Name,
				Options: common.CloneMap(pl.Options),
				Hooks:   slices.Clone(pl.Hooks),
			}
		}
	}

	return &out
}
