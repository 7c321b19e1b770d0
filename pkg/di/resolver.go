package di

import (
	"github.com/modfold/bind/errors"
	"github.com/modfold/bind/pkg/logger"
)

// CandidateSupplier produces the candidate list for one resolution. It
// decouples the resolver from which search query built the list, so the
// resolver stays testable in isolation.
type CandidateSupplier func() []*Definition

// Resolve turns a candidate list plus its requesting context into exactly one
// definition or a typed failure. Three sequential gates:
//
//  1. Visibility filtering: when requester is present (resolution happens
//     while constructing another definition's dependencies), candidates its
//     CanSee rejects are dropped. Candidates existing but none surviving is a
//     scoping mistake, reported as NotVisible — distinct from having no
//     candidates at all. An absent requester (top-level resolution) skips the
//     gate.
//  2. Deduplication by identity, absorbing the intentional duplication
//     SearchAll produces when a definition matches as both primary and bound
//     type.
//  3. Cardinality: zero remaining fails NotFound; more than one fails
//     Ambiguous listing every candidate; exactly one succeeds — unless a
//     requesting path is given and the candidate's declaring module is not
//     visible from it, a second, module-to-module visibility check
//     independent of gate 1.
//
// queryName names the resolved type for diagnostics only.
func Resolve(queryName string, from Path, supply CandidateSupplier, requester *Definition) (*Definition, error) {
	candidates := supply()

	if requester != nil {
		visible := make([]*Definition, 0, len(candidates))
		for _, candidate := range candidates {
			if requester.Sees(candidate) {
				visible = append(visible, candidate)
			}
		}
		if len(candidates) > 0 && len(visible) == 0 {
			return nil, errors.ErrNotVisibleFromRequester(queryName, requester.String(), len(candidates)).
				WithContext("requesting_definition", requester)
		}
		candidates = visible
	}

	distinct := dedupeByIdentity(candidates)

	switch len(distinct) {
	case 0:
		return nil, errors.ErrDefinitionNotFound(queryName)
	case 1:
		candidate := distinct[0]
		if from != nil && candidate.Path != nil && !candidate.Path.IsVisible(from) {
			return nil, errors.ErrNotVisibleFromPath(queryName, candidate.Path.String(), from.String()).
				WithContext("definition", candidate)
		}
		return candidate, nil
	default:
		descriptions := make([]string, len(distinct))
		for i, candidate := range distinct {
			descriptions[i] = candidate.String()
		}
		return nil, errors.ErrAmbiguousDefinition(queryName, descriptions).
			WithContext("definitions", distinct)
	}
}

// dedupeByIdentity collapses the candidate list to its distinct members,
// first occurrence wins.
func dedupeByIdentity(candidates []*Definition) []*Definition {
	seen := make(map[string]struct{}, len(candidates))
	distinct := make([]*Definition, 0, len(candidates))
	for _, candidate := range candidates {
		key := candidate.IdentityKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, candidate)
	}
	return distinct
}

// ResolveType resolves the single definition satisfying t, querying the whole
// registry. The common entry point for unnamed lookups.
func (r *Registry) ResolveType(t TypeKey, from Path, requester *Definition) (*Definition, error) {
	return r.resolve(string(t), from, func() []*Definition { return r.SearchAll(t) }, requester)
}

// ResolveNamed resolves the single definition named name satisfying t.
func (r *Registry) ResolveNamed(name string, t TypeKey, from Path, requester *Definition) (*Definition, error) {
	return r.resolve(name+" ("+string(t)+")", from, func() []*Definition { return r.SearchByName(name, t) }, requester)
}

func (r *Registry) resolve(queryName string, from Path, supply CandidateSupplier, requester *Definition) (*Definition, error) {
	def, err := Resolve(queryName, from, supply, requester)
	if err != nil {
		r.logger.Debug("resolution failed",
			logger.String("query", queryName),
			logger.Error(err),
		)
		r.metrics.Counter("bind.di.resolutions", "outcome", "failure").Inc()
		return nil, err
	}

	r.metrics.Counter("bind.di.resolutions", "outcome", "success").Inc()
	return def, nil
}
