package rules

import (
	"strings"

	"github.com/cosmo-tools/astro-atlas/pkg/content"
	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
	"github.com/cosmo-tools/astro-atlas/pkg/services/ordering"
)

// maxCandidates caps how many tie-broken candidates join the block list on
// top of the personal-year narrative.
const maxCandidates = 2

// Evaluator runs one life area's rule set against a profile. The algorithm
// is identical across areas; only the content tables differ, so the five
// evaluators are five instances of this one type.
type Evaluator struct {
	area  domain.Domain
	entry content.DomainEntry
}

func NewEvaluator(area domain.Domain, entry content.DomainEntry) *Evaluator {
	return &Evaluator{area: area, entry: entry}
}

// Area returns the life area this evaluator covers.
func (e *Evaluator) Area() domain.Domain {
	return e.area
}

// Fallback returns the generic sentence used when no rule matched.
func (e *Evaluator) Fallback() string {
	return e.entry.Fallback
}

// Evaluate collects the matching narrative blocks for one year. It never
// fails: missing chart entries simply match nothing, and strength defaults
// to moderate unless a high-salience rule fires.
func (e *Evaluator) Evaluate(p domain.Profile, year, personalYear int) domain.RuleEvaluationResult {
	var blocks []string
	if narrative, ok := e.entry.PersonalYear[personalYear]; ok {
		blocks = append(blocks, narrative)
	}

	strength := domain.StrengthModerate
	var candidates []string

	if body, ok := domain.MatchBody(p.Dasha); ok {
		if narrative, ok := e.entry.Periods[body]; ok {
			candidates = append(candidates, narrative)
		}
		if e.isStrongBody(body) {
			strength = domain.StrengthStrong
		}
	}

	for _, rule := range e.entry.HouseRules {
		house, ok := p.Houses[rule.Body]
		if !ok {
			continue
		}
		for _, salient := range rule.Houses {
			if house == salient {
				candidates = append(candidates, rule.Narrative)
				if rule.Strong {
					strength = domain.StrengthStrong
				}
				break
			}
		}
	}

	for _, rule := range e.entry.SignRules {
		sign, ok := p.Signs[rule.Body]
		if ok && strings.EqualFold(sign, rule.Sign) {
			candidates = append(candidates, rule.Narrative)
		}
	}

	if len(candidates) > 0 {
		arranged := ordering.Arrange(year, candidates)
		take := min(maxCandidates, len(arranged))
		blocks = append(blocks, arranged[:take]...)
		if len(blocks) < 2 && len(arranged) > take {
			blocks = append(blocks, arranged[take])
		}
	}

	return domain.RuleEvaluationResult{Blocks: blocks, Strength: strength}
}

func (e *Evaluator) isStrongBody(body domain.Body) bool {
	for _, b := range e.entry.StrongBodies {
		if b == body {
			return true
		}
	}
	return false
}

// Evaluators builds the five domain evaluators from the content library,
// in report order.
func Evaluators(lib *content.Library) map[domain.Domain]*Evaluator {
	out := make(map[domain.Domain]*Evaluator, len(domain.Domains))
	for _, d := range domain.Domains {
		out[d] = NewEvaluator(d, lib.Domains[d])
	}
	return out
}
