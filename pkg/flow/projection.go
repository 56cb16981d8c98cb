package flow

import (
	"net/url"
	"strings"
)

// GuidedParam marks a catalog URL as originating from the guided flow.
// The destination page shows a one-time confirmation notice when present.
const (
	GuidedParam = "guided"
	GuidedValue = "1"
)

// Projection is the filter set derived from a completed session, ready to
// be appended to the destination catalog URL.
type Projection struct {
	Category    Category
	Destination string            // catalog path, e.g. "/recreational"
	Filters     map[string]string // dimension -> comma-joined values
}

// Project maps the session's answers into catalog filter dimensions.
// Medical sessions contribute conditions, effects, format and cbdRange;
// recreational sessions contribute effects (effects and mood combined,
// duplicates allowed), format and thcRange. Single-choice answers equal
// to the "no preference" sentinel are omitted entirely.
func (e *Engine) Project(s *Session) *Projection {
	p := &Projection{
		Category: s.Category,
		Filters:  make(map[string]string),
	}

	switch s.Category {
	case CategoryMedical:
		p.Destination = "/medical"
		setList(p.Filters, "conditions", s.Answers[NodeMedicalConditions])
		setList(p.Filters, "effects", s.Answers[NodeMedicalEffects])
		setScalar(p.Filters, "format", s.Answers[NodeMedicalFormat])
		setScalar(p.Filters, "cbdRange", s.Answers[NodeMedicalCBD])
	default:
		p.Destination = "/recreational"
		effects := append(append([]string(nil), s.Answers[NodeRecreationalEffects]...), s.Answers[NodeRecreationalMood]...)
		setList(p.Filters, "effects", effects)
		setScalar(p.Filters, "format", s.Answers[NodeRecreationalFormat])
		setScalar(p.Filters, "thcRange", s.Answers[NodeRecreationalPotency])
	}

	return p
}

// Encode serializes the projection as URL query parameters, including the
// guided-flow marker.
func (p *Projection) Encode() string {
	params := url.Values{}
	for key, value := range p.Filters {
		params.Set(key, value)
	}
	params.Set(GuidedParam, GuidedValue)
	return params.Encode()
}

// RedirectURL is the destination catalog path with the encoded filters.
func (p *Projection) RedirectURL() string {
	return p.Destination + "?" + p.Encode()
}

func setList(filters map[string]string, key string, values []string) {
	if len(values) == 0 {
		return
	}
	filters[key] = strings.Join(values, ",")
}

func setScalar(filters map[string]string, key string, answer []string) {
	v := first(answer)
	if v == "" || v == AnswerAny {
		return
	}
	filters[key] = v
}
