package flow

import (
	"net/url"
	"testing"
)

func walk(t *testing.T, e *Engine, answers ...[]string) *Session {
	t.Helper()
	s := NewSession()
	for i, a := range answers {
		for _, v := range a {
			if err := e.SelectOption(s, v); err != nil {
				t.Fatalf("step %d select %q: %v", i, v, err)
			}
		}
		if _, err := e.Advance(s); err != nil {
			t.Fatalf("step %d advance: %v", i, err)
		}
	}
	return s
}

func TestProjectRecreationalScenario(t *testing.T) {
	e := newTestEngine(t)
	s := walk(t, e,
		[]string{"recreational"},
		[]string{"euphoria", "relaxation"},
		[]string{"happy"},
		[]string{"daytime"},
		[]string{"Vape"},
		[]string{"medium"},
	)

	p := e.Project(s)
	if p.Destination != "/recreational" {
		t.Fatalf("destination = %q", p.Destination)
	}
	want := map[string]string{
		"effects":  "euphoria,relaxation,happy",
		"format":   "Vape",
		"thcRange": "medium",
	}
	if len(p.Filters) != len(want) {
		t.Fatalf("filters = %v, want %v", p.Filters, want)
	}
	for k, v := range want {
		if p.Filters[k] != v {
			t.Errorf("filters[%s] = %q, want %q", k, p.Filters[k], v)
		}
	}

	params, err := url.ParseQuery(p.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if params.Get(GuidedParam) != GuidedValue {
		t.Fatal("guided marker missing from encoded query")
	}
	if params.Get("effects") != "euphoria,relaxation,happy" {
		t.Fatalf("encoded effects = %q", params.Get("effects"))
	}
}

func TestProjectMedicalScenarioOmitsNoPreference(t *testing.T) {
	e := newTestEngine(t)
	s := walk(t, e,
		[]string{"medical"},
		[]string{"anxiety", "insomnia"},
		[]string{"anti-anxiety", "sedation"},
		[]string{AnswerAny}, // format: no preference
		[]string{"low"},
	)

	p := e.Project(s)
	if p.Destination != "/medical" {
		t.Fatalf("destination = %q", p.Destination)
	}
	want := map[string]string{
		"conditions": "anxiety,insomnia",
		"effects":    "anti-anxiety,sedation",
		"cbdRange":   "low",
	}
	if len(p.Filters) != len(want) {
		t.Fatalf("filters = %v, want %v", p.Filters, want)
	}
	if _, ok := p.Filters["format"]; ok {
		t.Fatal("format answered 'any' must be omitted")
	}
	for k, v := range want {
		if p.Filters[k] != v {
			t.Errorf("filters[%s] = %q, want %q", k, p.Filters[k], v)
		}
	}
}

func TestProjectOmitsEveryNoPreferenceDimension(t *testing.T) {
	e := newTestEngine(t)
	s := walk(t, e,
		[]string{"recreational"},
		[]string{"energy"},
		[]string{"energized"},
		[]string{"anytime"},
		[]string{AnswerAny}, // format
		[]string{AnswerAny}, // potency
	)

	p := e.Project(s)
	if _, ok := p.Filters["format"]; ok {
		t.Fatal("format should be omitted")
	}
	if _, ok := p.Filters["thcRange"]; ok {
		t.Fatal("thcRange should be omitted")
	}
	if p.Filters["effects"] != "energy,energized" {
		t.Fatalf("effects = %q", p.Filters["effects"])
	}
}

func TestRedirectURLCarriesGuidedMarker(t *testing.T) {
	e := newTestEngine(t)
	s := walk(t, e,
		[]string{"unsure"},
		[]string{"yes"},
		[]string{"migraines"},
		[]string{"pain relief"},
		[]string{"Capsules"},
		[]string{"high"},
	)

	p := e.Project(s)
	u, err := url.Parse(p.RedirectURL())
	if err != nil {
		t.Fatal(err)
	}
	if u.Path != "/medical" {
		t.Fatalf("path = %q", u.Path)
	}
	q := u.Query()
	if q.Get("guided") != "1" || q.Get("conditions") != "migraines" || q.Get("format") != "Capsules" || q.Get("cbdRange") != "high" {
		t.Fatalf("query = %v", q)
	}
}
