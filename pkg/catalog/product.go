package catalog

// Product is one immutable catalog record. The dataset is external and
// loaded once per process; nothing in the service mutates it.
type Product struct {
	ID          string   `json:"id"`
	Category    string   `json:"category,omitempty"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Format      string   `json:"format"`
	THC         float64  `json:"thc"`
	CBD         float64  `json:"cbd"`
	Effects     []string `json:"effects,omitempty"`
	Mood        []string `json:"mood,omitempty"`
	Conditions  []string `json:"conditions,omitempty"`
	Slang       []string `json:"slang,omitempty"` // alternate-name tokens
	Description string   `json:"description,omitempty"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Price       float64  `json:"price"`
}
