package geo

// Location is a resolved place suitable for a radius-bounded species lookup.
type Location struct {
	DisplayName string  `json:"displayName"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
	CountryCode string  `json:"countryCode,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// DisambiguationOption is one concrete reading of an ambiguous place name.
// SearchQuery is the fully qualified phrase that, fed back through the
// resolver, lands on exactly this reading.
type DisambiguationOption struct {
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Country     string `json:"country"`
	Region      string `json:"region,omitempty"`
	SearchQuery string `json:"searchQuery"`
}

// DisplayLabel renders an option the way the picker shows it.
func (o DisambiguationOption) DisplayLabel() string {
	label := o.DisplayName
	if o.Description != "" {
		label += " - " + o.Description
	}
	if o.Region != "" {
		label += " (" + o.Region + ", " + o.Country + ")"
	} else if o.Country != "" {
		label += " (" + o.Country + ")"
	}
	return label
}

// AmbiguityReport is the semantic classifier's answer to "could this bare
// name mean several well-known places".
type AmbiguityReport struct {
	Ambiguous bool                   `json:"ambiguous"`
	Options   []DisambiguationOption `json:"options,omitempty"`
}
