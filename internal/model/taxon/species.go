package taxon

import "strings"

// Species is one candidate animal observed around a resolved location.
type Species struct {
	CommonName         string `json:"commonName"`
	ScientificName     string `json:"scientificName,omitempty"`
	ConservationStatus string `json:"conservationStatus,omitempty"`
	ObservationCount   int    `json:"observationCount,omitempty"`
	PhotoURL           string `json:"photoUrl,omitempty"`
}

// Label renders the species the way candidate lists show it, with the
// conservation status appended when one is known.
func (s Species) Label() string {
	if s.ConservationStatus == "" || strings.EqualFold(s.ConservationStatus, "Unknown") {
		return s.CommonName
	}
	return s.CommonName + " (" + s.ConservationStatus + ")"
}

// Organization is a conservation group recommended for a selected animal.
type Organization struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Scope       string `json:"scope,omitempty"`
}

// NormalizeName lowercases a common name and strips everything but letters
// and digits so that "Gray Wolf", "gray-wolf" and "Gray  wolf" collapse to
// one dedupe key.
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
