package source

// Descriptor is one upstream provider entry of an episode: its name and obfuscated embed path.
type Descriptor struct {
	Name        string  `json:"sourceName"`
	EncodedPath string  `json:"sourceUrl"`
	Priority    float64 `json:"priority"`
	Type        string  `json:"type"`
}

func (d *Descriptor) String() string {
	return d.Name
}
