package model

// Entry represents a single blocked hostname tagged with the category
// of the source list it came from.
type Entry struct {
	Hostname string `json:"entry" yaml:"entry"`
	Category string `json:"category" yaml:"category"`
}
