package model

import "fmt"

// Remote is a network-addressable execution backend.
type Remote struct {
	Name string `yaml:"name"`
	IP   string `yaml:"ip"`
	Port int    `yaml:"port"`
}

// BaseURL returns the HTTP base URL for this remote.
func (r Remote) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", r.IP, r.Port)
}
