package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// PeerEntry is one receiver listed in the peers seed file.
type PeerEntry struct {
	Addr string `yaml:"addr"`
	Name string `yaml:"name"`
}

type peerFile struct {
	Peers []PeerEntry `yaml:"peers"`
}

// LoadPeerFile parses a YAML file of the form
//
//	peers:
//	  - addr: 24:6f:28:aa:bb:01
//	    name: porch
func LoadPeerFile(path string) ([]PeerEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open peers file: %v", err)
	}
	var f peerFile
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("could not parse peers file: %v", err)
	}
	return f.Peers, nil
}
