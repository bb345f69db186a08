// Package netprofile implements the named network-profile store: JSON at
// <home>/.tacopkm/networks.json, plus the config precedence chain used by
// every chain-touching command.
package netprofile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Profile is one named {rpcUrl, contractAddress} entry.
type Profile struct {
	RPCURL          string `json:"rpcUrl"`
	ContractAddress string `json:"contractAddress"`
}

// document is the on-disk shape of networks.json. Unknown top-level
// fields are preserved on round-trip via Extra for forward compatibility
// with newer or older tpkm versions sharing the same file.
type document struct {
	ActiveNetwork *string
	Networks      map[string]Profile
	Extra         map[string]json.RawMessage
}

func (d document) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.Extra)+2)
	for k, v := range d.Extra {
		out[k] = v
	}
	active, err := json.Marshal(d.ActiveNetwork)
	if err != nil {
		return nil, err
	}
	out["activeNetwork"] = active
	networks, err := json.Marshal(d.Networks)
	if err != nil {
		return nil, err
	}
	out["networks"] = networks
	return json.Marshal(out)
}

func (d *document) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["activeNetwork"]; ok {
		if err := json.Unmarshal(v, &d.ActiveNetwork); err != nil {
			return err
		}
		delete(raw, "activeNetwork")
	}
	if v, ok := raw["networks"]; ok {
		if err := json.Unmarshal(v, &d.Networks); err != nil {
			return err
		}
		delete(raw, "networks")
	}
	d.Extra = raw
	return nil
}

const (
	dirName  = ".tacopkm"
	fileName = "networks.json"
)

var validSchemes = map[string]bool{"http": true, "https": true, "ws": true, "wss": true}

// Store is the opened networks.json file, held in memory and flushed on
// every mutating operation. Writers are process-local and single-threaded;
// nothing here coordinates across concurrent processes.
type Store struct {
	path string
	doc  document
}

// Path returns the default networks.json path under home.
func Path(home string) string {
	return filepath.Join(home, dirName, fileName)
}

// Open loads the store from path, creating an empty one in memory (not yet
// on disk) if the file does not exist.
func Open(path string) (*Store, error) {
	s := &Store{path: path, doc: document{Networks: map[string]Profile{}}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if s.doc.Networks == nil {
		s.doc.Networks = map[string]Profile{}
	}
	return s, nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(s.path), err)
	}
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding networks.json: %w", err)
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// ValidateAddress reports whether contract is a well-formed 20-byte hex
// address.
func ValidateAddress(contract string) error {
	if !common.IsHexAddress(contract) {
		return fmt.Errorf("contract address %q is not a well-formed 20-byte address", contract)
	}
	return nil
}

// ValidateRPC reports whether rpc has a recognized URL scheme.
func ValidateRPC(rpc string) error {
	idx := strings.Index(rpc, "://")
	if idx <= 0 {
		return fmt.Errorf("rpc url %q has no scheme", rpc)
	}
	scheme := strings.ToLower(rpc[:idx])
	if !validSchemes[scheme] {
		return fmt.Errorf("rpc url %q has unsupported scheme %q (want http, https, ws, or wss)", rpc, scheme)
	}
	return nil
}

// Add upserts a named profile, validating both fields. When setActive is
// true (or this is the store's first profile), it also becomes active.
func (s *Store) Add(name, rpcURL, contractAddress string, setActive bool) error {
	if name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if err := ValidateRPC(rpcURL); err != nil {
		return err
	}
	if err := ValidateAddress(contractAddress); err != nil {
		return err
	}
	first := len(s.doc.Networks) == 0
	s.doc.Networks[name] = Profile{
		RPCURL:          rpcURL,
		ContractAddress: common.HexToAddress(contractAddress).Hex(),
	}
	if setActive || first {
		active := name
		s.doc.ActiveNetwork = &active
	}
	return s.save()
}

// SetActive selects name as the active profile; name must already exist.
func (s *Store) SetActive(name string) error {
	if _, ok := s.doc.Networks[name]; !ok {
		return fmt.Errorf("no such network profile %q", name)
	}
	active := name
	s.doc.ActiveNetwork = &active
	return s.save()
}

// List returns a copy of every profile, keyed by name; map iteration
// order is not defined.
func (s *Store) List() map[string]Profile {
	out := make(map[string]Profile, len(s.doc.Networks))
	for k, v := range s.doc.Networks {
		out[k] = v
	}
	return out
}

// Active returns the active profile name, or "" if none is set.
func (s *Store) Active() string {
	if s.doc.ActiveNetwork == nil {
		return ""
	}
	return *s.doc.ActiveNetwork
}

// Show returns a single profile by name, or the active one if name is "".
func (s *Store) Show(name string) (string, Profile, bool) {
	if name == "" {
		name = s.Active()
	}
	if name == "" {
		return "", Profile{}, false
	}
	p, ok := s.doc.Networks[name]
	return name, p, ok
}

// Remove deletes a profile by name. If it was the active profile, the
// active selector is cleared and removedActive is reported true so the
// caller can warn.
func (s *Store) Remove(name string) (removedActive bool, err error) {
	if _, ok := s.doc.Networks[name]; !ok {
		return false, fmt.Errorf("no such network profile %q", name)
	}
	delete(s.doc.Networks, name)
	if s.doc.ActiveNetwork != nil && *s.doc.ActiveNetwork == name {
		s.doc.ActiveNetwork = nil
		removedActive = true
	}
	return removedActive, s.save()
}

// ValidActiveProfile returns the active profile if one is selected and it
// both exists and passes validation. If the active pointer names a
// profile that no longer exists, or whose fields are now invalid, ok is
// false and warning explains why — the active-profile invariant is broken,
// so callers must fall through to the next precedence source rather than
// treat this as fatal.
func (s *Store) ValidActiveProfile() (profile Profile, ok bool, warning string) {
	if s.doc.ActiveNetwork == nil {
		return Profile{}, false, ""
	}
	name := *s.doc.ActiveNetwork
	p, exists := s.doc.Networks[name]
	if !exists {
		return Profile{}, false, fmt.Sprintf("active network %q no longer exists in the profile store", name)
	}
	if err := ValidateRPC(p.RPCURL); err != nil {
		return Profile{}, false, fmt.Sprintf("active network %q has an invalid rpc url: %v", name, err)
	}
	if err := ValidateAddress(p.ContractAddress); err != nil {
		return Profile{}, false, fmt.Sprintf("active network %q has an invalid contract address: %v", name, err)
	}
	return p, true, ""
}
