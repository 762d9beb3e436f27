// Package inventory builds Ansible dynamic inventory documents from
// multipass instance listings.
package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// MetaKey is the reserved top-level key holding per-host variables.
const MetaKey = "_meta"

// HostVars are the connection variables Ansible uses for one host.
type HostVars struct {
	AnsibleHost string `json:"ansible_host" yaml:"ansible_host"`
	AnsibleUser string `json:"ansible_user" yaml:"ansible_user"`
}

// Group is a named list of host identifiers.
type Group struct {
	Name  string
	Hosts []string
}

// Document is a dynamic inventory: hostvars under _meta plus zero or more
// groups. Groups are serialized after _meta in the order they were added.
type Document struct {
	HostVars map[string]HostVars
	Groups   []Group
}

// Empty returns the fallback document: no groups and no hostvars.
func Empty() *Document {
	return &Document{HostVars: map[string]HostVars{}}
}

// AddHost registers host in group with the given variables.
// It returns false when host is already present in the document.
func (d *Document) AddHost(group, host string, vars HostVars) bool {
	if d.HostVars == nil {
		d.HostVars = map[string]HostVars{}
	}
	if _, exists := d.HostVars[host]; exists {
		return false
	}
	d.HostVars[host] = vars

	for i := range d.Groups {
		if d.Groups[i].Name == group {
			d.Groups[i].Hosts = append(d.Groups[i].Hosts, host)
			return true
		}
	}
	d.Groups = append(d.Groups, Group{Name: group, Hosts: []string{host}})
	return true
}

// Host returns the variables for host, if present.
func (d *Document) Host(host string) (HostVars, bool) {
	vars, ok := d.HostVars[host]
	return vars, ok
}

// Hosts returns every host name in group order, each name once.
func (d *Document) Hosts() []string {
	seen := make(map[string]bool, len(d.HostVars))
	hosts := make([]string, 0, len(d.HostVars))
	for _, g := range d.Groups {
		for _, h := range g.Hosts {
			if !seen[h] {
				seen[h] = true
				hosts = append(hosts, h)
			}
		}
	}
	return hosts
}

// GroupsOf returns the names of the groups containing host.
func (d *Document) GroupsOf(host string) []string {
	var names []string
	for _, g := range d.Groups {
		for _, h := range g.Hosts {
			if h == host {
				names = append(names, g.Name)
				break
			}
		}
	}
	return names
}

// Validate checks that hostvars and group membership describe the same hosts.
func (d *Document) Validate() error {
	grouped := make(map[string]bool)
	for _, g := range d.Groups {
		if g.Name == MetaKey {
			return fmt.Errorf("group name %q is reserved", MetaKey)
		}
		for _, h := range g.Hosts {
			if _, ok := d.HostVars[h]; !ok {
				return fmt.Errorf("host %q in group %q has no hostvars", h, g.Name)
			}
			grouped[h] = true
		}
	}

	var orphans []string
	for h := range d.HostVars {
		if !grouped[h] {
			orphans = append(orphans, h)
		}
	}
	if len(orphans) > 0 {
		sort.Strings(orphans)
		return fmt.Errorf("hostvars without a group: %v", orphans)
	}

	return nil
}

// MarshalJSON writes _meta first, then each group as {"hosts": [...]}.
func (d *Document) MarshalJSON() ([]byte, error) {
	hostvars := d.HostVars
	if hostvars == nil {
		hostvars = map[string]HostVars{}
	}

	var buf bytes.Buffer
	buf.WriteString(`{"` + MetaKey + `":{"hostvars":`)
	data, err := marshalVerbatim(hostvars)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hostvars: %w", err)
	}
	buf.Write(data)
	buf.WriteByte('}')

	for _, g := range d.Groups {
		name, err := marshalVerbatim(g.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal group name: %w", err)
		}
		hosts := g.Hosts
		if hosts == nil {
			hosts = []string{}
		}
		list, err := marshalVerbatim(hosts)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal hosts of group %s: %w", g.Name, err)
		}

		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteString(`:{"hosts":`)
		buf.Write(list)
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalVerbatim is json.Marshal without HTML escaping, so host names such
// as "a&b" are written as-is.
func marshalVerbatim(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
