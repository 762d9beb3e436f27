package output

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jbweber/mpinventory/internal/inventory"
)

// YAMLFormatter formats documents as a static Ansible YAML inventory:
//
//	all:
//	    children:
//	        your_ubuntu_servers:
//	            hosts:
//	                primary:
//	                    ansible_host: 10.0.0.5
//	                    ansible_user: ubuntu
type YAMLFormatter struct{}

type yamlInventory struct {
	All yamlGroup `yaml:"all"`
}

type yamlGroup struct {
	Hosts    map[string]inventory.HostVars `yaml:"hosts,omitempty"`
	Children map[string]yamlGroup          `yaml:"children,omitempty"`
}

// FormatInventory formats a document as YAML. Host variables are written
// under every group that lists the host.
func (f *YAMLFormatter) FormatInventory(doc *inventory.Document) (string, error) {
	if doc == nil {
		doc = inventory.Empty()
	}

	var out yamlInventory
	for _, g := range doc.Groups {
		group := yamlGroup{Hosts: make(map[string]inventory.HostVars, len(g.Hosts))}
		for _, h := range g.Hosts {
			vars, ok := doc.Host(h)
			if !ok {
				return "", fmt.Errorf("host %s in group %s has no hostvars", h, g.Name)
			}
			group.Hosts[h] = vars
		}
		if out.All.Children == nil {
			out.All.Children = make(map[string]yamlGroup)
		}
		out.All.Children[g.Name] = group
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to marshal inventory to YAML: %w", err)
	}

	return string(data), nil
}
