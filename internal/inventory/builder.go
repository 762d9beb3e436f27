package inventory

import (
	"github.com/jbweber/mpinventory/internal/multipass"
)

const (
	// DefaultGroup is the group every qualifying instance is placed in.
	DefaultGroup = "your_ubuntu_servers"
	// DefaultUser is the login account assigned to every host.
	DefaultUser = "ubuntu"
)

// Policy holds the fixed values applied to every qualifying instance.
type Policy struct {
	Group string
	User  string
}

// DefaultPolicy returns the stock group and login account.
func DefaultPolicy() Policy {
	return Policy{Group: DefaultGroup, User: DefaultUser}
}

// withDefaults fills empty fields from DefaultPolicy.
func (p Policy) withDefaults() Policy {
	if p.Group == "" {
		p.Group = DefaultGroup
	}
	if p.User == "" {
		p.User = DefaultUser
	}
	return p
}

// Qualifies reports whether an instance belongs in the inventory: it must be
// running and have at least one address.
func Qualifies(inst multipass.Instance) bool {
	if !inst.IsRunning() {
		return false
	}
	_, ok := inst.PrimaryAddress()
	return ok
}

// Build converts instances into a document. Instances that do not qualify are
// skipped; a repeated name keeps its first occurrence. When nothing
// qualifies the result equals Empty().
func Build(instances []multipass.Instance, policy Policy) *Document {
	policy = policy.withDefaults()
	doc := Empty()

	for _, inst := range instances {
		if !Qualifies(inst) {
			continue
		}
		addr, _ := inst.PrimaryAddress()
		doc.AddHost(policy.Group, inst.Name, HostVars{
			AnsibleHost: addr,
			AnsibleUser: policy.User,
		})
	}

	return doc
}
