package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lf-edge/eve-devmodel/api/config"
)

const (
	minVlanID = 1
	maxVlanID = 4094
)

// ValidateAdapter checks a single adapter in isolation. References to other
// adapters are checked by the store against the full adapter set.
func ValidateAdapter(a *config.SystemAdapter) error {
	if a == nil {
		return fmt.Errorf("%w: adapter is required", ErrAdapterInvalid)
	}
	name := a.GetName()
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrAdapterInvalid)
	}
	if a.GetFreeUplink() && !a.GetUplink() {
		return fmt.Errorf("%w: %q: freeUplink requires uplink", ErrAdapterInvalid, name)
	}

	p := a.GetAllocDetails()
	switch p.GetAType() {
	case config.SWAdapterType_IGNORE:
		if p.GetVlanId() != 0 || len(p.GetBondgroup()) > 0 {
			return fmt.Errorf("%w: %q: IGNORE adapter carries vlan or bond parameters", ErrAdapterInvalid, name)
		}
	case config.SWAdapterType_VLAN:
		if p.GetUnderlayInterface() == "" {
			return fmt.Errorf("%w: %q: VLAN requires underlayInterface", ErrAdapterInvalid, name)
		}
		if p.GetUnderlayInterface() == name {
			return fmt.Errorf("%w: %q: VLAN cannot be its own underlay", ErrAdapterInvalid, name)
		}
		if id := p.GetVlanId(); id < minVlanID || id > maxVlanID {
			return fmt.Errorf("%w: %q: vlanId %d outside %d..%d", ErrAdapterInvalid, name, id, minVlanID, maxVlanID)
		}
		if len(p.GetBondgroup()) > 0 {
			return fmt.Errorf("%w: %q: VLAN cannot have bond members", ErrAdapterInvalid, name)
		}
	case config.SWAdapterType_BOND:
		members := p.GetBondgroup()
		if len(members) == 0 {
			return fmt.Errorf("%w: %q: BOND requires at least one member", ErrAdapterInvalid, name)
		}
		seen := make(map[string]struct{}, len(members))
		for _, m := range members {
			if m == "" {
				return fmt.Errorf("%w: %q: empty bond member", ErrAdapterInvalid, name)
			}
			if m == name {
				return fmt.Errorf("%w: %q: bond cannot contain itself", ErrAdapterInvalid, name)
			}
			if _, dup := seen[m]; dup {
				return fmt.Errorf("%w: %q: duplicate bond member %q", ErrAdapterInvalid, name, m)
			}
			seen[m] = struct{}{}
		}
		if p.GetVlanId() != 0 {
			return fmt.Errorf("%w: %q: BOND cannot carry a vlanId", ErrAdapterInvalid, name)
		}
	default:
		return fmt.Errorf("%w: %q: unsupported adapter type %d", ErrAdapterInvalid, name, int32(p.GetAType()))
	}
	return nil
}

// validateBatch checks each adapter and rejects repeated names.
func validateBatch(adapters []*config.SystemAdapter) error {
	seen := make(map[string]struct{}, len(adapters))
	for _, a := range adapters {
		if err := ValidateAdapter(a); err != nil {
			return err
		}
		if _, dup := seen[a.GetName()]; dup {
			return fmt.Errorf("%w: %q appears more than once", ErrAdapterInvalid, a.GetName())
		}
		seen[a.GetName()] = struct{}{}
	}
	return nil
}

// validateReferences checks the relationships between adapters in a complete
// set: every VLAN underlay and bond member must exist, no adapter belongs to
// two bonds, a bond member is not also used as a VLAN underlay, and no chain of
// references loops back on itself.
func validateReferences(set map[string]*config.SystemAdapter) error {
	bondOf := make(map[string]string)
	for _, name := range sortedNames(set) {
		p := set[name].GetAllocDetails()
		if p.GetAType() != config.SWAdapterType_BOND {
			continue
		}
		for _, m := range p.GetBondgroup() {
			if _, ok := set[m]; !ok {
				return fmt.Errorf("%w: bond %q references unknown adapter %q", ErrAdapterConflict, name, m)
			}
			if other, taken := bondOf[m]; taken {
				return fmt.Errorf("%w: %q is a member of both %q and %q", ErrAdapterConflict, m, other, name)
			}
			bondOf[m] = name
		}
	}

	for _, name := range sortedNames(set) {
		p := set[name].GetAllocDetails()
		if p.GetAType() != config.SWAdapterType_VLAN {
			continue
		}
		under := p.GetUnderlayInterface()
		if _, ok := set[under]; !ok {
			return fmt.Errorf("%w: VLAN %q references unknown underlay %q", ErrAdapterConflict, name, under)
		}
		if bond, ok := bondOf[under]; ok {
			return fmt.Errorf("%w: VLAN %q underlay %q is a member of bond %q", ErrAdapterConflict, name, under, bond)
		}
	}
	return checkCycles(set)
}

// dependsOn lists the adapters a must be configured on top of.
func dependsOn(a *config.SystemAdapter) []string {
	p := a.GetAllocDetails()
	switch p.GetAType() {
	case config.SWAdapterType_VLAN:
		return []string{p.GetUnderlayInterface()}
	case config.SWAdapterType_BOND:
		return p.GetBondgroup()
	}
	return nil
}

// checkCycles rejects sets where following VLAN underlays and bond members
// leads back to the starting adapter. Such ports can never be brought up and
// none of them could be deleted individually.
func checkCycles(set map[string]*config.SystemAdapter) error {
	const (
		unvisited = iota
		onPath
		done
	)
	state := make(map[string]int, len(set))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case done:
			return nil
		case onPath:
			start := 0
			for i, n := range path {
				if n == name {
					start = i
					break
				}
			}
			cycle := append(append([]string(nil), path[start:]...), name)
			return fmt.Errorf("%w: reference cycle %s", ErrAdapterConflict, strings.Join(cycle, " -> "))
		}
		state[name] = onPath
		for _, dep := range dependsOn(set[name]) {
			if _, ok := set[dep]; !ok {
				continue
			}
			if err := visit(dep, append(path, name)); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	for _, name := range sortedNames(set) {
		if err := visit(name, nil); err != nil {
			return err
		}
	}
	return nil
}

// referencedBy returns the adapters in set that point at name.
func referencedBy(set map[string]*config.SystemAdapter, name string) []string {
	var refs []string
	for _, other := range sortedNames(set) {
		p := set[other].GetAllocDetails()
		switch p.GetAType() {
		case config.SWAdapterType_VLAN:
			if p.GetUnderlayInterface() == name {
				refs = append(refs, other)
			}
		case config.SWAdapterType_BOND:
			for _, m := range p.GetBondgroup() {
				if m == name {
					refs = append(refs, other)
					break
				}
			}
		}
	}
	return refs
}

func sortedNames(set map[string]*config.SystemAdapter) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
