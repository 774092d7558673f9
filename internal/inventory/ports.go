package inventory

import (
	"github.com/lf-edge/eve-devmodel/api/config"
	devmodelv1 "github.com/lf-edge/eve-devmodel/api/devmodel/v1"
)

// Ports derives the port plan for the current adapter set, sorted by
// interface name.
func (inv *Inventory) Ports() []*devmodelv1.Port {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	ports := make([]*devmodelv1.Port, 0, len(inv.adapters))
	for _, name := range sortedNames(inv.adapters) {
		ports = append(ports, PortFor(inv.adapters[name]))
	}
	return ports
}

// PortFor maps one adapter onto the port the network stack configures for it.
// An adapter without a logical name is labelled by its interface name.
func PortFor(a *config.SystemAdapter) *devmodelv1.Port {
	p := a.GetAllocDetails()
	port := &devmodelv1.Port{
		IfName:       a.GetName(),
		LogicalLabel: a.GetLogicalName(),
		IsMgmt:       a.GetUplink(),
		Free:         a.GetFreeUplink(),
		NetworkUuid:  a.GetNetworkUUID(),
		Addr:         a.GetAddr(),
		Kind:         p.GetAType(),
	}
	if port.LogicalLabel == "" {
		port.LogicalLabel = a.GetName()
	}
	switch p.GetAType() {
	case config.SWAdapterType_VLAN:
		port.VlanId = p.GetVlanId()
		port.Parent = p.GetUnderlayInterface()
	case config.SWAdapterType_BOND:
		port.Members = append([]string(nil), p.GetBondgroup()...)
	}
	return port
}
