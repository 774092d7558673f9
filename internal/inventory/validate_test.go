package inventory

import (
	"errors"
	"strings"
	"testing"

	"github.com/lf-edge/eve-devmodel/api/config"
)

func TestValidateAdapter(t *testing.T) {
	tests := []struct {
		name    string
		adapter *config.SystemAdapter
		wantErr bool
	}{
		{name: "nil", adapter: nil, wantErr: true},
		{name: "missing name", adapter: &config.SystemAdapter{Uplink: true}, wantErr: true},
		{name: "plain port", adapter: eth("eth0", true)},
		{name: "free uplink", adapter: &config.SystemAdapter{Name: "eth0", Uplink: true, FreeUplink: true}},
		{name: "free without uplink", adapter: &config.SystemAdapter{Name: "eth0", FreeUplink: true}, wantErr: true},
		{name: "empty alloc details", adapter: &config.SystemAdapter{Name: "eth0", AllocDetails: &config.SWAdapterParams{}}},
		{
			name: "ignore with vlan id",
			adapter: &config.SystemAdapter{Name: "eth0", AllocDetails: &config.SWAdapterParams{
				AType: config.SWAdapterType_IGNORE, VlanId: 3,
			}},
			wantErr: true,
		},
		{name: "vlan", adapter: vlan("eth0.100", "eth0", 100)},
		{name: "vlan max id", adapter: vlan("eth0.4094", "eth0", 4094)},
		{name: "vlan id zero", adapter: vlan("eth0.0", "eth0", 0), wantErr: true},
		{name: "vlan id too large", adapter: vlan("eth0.4095", "eth0", 4095), wantErr: true},
		{name: "vlan without underlay", adapter: vlan("v1", "", 5), wantErr: true},
		{name: "vlan on itself", adapter: vlan("v1", "v1", 5), wantErr: true},
		{
			name: "vlan with members",
			adapter: &config.SystemAdapter{Name: "v1", AllocDetails: &config.SWAdapterParams{
				AType: config.SWAdapterType_VLAN, UnderlayInterface: "eth0", VlanId: 5, Bondgroup: []string{"eth1"},
			}},
			wantErr: true,
		},
		{name: "bond", adapter: bond("bond0", "eth1", "eth2")},
		{name: "bond without members", adapter: bond("bond0"), wantErr: true},
		{name: "bond duplicate member", adapter: bond("bond0", "eth1", "eth1"), wantErr: true},
		{name: "bond contains itself", adapter: bond("bond0", "bond0"), wantErr: true},
		{name: "bond empty member", adapter: bond("bond0", ""), wantErr: true},
		{
			name: "bond with vlan id",
			adapter: &config.SystemAdapter{Name: "bond0", AllocDetails: &config.SWAdapterParams{
				AType: config.SWAdapterType_BOND, Bondgroup: []string{"eth1"}, VlanId: 2,
			}},
			wantErr: true,
		},
		{
			name: "unknown adapter type",
			adapter: &config.SystemAdapter{Name: "x", AllocDetails: &config.SWAdapterParams{
				AType: config.SWAdapterType(99),
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdapter(tt.adapter)
			if tt.wantErr {
				if !errors.Is(err, ErrAdapterInvalid) {
					t.Fatalf("ValidateAdapter error = %v, want ErrAdapterInvalid", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateAdapter unexpected error: %v", err)
			}
		})
	}
}

func TestReferencedBy(t *testing.T) {
	set := map[string]*config.SystemAdapter{
		"eth0":      eth("eth0", true),
		"eth1":      eth("eth1", false),
		"bond0":     bond("bond0", "eth0", "eth1"),
		"bond0.100": vlan("bond0.100", "bond0", 100),
	}
	if err := validateReferences(set); err != nil {
		t.Fatalf("validateReferences: %v", err)
	}
	if refs := referencedBy(set, "eth1"); len(refs) != 1 || refs[0] != "bond0" {
		t.Fatalf("referencedBy(eth1) = %v", refs)
	}
	if refs := referencedBy(set, "bond0"); len(refs) != 1 || refs[0] != "bond0.100" {
		t.Fatalf("referencedBy(bond0) = %v", refs)
	}
	if refs := referencedBy(set, "bond0.100"); len(refs) != 0 {
		t.Fatalf("referencedBy(bond0.100) = %v", refs)
	}
}

func TestCheckCyclesNamesThePath(t *testing.T) {
	set := map[string]*config.SystemAdapter{
		"a": vlan("a", "b", 2),
		"b": vlan("b", "c", 3),
		"c": vlan("c", "a", 4),
	}
	err := checkCycles(set)
	if !errors.Is(err, ErrAdapterConflict) {
		t.Fatalf("checkCycles error = %v, want ErrAdapterConflict", err)
	}
	if want := "a -> b -> c -> a"; !strings.Contains(err.Error(), want) {
		t.Fatalf("checkCycles error = %q, want path %q", err, want)
	}

	delete(set, "c")
	set["c"] = eth("c", false)
	if err := checkCycles(set); err != nil {
		t.Fatalf("checkCycles on a chain: %v", err)
	}
}
