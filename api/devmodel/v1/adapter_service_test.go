package devmodelv1

import (
	"testing"

	"github.com/lf-edge/eve-devmodel/api/config"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

// TestApplyAdaptersProtoSmoke verifies that the service messages marshal and
// unmarshal with embedded SystemAdapter values from the config package.
func TestApplyAdaptersProtoSmoke(t *testing.T) {
	msg := &ApplyAdaptersRequest{
		Replace: true,
		Adapters: []*config.SystemAdapter{
			{Name: "eth0", Uplink: true},
			{
				Name: "eth0.7",
				AllocDetails: &config.SWAdapterParams{
					AType:             config.SWAdapterType_VLAN,
					UnderlayInterface: "eth0",
					VlanId:            7,
				},
			},
		},
	}

	data, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("Failed to marshal ApplyAdaptersRequest: %v", err)
	}

	unmarshaled := &ApplyAdaptersRequest{}
	if err := proto.Unmarshal(data, unmarshaled); err != nil {
		t.Fatalf("Failed to unmarshal ApplyAdaptersRequest: %v", err)
	}
	if !unmarshaled.GetReplace() {
		t.Fatalf("Replace was lost during marshal/unmarshal")
	}
	if len(unmarshaled.GetAdapters()) != 2 {
		t.Fatalf("Adapters count mismatch: got %d, want 2", len(unmarshaled.GetAdapters()))
	}
	if got := unmarshaled.GetAdapters()[1].GetAllocDetails().GetVlanId(); got != 7 {
		t.Fatalf("VlanId mismatch: got %d, want 7", got)
	}
}

// TestPortProtoSmoke verifies the Port message and its enum reference.
func TestPortProtoSmoke(t *testing.T) {
	msg := &ListPortsResponse{
		Ports: []*Port{{
			IfName:       "bond0",
			LogicalLabel: "uplink",
			IsMgmt:       true,
			Kind:         config.SWAdapterType_BOND,
			Members:      []string{"eth1", "eth2"},
		}},
	}

	data, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("Failed to marshal ListPortsResponse: %v", err)
	}
	unmarshaled := &ListPortsResponse{}
	if err := proto.Unmarshal(data, unmarshaled); err != nil {
		t.Fatalf("Failed to unmarshal ListPortsResponse: %v", err)
	}
	if !proto.Equal(msg, unmarshaled) {
		t.Fatalf("ListPortsResponse mismatch: got %v, want %v", unmarshaled, msg)
	}
}

func TestAdapterServiceDescriptor(t *testing.T) {
	desc, err := protoregistry.GlobalFiles.FindDescriptorByName("devmodel.v1.AdapterService")
	if err != nil {
		t.Fatalf("AdapterService not registered: %v", err)
	}
	svc, ok := desc.(protoreflect.ServiceDescriptor)
	if !ok {
		t.Fatalf("descriptor %T is not a service", desc)
	}
	if got := svc.Methods().Len(); got != len(AdapterService_ServiceDesc.Methods) {
		t.Fatalf("descriptor has %d methods, ServiceDesc has %d", got, len(AdapterService_ServiceDesc.Methods))
	}
	put := svc.Methods().ByName("PutAdapter")
	if put == nil {
		t.Fatalf("PutAdapter missing")
	}
	if put.Input().FullName() != "SystemAdapter" || put.Output().FullName() != "SystemAdapter" {
		t.Fatalf("PutAdapter signature = %s -> %s", put.Input().FullName(), put.Output().FullName())
	}
	kind := File_devmodel_v1_adapter_service_proto.Messages().ByName("Port").Fields().ByName("kind")
	if kind.Enum().FullName() != "sWAdapterType" {
		t.Fatalf("Port.kind enum = %s, want sWAdapterType", kind.Enum().FullName())
	}
}
