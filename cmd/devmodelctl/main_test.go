package main

import (
	"bytes"
	"net"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lf-edge/eve-devmodel/api/config"
	devmodelv1 "github.com/lf-edge/eve-devmodel/api/devmodel/v1"
	"github.com/lf-edge/eve-devmodel/internal/auth"
	"github.com/lf-edge/eve-devmodel/internal/inventory"
	"github.com/lf-edge/eve-devmodel/internal/logging"
	"github.com/lf-edge/eve-devmodel/internal/server"
	"github.com/lf-edge/eve-devmodel/internal/wire"
	"google.golang.org/grpc"
)

func newTestCLI(stdin []byte) (*cli, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &cli{
		stdin:  bytes.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
		dial:   grpc.NewClient,
	}, &stdout, &stderr
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c, stdout, stderr := newTestCLI([]byte(`{"name":"eth0","uplink":true,"networkUUID":"abc-123"}`))
	if code := c.run([]string{"encode"}); code != 0 {
		t.Fatalf("encode exit = %d, stderr: %s", code, stderr)
	}
	want := []byte{0x0a, 0x04, 'e', 't', 'h', '0', 0x18, 0x01, 0x22, 0x07, 'a', 'b', 'c', '-', '1', '2', '3'}
	if !bytes.Equal(stdout.Bytes(), want) {
		t.Fatalf("encode output = %x, want %x", stdout.Bytes(), want)
	}

	c, stdout, stderr = newTestCLI(want)
	if code := c.run([]string{"decode", "-format", "text"}); code != 0 {
		t.Fatalf("decode exit = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout.String(), "eth0") || !strings.Contains(stdout.String(), "abc-123") {
		t.Fatalf("decode output = %q", stdout.String())
	}
}

func TestEncodeParams(t *testing.T) {
	c, stdout, stderr := newTestCLI([]byte(`{"aType":"VLAN","underlayInterface":"eth0","vlanId":100}`))
	if code := c.run([]string{"encode", "-type", "params"}); code != 0 {
		t.Fatalf("encode exit = %d, stderr: %s", code, stderr)
	}
	got, err := wire.DecodeParams(stdout.Bytes())
	if err != nil {
		t.Fatalf("DecodeParams: %v", err)
	}
	if got.GetAType() != config.SWAdapterType_VLAN || got.GetVlanId() != 100 || got.GetUnderlayInterface() != "eth0" {
		t.Fatalf("decoded params = %v", got)
	}
}

func TestDecodeReportsFailures(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		args  []string
		want  string
	}{
		{name: "truncated", input: []byte{0x0a, 0x09, 'e'}, args: []string{"decode"}, want: "malformed wire data"},
		{name: "strict mismatch", input: []byte{0x08, 0x01}, args: []string{"decode", "-strict"}, want: "wire type mismatch"},
		{name: "unknown type", input: nil, args: []string{"decode", "-type", "device"}, want: "unknown message type"},
		{name: "unknown format", input: []byte{0x0a, 0x00}, args: []string{"decode", "-format", "yaml"}, want: "unknown output format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, stderr := newTestCLI(tt.input)
			if code := c.run(tt.args); code != 1 {
				t.Fatalf("exit = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Fatalf("stderr = %q, want substring %q", stderr.String(), tt.want)
			}
		})
	}
}

func TestDecodePermissiveAcceptsMismatch(t *testing.T) {
	c, _, stderr := newTestCLI([]byte{0x08, 0x01})
	if code := c.run([]string{"decode"}); code != 0 {
		t.Fatalf("decode exit = %d, stderr: %s", code, stderr)
	}
}

func TestUsage(t *testing.T) {
	c, _, stderr := newTestCLI(nil)
	if code := c.run(nil); code != 2 || !strings.Contains(stderr.String(), "usage:") {
		t.Fatalf("no-args exit = %d, stderr %q", code, stderr.String())
	}
	c, _, _ = newTestCLI(nil)
	if code := c.run([]string{"frobnicate"}); code != 2 {
		t.Fatalf("unknown command exit = %d, want 2", code)
	}
}

func TestTokenVerifies(t *testing.T) {
	c, stdout, stderr := newTestCLI(nil)
	code := c.run([]string{"token", "-secret", "s3cret", "-subject", "ops", "-roles", "viewer, controller"})
	if code != 0 {
		t.Fatalf("token exit = %d, stderr: %s", code, stderr)
	}

	v, err := auth.NewVerifier(auth.Config{Secret: "s3cret"})
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	claims, err := v.Verify(strings.TrimSpace(stdout.String()))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "ops" || !claims.HasRole(auth.RoleController) || !claims.HasRole(auth.RoleViewer) {
		t.Fatalf("claims = %+v", claims)
	}
}

func startDaemon(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	inv := inventory.New(logging.Noop())
	srv := server.NewGRPCServer(server.NewAdapterService(inv, nil), logging.Noop(), server.Options{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func TestRemoteCommands(t *testing.T) {
	endpoint := startDaemon(t)

	seed := filepath.Join(t.TempDir(), "seed.bin")
	if err := wire.WriteAdapterFile(seed, []*config.SystemAdapter{
		{Name: "eth0", Uplink: true},
		{Name: "eth1"},
	}); err != nil {
		t.Fatalf("WriteAdapterFile: %v", err)
	}

	c, stdout, stderr := newTestCLI(nil)
	if code := c.run([]string{"apply", "-endpoint", endpoint, "-f", seed}); code != 0 {
		t.Fatalf("apply exit = %d, stderr: %s", code, stderr)
	}
	if got := stdout.String(); got != "applied 2, removed 0\n" {
		t.Fatalf("apply output = %q", got)
	}

	c, stdout, stderr = newTestCLI([]byte(`{"name":"eth1.30","allocDetails":{"aType":"VLAN","underlayInterface":"eth1","vlanId":30}}`))
	if code := c.run([]string{"put", "-endpoint", endpoint}); code != 0 {
		t.Fatalf("put exit = %d, stderr: %s", code, stderr)
	}

	c, stdout, stderr = newTestCLI(nil)
	if code := c.run([]string{"ports", "-endpoint", endpoint}); code != 0 {
		t.Fatalf("ports exit = %d, stderr: %s", code, stderr)
	}
	var ports devmodelv1.ListPortsResponse
	if err := wire.UnmarshalJSON(stdout.Bytes(), &ports); err != nil {
		t.Fatalf("ports output is not JSON: %v\n%s", err, stdout)
	}
	if len(ports.GetPorts()) != 3 || ports.GetPorts()[2].GetParent() != "eth1" {
		t.Fatalf("ports = %v", ports.GetPorts())
	}

	c, stdout, stderr = newTestCLI(nil)
	if code := c.run([]string{"list", "-endpoint", endpoint, "-uplinks"}); code != 0 {
		t.Fatalf("list exit = %d, stderr: %s", code, stderr)
	}
	var list devmodelv1.ListAdaptersResponse
	if err := wire.UnmarshalJSON(stdout.Bytes(), &list); err != nil {
		t.Fatalf("list output is not JSON: %v", err)
	}
	if len(list.GetAdapters()) != 1 || list.GetAdapters()[0].GetName() != "eth0" {
		t.Fatalf("list = %v", list.GetAdapters())
	}

	c, _, stderr = newTestCLI(nil)
	if code := c.run([]string{"delete", "-endpoint", endpoint, "eth1"}); code != 1 || !strings.Contains(stderr.String(), "FailedPrecondition") {
		t.Fatalf("delete referenced exit = %d, stderr %q", code, stderr.String())
	}

	c, stdout, stderr = newTestCLI(nil)
	if code := c.run([]string{"delete", "-endpoint", endpoint, "eth1.30"}); code != 0 {
		t.Fatalf("delete exit = %d, stderr: %s", code, stderr)
	}

	c, _, stderr = newTestCLI(nil)
	if code := c.run([]string{"get", "-endpoint", endpoint, "eth1.30"}); code != 1 || !strings.Contains(stderr.String(), "NotFound") {
		t.Fatalf("get deleted exit = %d, stderr %q", code, stderr.String())
	}

	c, _, stderr = newTestCLI(nil)
	if code := c.run([]string{"get", "-endpoint", endpoint}); code != 1 || !strings.Contains(stderr.String(), "exactly one adapter name") {
		t.Fatalf("get without name exit = %d, stderr %q", code, stderr.String())
	}
}
