package wire

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lf-edge/eve-devmodel/api/config"
	"google.golang.org/protobuf/testing/protocmp"
)

func seedAdapters() []*config.SystemAdapter {
	return []*config.SystemAdapter{
		{Name: "eth0", Uplink: true, FreeUplink: true, LogicalName: "mgmt0"},
		{
			Name: "bond0",
			AllocDetails: &config.SWAdapterParams{
				AType:     config.SWAdapterType_BOND,
				Bondgroup: []string{"eth2", "eth1"},
			},
		},
		{
			Name: "bond0.10",
			AllocDetails: &config.SWAdapterParams{
				AType:             config.SWAdapterType_VLAN,
				UnderlayInterface: "bond0",
				VlanId:            10,
			},
		},
	}
}

func TestAdaptersStreamRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatDelimited, FormatJSON} {
		var buf bytes.Buffer
		if err := WriteAdapters(&buf, format, seedAdapters()); err != nil {
			t.Fatalf("format %d: WriteAdapters error: %v", format, err)
		}
		got, err := ReadAdapters(&buf, format)
		if err != nil {
			t.Fatalf("format %d: ReadAdapters error: %v", format, err)
		}
		if diff := cmp.Diff(seedAdapters(), got, protocmp.Transform()); diff != "" {
			t.Fatalf("format %d: round trip mismatch (-want +got):\n%s", format, diff)
		}
	}
}

func TestAdapterFileFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"seed.json", "seed.binpb"} {
		path := filepath.Join(dir, name)
		if err := WriteAdapterFile(path, seedAdapters()); err != nil {
			t.Fatalf("WriteAdapterFile(%s) error: %v", name, err)
		}
		got, err := ReadAdapterFile(path)
		if err != nil {
			t.Fatalf("ReadAdapterFile(%s) error: %v", name, err)
		}
		if len(got) != 3 || got[2].GetAllocDetails().GetVlanId() != 10 {
			t.Fatalf("ReadAdapterFile(%s) = %v", name, got)
		}
	}

	if FormatForPath("a/b/SEED.JSON") != FormatJSON {
		t.Fatalf("upper-case .JSON not detected")
	}
	if FormatForPath("seed.pb") != FormatDelimited {
		t.Fatalf("non-JSON extension not delimited")
	}
}

func TestReadAdaptersTruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAdapters(&buf, FormatDelimited, seedAdapters()); err != nil {
		t.Fatalf("WriteAdapters error: %v", err)
	}
	data := buf.Bytes()[:buf.Len()-2]

	_, err := ReadAdapters(bytes.NewReader(data), FormatDelimited)
	if !errors.Is(err, ErrMalformedWireData) {
		t.Fatalf("ReadAdapters error = %v, want ErrMalformedWireData", err)
	}
}

func TestReadAdaptersEmpty(t *testing.T) {
	got, err := ReadAdapters(bytes.NewReader(nil), FormatDelimited)
	if err != nil || len(got) != 0 {
		t.Fatalf("ReadAdapters(empty) = %v, %v", got, err)
	}
}

func TestUnmarshalJSONIgnoresUnknownKeys(t *testing.T) {
	doc := []byte(`{
		"name": "bond0",
		"allocDetails": {"aType": "BOND", "bondgroup": ["eth1", "eth2"]},
		"uplink": true,
		"addedLater": 7
	}`)

	var got config.SystemAdapter
	if err := UnmarshalJSON(doc, &got); err != nil {
		t.Fatalf("UnmarshalJSON error: %v", err)
	}
	want := &config.SystemAdapter{
		Name:   "bond0",
		Uplink: true,
		AllocDetails: &config.SWAdapterParams{
			AType:     config.SWAdapterType_BOND,
			Bondgroup: []string{"eth1", "eth2"},
		},
	}
	if diff := cmp.Diff(want, &got, protocmp.Transform()); diff != "" {
		t.Fatalf("UnmarshalJSON mismatch (-want +got):\n%s", diff)
	}

	var bad config.SystemAdapter
	if err := UnmarshalJSON([]byte(`{"name": 5`), &bad); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("UnmarshalJSON(bad) error = %v, want ErrInvalidJSON", err)
	}
}

func TestMarshalJSONUsesSchemaNames(t *testing.T) {
	data, err := MarshalJSON(seedAdapters()[2])
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	for _, key := range []string{`"allocDetails"`, `"aType"`, `"underlayInterface"`, `"vlanId"`, `"VLAN"`} {
		if !bytes.Contains(data, []byte(key)) {
			t.Fatalf("MarshalJSON output missing %s:\n%s", key, data)
		}
	}

	text, err := MarshalText(seedAdapters()[1])
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	if !bytes.Contains(text, []byte("BOND")) {
		t.Fatalf("MarshalText output missing enum name:\n%s", text)
	}
}
