package wire

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lf-edge/eve-devmodel/api/config"
	devmodelv1 "github.com/lf-edge/eve-devmodel/api/devmodel/v1"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/proto"
)

// Format selects the on-disk representation of an adapter list.
type Format int

const (
	// FormatDelimited is a stream of varint length-prefixed SystemAdapter
	// messages.
	FormatDelimited Format = iota
	// FormatJSON is a single ListAdaptersResponse in the protobuf JSON mapping.
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "delimited"
}

// maxSeedMessage bounds a single delimited record.
const maxSeedMessage = 1 << 20

// FormatForPath picks FormatJSON for .json files and FormatDelimited otherwise.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatDelimited
}

// ReadAdapterFile loads adapters from path, choosing the format by extension.
func ReadAdapterFile(path string) ([]*config.SystemAdapter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	adapters, err := ReadAdapters(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return adapters, nil
}

// WriteAdapterFile stores adapters at path, choosing the format by extension.
func WriteAdapterFile(path string, adapters []*config.SystemAdapter) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteAdapters(f, FormatForPath(path), adapters); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadAdapters decodes an adapter list from r.
func ReadAdapters(r io.Reader, format Format) ([]*config.SystemAdapter, error) {
	if format == FormatJSON {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		var doc devmodelv1.ListAdaptersResponse
		if err := UnmarshalJSON(data, &doc); err != nil {
			return nil, err
		}
		return doc.GetAdapters(), nil
	}

	br := bufio.NewReader(r)
	opts := protodelim.UnmarshalOptions{MaxSize: maxSeedMessage}
	var out []*config.SystemAdapter
	for {
		a := &config.SystemAdapter{}
		err := opts.UnmarshalFrom(br, a)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformedWireData, len(out), err)
		}
		out = append(out, a)
	}
}

// WriteAdapters encodes adapters to w in the given format.
func WriteAdapters(w io.Writer, format Format, adapters []*config.SystemAdapter) error {
	if format == FormatJSON {
		data, err := MarshalJSON(&devmodelv1.ListAdaptersResponse{Adapters: adapters})
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}

	bw := bufio.NewWriter(w)
	opts := protodelim.MarshalOptions{MarshalOptions: proto.MarshalOptions{Deterministic: true}}
	for _, a := range adapters {
		if _, err := opts.MarshalTo(bw, a); err != nil {
			return err
		}
	}
	return bw.Flush()
}
