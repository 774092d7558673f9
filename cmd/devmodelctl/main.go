// Command devmodelctl converts adapter messages between encodings and drives
// a devmodeld AdapterService.
//
//	devmodelctl encode [-type adapter|params] [-in file] [-out file]
//	devmodelctl decode [-type adapter|params] [-strict] [-format json|text] [-in file]
//	devmodelctl put    -f adapter.json
//	devmodelctl get    NAME
//	devmodelctl list   [-uplinks]
//	devmodelctl delete NAME
//	devmodelctl apply  -f seed.json|seed.bin [-replace]
//	devmodelctl ports
//	devmodelctl token  -secret S -subject SUB [-roles viewer,controller] [-ttl 1h]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lf-edge/eve-devmodel/api/config"
	devmodelv1 "github.com/lf-edge/eve-devmodel/api/devmodel/v1"
	"github.com/lf-edge/eve-devmodel/internal/auth"
	"github.com/lf-edge/eve-devmodel/internal/wire"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/proto"
)

const usage = `usage: devmodelctl <command> [flags]

commands:
  encode   JSON message on stdin to binary on stdout
  decode   binary message on stdin to JSON or text on stdout
  put      create or replace one adapter
  get      show one adapter
  list     list adapters
  delete   remove one adapter
  apply    upload a seed file as one batch
  ports    show the derived port plan
  token    mint a bearer token
`

// cli carries the process streams so commands can be driven from tests.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	dial   func(endpoint string, opts ...grpc.DialOption) (*grpc.ClientConn, error)
}

func main() {
	c := &cli{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr, dial: grpc.NewClient}
	os.Exit(c.run(os.Args[1:]))
}

func (c *cli) run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(c.stderr, usage)
		return 2
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "encode":
		err = c.encode(rest)
	case "decode":
		err = c.decode(rest)
	case "token":
		err = c.token(rest)
	case "put", "get", "list", "delete", "apply", "ports":
		err = c.remote(cmd, rest)
	case "help", "-h", "--help":
		fmt.Fprint(c.stdout, usage)
		return 0
	default:
		fmt.Fprintf(c.stderr, "devmodelctl: unknown command %q\n%s", cmd, usage)
		return 2
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "devmodelctl: %v\n", err)
		return 1
	}
	return 0
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func newMessage(kind string) (proto.Message, error) {
	switch kind {
	case "adapter", "SystemAdapter":
		return &config.SystemAdapter{}, nil
	case "params", "sWAdapterParams":
		return &config.SWAdapterParams{}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q (want adapter or params)", kind)
	}
}

func (c *cli) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(c.stdin)
	}
	return os.ReadFile(path)
}

func (c *cli) encode(args []string) error {
	fs := c.flagSet("encode")
	kind := fs.String("type", "adapter", "Message type: adapter or params")
	in := fs.String("in", "", "JSON input file (default stdin)")
	out := fs.String("out", "", "Binary output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := newMessage(*kind)
	if err != nil {
		return err
	}
	data, err := c.readInput(*in)
	if err != nil {
		return err
	}
	if err := wire.UnmarshalJSON(data, m); err != nil {
		return err
	}
	b, err := wire.Encode(m)
	if err != nil {
		return err
	}
	if *out != "" {
		return os.WriteFile(*out, b, 0o644)
	}
	_, err = c.stdout.Write(b)
	return err
}

func (c *cli) decode(args []string) error {
	fs := c.flagSet("decode")
	kind := fs.String("type", "adapter", "Message type: adapter or params")
	in := fs.String("in", "", "Binary input file (default stdin)")
	strict := fs.Bool("strict", false, "Reject known fields sent with the wrong wire type")
	format := fs.String("format", "json", "Output format: json or text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := newMessage(*kind)
	if err != nil {
		return err
	}
	data, err := c.readInput(*in)
	if err != nil {
		return err
	}
	var opts []wire.Option
	if *strict {
		opts = append(opts, wire.Strict())
	}
	if err := wire.Decode(data, m, opts...); err != nil {
		return err
	}
	return c.print(m, *format)
}

func (c *cli) print(m proto.Message, format string) error {
	var (
		b   []byte
		err error
	)
	switch format {
	case "json":
		b, err = wire.MarshalJSON(m)
	case "text":
		b, err = wire.MarshalText(m)
	default:
		return fmt.Errorf("unknown output format %q (want json or text)", format)
	}
	if err != nil {
		return err
	}
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	_, err = c.stdout.Write(b)
	return err
}

func (c *cli) token(args []string) error {
	fs := c.flagSet("token")
	secret := fs.String("secret", os.Getenv("DEVMODEL_AUTH_SECRET"), "HS256 secret shared with devmodeld")
	issuer := fs.String("issuer", "", "Token issuer")
	subject := fs.String("subject", "", "Token subject")
	roles := fs.String("roles", auth.RoleViewer, "Comma-separated roles: viewer, controller")
	ttl := fs.Duration("ttl", time.Hour, "Token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var list []string
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			list = append(list, r)
		}
	}
	tok, err := auth.Issue(auth.Config{Secret: *secret, Issuer: *issuer}, *subject, list, *ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.stdout, tok)
	return err
}

func (c *cli) remote(cmd string, args []string) error {
	fs := c.flagSet(cmd)
	endpoint := fs.String("endpoint", "localhost:50061", "devmodeld gRPC endpoint (host:port)")
	token := fs.String("token", os.Getenv("DEVMODEL_TOKEN"), "Bearer token for an auth-enabled daemon")
	timeout := fs.Duration("timeout", 10*time.Second, "Per-command deadline")
	file := fs.String("f", "", "Input file (put: adapter JSON; apply: seed file)")
	uplinks := fs.Bool("uplinks", false, "list: only adapters flagged as uplinks")
	replace := fs.Bool("replace", false, "apply: make the inventory exactly the seed file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
	if *token != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(auth.TokenCredentials{Token: *token}))
	}
	conn, err := c.dial(*endpoint, opts...)
	if err != nil {
		return fmt.Errorf("dial %s: %w", *endpoint, err)
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	client := devmodelv1.NewAdapterServiceClient(conn)

	name := func() (string, error) {
		if fs.NArg() != 1 {
			return "", fmt.Errorf("%s needs exactly one adapter name", cmd)
		}
		return fs.Arg(0), nil
	}

	switch cmd {
	case "put":
		data, err := c.readInput(*file)
		if err != nil {
			return err
		}
		in := &config.SystemAdapter{}
		if err := wire.UnmarshalJSON(data, in); err != nil {
			return err
		}
		out, err := client.PutAdapter(ctx, in)
		if err != nil {
			return err
		}
		return c.print(out, "json")

	case "get":
		n, err := name()
		if err != nil {
			return err
		}
		out, err := client.GetAdapter(ctx, &devmodelv1.GetAdapterRequest{Name: n})
		if err != nil {
			return err
		}
		return c.print(out, "json")

	case "list":
		out, err := client.ListAdapters(ctx, &devmodelv1.ListAdaptersRequest{UplinksOnly: *uplinks})
		if err != nil {
			return err
		}
		return c.print(out, "json")

	case "delete":
		n, err := name()
		if err != nil {
			return err
		}
		if _, err := client.DeleteAdapter(ctx, &devmodelv1.DeleteAdapterRequest{Name: n}); err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.stdout, "deleted %s\n", n)
		return err

	case "apply":
		if *file == "" {
			return fmt.Errorf("apply needs -f")
		}
		adapters, err := wire.ReadAdapterFile(*file)
		if err != nil {
			return err
		}
		out, err := client.ApplyAdapters(ctx, &devmodelv1.ApplyAdaptersRequest{Adapters: adapters, Replace: *replace})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.stdout, "applied %d, removed %d\n", out.GetApplied(), out.GetRemoved())
		return err

	case "ports":
		out, err := client.ListPorts(ctx, &devmodelv1.ListPortsRequest{})
		if err != nil {
			return err
		}
		return c.print(out, "json")
	}
	return fmt.Errorf("unknown command %q", cmd)
}
