// Command mpx is a small CLI for inspecting and producing MessagePack
// buffers built with this module's value package.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/lmpynix/minimp/digest"
	"github.com/lmpynix/minimp/errs"
	"github.com/lmpynix/minimp/extcompress"
	"github.com/lmpynix/minimp/format"
	"github.com/lmpynix/minimp/sizing"
	"github.com/lmpynix/minimp/value"
)

func main() {
	app := cli.NewApp()
	app.Name = "mpx"
	app.Usage = "inspect and produce MessagePack buffers"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "decode a hex-encoded MessagePack buffer and print its structure",
			ArgsUsage: "<hex>",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "host-endian",
					Usage: "read numeric payloads using host byte order instead of big-endian",
				},
				cli.BoolFlag{
					Name:  "digest",
					Usage: "print the xxHash64 digest of the input buffer",
				},
			},
			Action: decodeCommand,
		},
		{
			Name:      "encode",
			Usage:     "encode a small literal description into a MessagePack array",
			ArgsUsage: "<token> [<token> ...]  (token is type:value, e.g. i:42 s:hello b:true)",
			Action:    encodeCommand,
		},
		{
			Name:      "pack",
			Usage:     "compress a hex payload and wrap it as a MessagePack ext element",
			ArgsUsage: "<ext-type> <hex-payload>",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "algo",
					Value: "s2",
					Usage: "compression algorithm: none, zstd, s2, lz4",
				},
			},
			Action: packCommand,
		},
		{
			Name:      "unpack",
			Usage:     "decode a MessagePack ext element and decompress its payload",
			ArgsUsage: "<hex>",
			Action:    unpackCommand,
		},
		{
			Name:      "estimate",
			Usage:     "fit a size model from count,bytes sample pairs and predict at a target count",
			ArgsUsage: "<target-count> <count1>,<bytes1> [<count2>,<bytes2> ...]",
			Action:    estimateCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func decodeCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.NewExitError("decode requires a hex-encoded buffer argument", 1)
	}
	buf, err := hex.DecodeString(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid hex input: %v", err), 1)
	}

	if c.Bool("digest") {
		fmt.Printf("digest: %016x\n", digest.Sum64(buf))
	}

	var opts []value.DecodeOption
	if c.Bool("host-endian") {
		opts = append(opts, value.WithHostEndian())
	}

	el, n, err := value.DecodeAt(buf, 0, opts...)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("decode failed: %v", err), 1)
	}

	fmt.Printf("%s %d bytes consumed\n", color.GreenString("ok"), n)
	printElement(el, 0)
	return nil
}

func printElement(el value.Element, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	switch el.Kind {
	case value.KindNil:
		fmt.Printf("%s%s\n", indent, color.YellowString("nil"))
	case value.KindBool:
		fmt.Printf("%s%v\n", indent, el.Bool)
	case value.KindInt:
		fmt.Printf("%s%d\n", indent, el.Int)
	case value.KindUInt:
		fmt.Printf("%s%d\n", indent, el.UInt)
	case value.KindFloat:
		fmt.Printf("%s%g\n", indent, el.Float32)
	case value.KindDouble:
		fmt.Printf("%s%g\n", indent, el.Float64)
	case value.KindStr:
		fmt.Printf("%s%q\n", indent, string(el.Str))
	case value.KindBin:
		fmt.Printf("%sbin(%d bytes)\n", indent, len(el.Bin))
	case value.KindExt:
		fmt.Printf("%sext(type=%d, %d bytes)\n", indent, el.ExtType, len(el.ExtData))
	case value.KindArray:
		fmt.Printf("%sarray(%d)\n", indent, el.Array.Len())
		for {
			child, ok, err := el.Array.Next()
			if err != nil || !ok {
				break
			}
			printElement(child, depth+1)
		}
	case value.KindMap:
		fmt.Printf("%smap(%d)\n", indent, el.Map.Len())
		for {
			p, ok, err := el.Map.Next()
			if err != nil || !ok {
				break
			}
			printElement(p.Key, depth+1)
			printElement(p.Value, depth+1)
		}
	}
}

// parseToken turns a "type:value" token into an Element. This is
// deliberately minimal: it is not a schema mapper, only a convenience for
// building small test buffers from the command line.
func parseToken(tok string) (value.Element, error) {
	parts := strings.SplitN(tok, ":", 2)
	if len(parts) != 2 {
		return value.Element{}, fmt.Errorf("token %q must be type:value", tok)
	}
	typ, raw := parts[0], parts[1]
	switch typ {
	case "i":
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return value.Element{}, fmt.Errorf("token %q: %w", tok, err)
		}
		return value.IntElem(n), nil
	case "u":
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return value.Element{}, fmt.Errorf("token %q: %w", tok, err)
		}
		return value.UIntElem(n), nil
	case "f":
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return value.Element{}, fmt.Errorf("token %q: %w", tok, err)
		}
		return value.DoubleElem(n), nil
	case "b":
		n, err := strconv.ParseBool(raw)
		if err != nil {
			return value.Element{}, fmt.Errorf("token %q: %w", tok, err)
		}
		return value.BoolElem(n), nil
	case "s":
		return value.StrElem([]byte(raw)), nil
	case "nil":
		return value.Nil(), nil
	default:
		return value.Element{}, fmt.Errorf("token %q: unknown type %q (use i, u, f, b, s, or nil)", tok, typ)
	}
}

func encodeCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.NewExitError("encode requires at least one type:value token", 1)
	}

	items := make([]value.Element, 0, c.NArg())
	for _, tok := range c.Args() {
		el, err := parseToken(tok)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		items = append(items, el)
	}

	el := value.ArrayElem(items)
	buf := make([]byte, el.ByteSize())
	n, ok := value.EncodeAt(buf, 0, el)
	if !ok {
		return cli.NewExitError(errs.ErrEncodeFailed.Error(), 1)
	}

	fmt.Println(hex.EncodeToString(buf[:n]))
	return nil
}

func algoFromFlag(name string) (format.CompressionType, error) {
	switch strings.ToLower(name) {
	case "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", name)
	}
}

func packCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.NewExitError("pack requires an ext-type and a hex payload", 1)
	}

	extType, err := strconv.ParseInt(c.Args().Get(0), 10, 8)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid ext-type: %v", err), 1)
	}
	payload, err := hex.DecodeString(c.Args().Get(1))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid hex payload: %v", err), 1)
	}

	algo, err := algoFromFlag(c.String("algo"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	wrapped, err := extcompress.Wrap(algo, payload)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("compress failed: %v", err), 1)
	}

	el := value.ExtElem(int8(extType), wrapped)
	buf := make([]byte, el.ByteSize())
	n, ok := value.EncodeAt(buf, 0, el)
	if !ok {
		return cli.NewExitError(errs.ErrEncodeFailed.Error(), 1)
	}

	fmt.Printf("%s %d -> %d bytes (%s)\n", color.GreenString("packed"), len(payload), n, algo)
	fmt.Println(hex.EncodeToString(buf[:n]))
	return nil
}

func unpackCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.NewExitError("unpack requires a hex-encoded ext element", 1)
	}
	buf, err := hex.DecodeString(c.Args().Get(0))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid hex input: %v", err), 1)
	}

	el, _, err := value.DecodeAt(buf, 0)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("decode failed: %v", err), 1)
	}
	if el.Kind != value.KindExt {
		return cli.NewExitError(fmt.Sprintf("expected an ext element, got %s", el.Kind), 1)
	}

	restored, err := extcompress.Unwrap(el.ExtData)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("decompress failed: %v", err), 1)
	}

	fmt.Printf("%s ext type=%d, %d -> %d bytes\n", color.GreenString("unpacked"), el.ExtType, len(el.ExtData), len(restored))
	fmt.Println(hex.EncodeToString(restored))
	return nil
}

func estimateCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.NewExitError("estimate requires a target count and at least one count,bytes sample", 1)
	}

	var target int
	if _, err := fmt.Sscanf(c.Args().Get(0), "%d", &target); err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid target count: %v", err), 1)
	}

	var samples []sizing.Sample
	for _, arg := range c.Args().Tail() {
		var count, bytes int
		if _, err := fmt.Sscanf(arg, "%d,%d", &count, &bytes); err != nil {
			return cli.NewExitError(fmt.Sprintf("invalid sample %q: %v", arg, err), 1)
		}
		samples = append(samples, sizing.Sample{Count: count, Bytes: bytes})
	}

	result, err := sizing.Analyze(samples)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("analysis failed: %v", err), 1)
	}

	fmt.Printf("%s %s\n", color.GreenString("best fit:"), result.BestFit)
	fmt.Printf("predicted bytes at count=%d: %d\n", target, result.EstimateBytes(target))
	return nil
}
