// Command pbwire encodes YAML lists of scalar values into protobuf wire bytes
// and decodes wire bytes back into the same YAML shape.
//
//	pbwire -f values.yaml          # prints hex
//	pbwire -r < values.yaml > out  # writes raw bytes
//	pbwire -d -k int32,string < hex
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
	flag "maunium.net/go/mauflag"

	"github.com/oy3o/pbwire"
	"github.com/oy3o/pbwire/internal/script"
)

var inputPath = flag.MakeFull("f", "file", "Read input from this file instead of stdin.", "-").String()
var decodeMode = flag.MakeFull("d", "decode", "Decode hex input instead of encoding a YAML script.", "false").Bool()
var kindList = flag.MakeFull("k", "kinds", "Comma separated kinds to decode, in order.", "").String()
var rawOutput = flag.MakeFull("r", "raw", "Write raw bytes instead of hex when encoding.", "false").Bool()
var verbose = flag.MakeFull("v", "verbose", "Enable debug logging.", "false").Bool()
var wantHelp, _ = flag.MakeHelpFlag()

func main() {
	flag.SetHelpTitles(
		"pbwire - protobuf scalar wire encoder",
		"pbwire [-hdrv] [-f <path>] [-k <kinds>]")
	err := flag.Parse()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		flag.PrintHelp()
		os.Exit(1)
	} else if *wantHelp {
		flag.PrintHelp()
		os.Exit(0)
	}

	log, err := (&zeroconfig.Config{
		Writers: []zeroconfig.WriterConfig{{
			Type:   zeroconfig.WriterTypeStderr,
			Format: zeroconfig.LogFormatPrettyColored,
		}},
	}).Compile()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Failed to initialize logger:", err)
		os.Exit(12)
	}
	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := log.Level(level)
	os.Exit(run(&logger, os.Stdout))
}

// run processes the input named by the flags and returns the exit code.
func run(log *zerolog.Logger, stdout io.Writer) int {
	input, err := openInput(*inputPath)
	if err != nil {
		log.Error().Err(err).Str("path", *inputPath).Msg("Failed to open input")
		return 2
	}
	defer input.Close()

	if *decodeMode {
		err = runDecode(log, input, stdout)
	} else {
		err = runEncode(log, input, stdout)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to process input")
		return 3
	}
	return 0
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func runEncode(log *zerolog.Logger, r io.Reader, w io.Writer) error {
	entries, err := script.Parse(r)
	if err != nil {
		return err
	}
	log.Debug().Int("entries", len(entries)).Msg("Parsed script")

	e := pbwire.AcquireEncoder(nil)
	defer pbwire.ReleaseEncoder(e)
	if err = script.Encode(e, entries); err != nil {
		return err
	}
	log.Debug().Int("bytes", e.Len()).Msg("Encoded script")

	if *rawOutput {
		_, err = e.WriteTo(w)
		return err
	}
	_, err = fmt.Fprintln(w, hex.EncodeToString(e.Bytes()))
	return err
}

func runDecode(log *zerolog.Logger, r io.Reader, w io.Writer) error {
	if *kindList == "" {
		return fmt.Errorf("decoding needs -k with one of: %s", strings.Join(script.Kinds, ", "))
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(strings.Join(strings.Fields(string(text)), ""))
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}
	kinds := strings.Split(*kindList, ",")
	log.Debug().Int("bytes", len(data)).Strs("kinds", kinds).Msg("Decoding input")

	results, err := script.Decode(pbwire.NewDecoder(data), kinds)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(results)
}
