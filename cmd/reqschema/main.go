package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reqschema/reqschema"
	"github.com/reqschema/reqschema/schemafile"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `reqschema CLI

Usage:
  reqschema check -schema request.yaml
  reqschema validate -schema request.yaml [-payload body.json|-] [-header "Name: value"]...

check reports whether a schema document is well-formed.
validate runs a JSON payload (file or stdin) through the schema and prints
every violation, or the validated DTO on success.`)
}

// headerList collects repeatable -header flags of the form "Name: value".
type headerList map[string]string

func (h headerList) String() string { return fmt.Sprint(map[string]string(h)) }

func (h headerList) Set(s string) error {
	name, value, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("header %q: want \"Name: value\"", s)
	}
	h[strings.TrimSpace(name)] = strings.TrimSpace(value)
	return nil
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "schema document to check")
	_ = fs.Parse(args)
	if *schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	rs, err := schemafile.LoadFile(*schemaPath)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("ok: %s %d header(s), %d root propert(ies)\n", rs.Method, len(rs.Headers), len(rs.Body.Properties()))
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "schema document")
	payloadPath := fs.String("payload", "-", "JSON payload file, or - for stdin")
	headers := headerList{}
	fs.Var(headers, "header", `required header, repeatable ("Name: value")`)
	_ = fs.Parse(args)
	if *schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	rs, err := schemafile.LoadFile(*schemaPath)
	if err != nil {
		fatalf("%v", err)
	}
	payload, err := readPayload(*payloadPath)
	if err != nil {
		fatalf("%v", err)
	}

	req := reqschema.NewRequest(rs)
	dto, err := req.Process(headers, payload)
	if err != nil {
		if iss, ok := reqschema.AsIssues(err); ok {
			for _, it := range iss {
				fmt.Fprintf(os.Stderr, "%s: %s: %s\n", it.Path, it.Rule, it.Message)
			}
			fmt.Fprintf(os.Stderr, "%d violation(s)\n", len(iss))
			os.Exit(1)
		}
		fatalf("%v", err)
	}

	out, err := json.MarshalIndent(dto.Export(), "", "  ")
	if err != nil {
		fatalf("render: %v", err)
	}
	fmt.Println(string(out))
}

// readPayload decodes the JSON payload straight off the file or stdin stream.
func readPayload(path string) (map[string]any, error) {
	if path == "-" {
		return reqschema.DecodeJSONReader(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return reqschema.DecodeJSONReader(f)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "reqschema: "+format+"\n", args...)
	os.Exit(1)
}
