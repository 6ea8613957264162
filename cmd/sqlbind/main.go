package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/leporo/sqlbind"
	"gopkg.in/yaml.v3"
)

// request is a template and its parameters read from YAML:
//
//	template: SELECT * FROM users WHERE id = ?d{ AND block = ?d}
//	params: [42, !skip]
type request struct {
	Template string          `yaml:"template"`
	Params   sqlbind.Values `yaml:"params"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sqlbind", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	inputPath := fs.String("input", "", "YAML request file (stdin if empty)")
	dialectName := fs.String("dialect", "", "dialect, overrides the config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := sqlbind.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = sqlbind.LoadConfig(*configPath)
		if err != nil {
			return err
		}
	}
	if *dialectName != "" {
		cfg.Dialect = *dialectName
	}

	logger, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		return err
	}
	dialect, err := cfg.NewDialect()
	if err != nil {
		return err
	}

	var input []byte
	if *inputPath != "" {
		input, err = os.ReadFile(*inputPath)
	} else {
		input, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	var req request
	if err := yaml.Unmarshal(input, &req); err != nil {
		return fmt.Errorf("parse request: %w", err)
	}

	params := req.Params.Args()
	logger.Debug("rendering", "dialect", dialect.Name(), "template", req.Template, "params", len(params))

	sql, err := dialect.Render(req.Template, params...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, sql)
	return err
}
