package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	lib "github.com/theoremus-urban-solutions/pns-helper"
	"github.com/theoremus-urban-solutions/pns-helper/config"
	"github.com/theoremus-urban-solutions/pns-helper/formatter"
	"github.com/theoremus-urban-solutions/pns-helper/payload"
)

func main() {
	if err := run(os.Args[1:], newFetcher(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pns-helper:", err)
		os.Exit(1)
	}
}

func run(args []string, f *fetcher, stdout io.Writer) error {
	fs := flag.NewFlagSet("pns-helper", flag.ContinueOnError)
	format := fs.String("format", "ios", "ios|xml|doc")
	root := fs.String("root", "", "root element for -format doc (overrides config)")
	configPath := fs.String("config", "", "path to config.yml")
	in := fs.String("in", "-", "message file path, http(s) URL, or - for stdin")
	logLevel := fs.String("log-level", "", "trace|debug|info|warn|error|disabled (overrides config)")
	genUUID := fs.Bool("uuid", false, "print a random UUID and exit")
	timestamp := fs.Bool("timestamp", false, "print the current timestamp and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *genUUID {
		_, err := fmt.Fprintln(stdout, lib.GenerateUUID())
		return err
	}
	if *timestamp {
		_, err := fmt.Fprintln(stdout, lib.GetTimestamp())
		return err
	}

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *root != "" {
		cfg.Notification.DocumentRoot = *root
	}

	h := lib.NewFromConfig(cfg)
	defer h.Flush()

	raw, err := f.fetch(*in)
	if err != nil {
		return fmt.Errorf("read message: %w", err)
	}

	var out []byte
	switch *format {
	case "ios":
		ev, err := payload.ParseMessage(raw)
		if err != nil {
			return err
		}
		out, err = formatter.NewResponseBuilder().BuildIndentedJSON(h.CreateIosNotification(ev))
		if err != nil {
			return err
		}
	case "xml":
		ev, err := payload.ParseMessage(raw)
		if err != nil {
			return err
		}
		s, err := h.CreateXmlNotification(ev)
		if err != nil {
			return err
		}
		out = []byte(s)
	case "doc":
		v, err := parseValue(raw)
		if err != nil {
			return err
		}
		s, err := h.CreateDocument(v)
		if err != nil {
			return err
		}
		out = []byte(s)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

// parseValue decodes any JSON or YAML document
func parseValue(raw []byte) (payload.Value, error) {
	v, err := payload.ParseJSON(raw)
	if err == nil {
		return v, nil
	}
	return payload.ParseYAML(raw)
}
