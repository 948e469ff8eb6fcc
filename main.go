package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"

	"github.com/lexbrasil/normaparse/norma"
	"github.com/lexbrasil/normaparse/normas"
	"github.com/lexbrasil/normaparse/scrape"
)

func main() {
	var (
		format  = flag.String("format", "auto", "input format: auto, scrape or normas")
		cfgPath = flag.String("config", "config.json", "configuration file")
		out     = flag.String("o", "", "output file (default stdout)")
		debug   = flag.Bool("debug", false, "dump the first parsed article to stderr")
		urn     = flag.String("urn", "", "statute urn")
		name    = flag.String("name", "", "statute name")
		ementa  = flag.String("ementa", "", "statute ementa")
	)
	flag.Parse()

	cfg, err := config(*cfgPath)
	if err != nil && !os.IsNotExist(errors.Cause(err)) {
		log.Fatalln(err)
	}

	payload, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatalln(errors.Wrap(err, "could not read input"))
	}

	vocab, err := norma.LoadVocabulary(cfg.Vocabulary)
	if err != nil {
		log.Fatalln(err)
	}

	mode := *format
	if mode == "auto" {
		mode = "normas"
		if strings.Contains(string(payload), "node-id=") {
			mode = "scrape"
		}
	}

	var law *norma.Law
	switch mode {
	case "scrape":
		id, number := normas.LawIdentity(*urn)
		law, err = scrape.Parse(string(payload), scrape.Options{
			ID:         id,
			Name:       *name,
			Number:     number,
			Ementa:     *ementa,
			URN:        *urn,
			Vocabulary: vocab,
		})
	case "normas":
		law, err = normas.Parse(payload, normas.Metadata{
			Title:  *name,
			URN:    *urn,
			Ementa: *ementa,
		}, normas.Options{
			Vocabulary: vocab,
			Builder:    norma.BuilderOptions{HonorLeadingHeadings: cfg.HonorLeadingHeadings},
		})
	default:
		log.Fatalln("unknown format:", mode)
	}
	if err != nil {
		log.Fatalln(err)
	}

	if *debug && len(law.Artigos) > 0 {
		pp.Fprintln(os.Stderr, law.Artigos[0])
	}

	dest := *out
	if dest == "" {
		dest = cfg.Output
	}
	if err := writeOutput(dest, law); err != nil {
		log.Fatalln(err)
	}

	log.Printf("parsed %s articles", humanize.Comma(int64(len(law.Artigos))))
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, law *norma.Law) error {
	data, err := json.MarshalIndent(law, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode output")
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "could not write output")
}
