// Command huffdemo encodes and decodes sample sentences and prints what each
// stage of the Huffman pipeline produced.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	huffman "github.com/chronos-tachyon/huffmantree"
)

var defaultSentences = []string{
	"The bird is the word",
	"My name is varun bansal",
	"cccccc",
}

func main() {
	jsonFlag := flag.Bool("json", false, "Print each code table as JSON")
	dumpFlag := flag.Bool("dump", false, "Print each tree")
	noColorFlag := flag.Bool("no-color", false, "Disable colored output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s [OPTIONS] [sentence...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flag:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *noColorFlag {
		color.NoColor = true
	}

	sentences := flag.Args()
	if len(sentences) == 0 {
		sentences = defaultSentences
	}

	d := demo{
		out:  color.Output,
		p:    message.NewPrinter(language.English),
		json: *jsonFlag,
		dump: *dumpFlag,
	}
	failed := false
	for index, sentence := range sentences {
		if err := d.run(index+1, sentence); err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "case %d: %v\n", index+1, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

type demo struct {
	out  io.Writer
	p    *message.Printer
	json bool
	dump bool
}

func (d demo) run(n int, sentence string) error {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintf(d.out, "Test Case %d\n", n)

	d.p.Fprintf(d.out, "The size of the data is: %d bytes\n", len(sentence))
	fmt.Fprintf(d.out, "The content of the data is: %s\n\n", sentence)

	var e huffman.Encoder
	e.Init(sentence)
	bits := e.Bits()

	d.p.Fprintf(d.out, "The size of the encoded data is: %d bytes (%d bits)\n", len(bits.Pack()), bits.Len())
	fmt.Fprintf(d.out, "The content of the encoded data is: %s\n\n", bits)

	if d.json {
		raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(e.Codes(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "%s\n\n", raw)
	}
	if d.dump {
		if _, err := e.Tree().Dump(d.out); err != nil {
			return err
		}
		fmt.Fprintln(d.out)
	}

	if e.Tree() == nil {
		fmt.Fprintf(d.out, "Nothing to decode\n\n")
		return nil
	}

	decoded, err := huffman.Decode(bits, e.Tree())
	if err != nil {
		return fmt.Errorf("decoding %q: %w", sentence, err)
	}

	d.p.Fprintf(d.out, "The size of the decoded data is: %d bytes\n", len(decoded))
	fmt.Fprintf(d.out, "The content of the decoded data is: %s\n\n", decoded)
	return nil
}
