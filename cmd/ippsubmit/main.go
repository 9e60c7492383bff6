// Command ippsubmit talks to the printer named by PRINTER_ADDR. With no
// arguments it sends a single Get-Printer-Attributes request and prints
// the decoded response. Given a PWG-Raster file path, it instead runs the
// full five-operation job-submission sequence against that file.
package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/openprinting/go-ipp-client/ipp"
	"github.com/openprinting/go-ipp-client/ippjob"
	"github.com/rs/zerolog"
)

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	addr := os.Getenv("PRINTER_ADDR")
	if addr == "" {
		fmt.Fprintln(os.Stderr, "PRINTER_ADDR is not set")
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) > 1 {
		submit(addr, os.Args[1], log)
		return
	}

	getPrinterAttributes(addr)
}

func getPrinterAttributes(addr string) {
	req := ipp.NewRequest(ipp.DefaultVersion, ipp.OpGetPrinterAttributes, 1)
	req.Operation.Add(ipp.MakeAttribute("attributes-charset", ipp.TagCharset, ipp.String("utf-8")))
	req.Operation.Add(ipp.MakeAttribute("attributes-natural-language", ipp.TagLanguage, ipp.String("en-us")))
	req.Operation.Add(ipp.MakeAttribute("printer-uri", ipp.TagURI, ipp.String("ipp://"+addr)))

	data, err := req.EncodeBytes()
	check(err)

	resp, err := http.Post("http://"+addr, ipp.ContentType, bytes.NewReader(data))
	check(err)
	defer resp.Body.Close()

	var respMsg ipp.Message
	check(respMsg.Decode(resp.Body))

	respMsg.Print(os.Stdout, false)
}

func submit(addr, rasterPath string, log zerolog.Logger) {
	doc, err := os.ReadFile(rasterPath)
	check(err)

	seq := ippjob.NewSequencer(http.DefaultClient, addr, "", "", log)

	jobID, err := seq.Submit(context.Background(), doc, "image/pwg-raster", filepath.Base(rasterPath))
	check(err)

	fmt.Printf("submitted job %d\n", jobID)
}
