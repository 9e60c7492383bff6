/*
Package ipp implements the IPP core protocol, as defined by RFC 8010 and
RFC 8011.

It does not implement high-level operations such as "print a document" or
"cancel a print job" - see package ippjob for that. Its scope is limited to
generating and parsing IPP requests and responses.

IPP uses a simple request/response model:

 1. Send a request
 2. Receive a response

Request and response share a single wire format, represented here by
Message: the only difference is that Message.Code holds an operation code
in a request and a status code in a response, so the encode/decode path is
common to both.

Example:

	package main

	import (
		"bytes"
		"net/http"
		"os"

		"github.com/openprinting/go-ipp-client/ipp"
	)

	func makeRequest(printerURI string) ([]byte, error) {
		m := ipp.NewRequest(ipp.DefaultVersion, ipp.OpGetPrinterAttributes, 1)
		m.Operation.Add(ipp.MakeAttr("attributes-charset",
			ipp.TagCharset, ipp.String("utf-8")))
		m.Operation.Add(ipp.MakeAttr("attributes-natural-language",
			ipp.TagLanguage, ipp.String("en-US")))
		m.Operation.Add(ipp.MakeAttr("printer-uri",
			ipp.TagURI, ipp.String(printerURI)))

		return m.EncodeBytes()
	}

	func main() {
		printerURI := "ipp://" + os.Getenv("PRINTER_ADDR")

		request, err := makeRequest(printerURI)
		if err != nil {
			panic(err)
		}

		resp, err := http.Post("http://"+os.Getenv("PRINTER_ADDR"),
			"application/ipp", bytes.NewBuffer(request))
		if err != nil {
			panic(err)
		}
		defer resp.Body.Close()

		var respMsg ipp.Message
		if err := respMsg.Decode(resp.Body); err != nil {
			panic(err)
		}

		respMsg.Print(os.Stdout, false)
	}
*/
package ipp
