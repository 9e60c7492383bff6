/*
Package ippjob sequences the IPP operations that submit a print job: it
does not implement the wire codec itself - see package ipp for that - it
only orders the exchanges and extracts the job-id a real printer hands
back from Create-Job.

Example:

	package main

	import (
		"context"
		"net/http"
		"os"

		"github.com/openprinting/go-ipp-client/ippjob"
		"github.com/rs/zerolog"
	)

	func main() {
		log := zerolog.New(os.Stderr).With().Timestamp().Logger()

		seq := ippjob.NewSequencer(http.DefaultClient, os.Getenv("PRINTER_ADDR"), "", "", log)

		doc, _ := os.ReadFile("job.ras")
		jobID, err := seq.Submit(context.Background(), doc, "image/pwg-raster", "my job")
		if err != nil {
			panic(err)
		}

		log.Info().Int32("job_id", jobID).Msg("submitted")
	}
*/
package ippjob
