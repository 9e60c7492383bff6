// The five-operation job-submission sequence: Get-Printer-Attributes
// (validation only), Validate-Job, Create-Job, Send-Document, Get-Jobs.

package ippjob

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/openprinting/go-ipp-client/ipp"
	"github.com/rs/zerolog"
)

// Sequencer holds everything one printer's job submissions need across
// several IPP exchanges: the HTTP transport, the printer's address, and a
// monotonic request-id counter. A Sequencer is safe for concurrent use by
// multiple goroutines submitting to the same printer; each Submit call
// gets its own run of request ids off the shared counter.
type Sequencer struct {
	doer       Doer
	printerURI string
	addr       string
	lang       string
	user       string
	reqID      uint32
	log        zerolog.Logger
}

// NewSequencer makes a Sequencer for the printer at addr ("host:port").
// lang is the RFC 5646 natural-language tag sent on every request; an
// empty lang defaults to "en-us". An empty user defaults to "anonymous".
func NewSequencer(doer Doer, addr, lang, user string, log zerolog.Logger) *Sequencer {
	if lang == "" {
		lang = "en-us"
	}
	if user == "" {
		user = "anonymous"
	}
	return &Sequencer{
		doer:       doer,
		addr:       addr,
		printerURI: "ipp://" + addr,
		lang:       lang,
		user:       user,
		log:        log.With().Str("component", "ippjob").Logger(),
	}
}

// Submit runs the five-operation sequence that gets doc onto the printer's
// queue and returns the job-id Create-Job assigned. A failed
// Get-Printer-Attributes step is logged and does not abort the sequence -
// per spec.md §4.8 it exists only to validate connectivity before the job
// operations that matter. Every other step's error aborts the sequence.
func (s *Sequencer) Submit(ctx context.Context, doc []byte, docFormat, jobName string) (int32, error) {
	plainAttrs := baselineOperationAttrs(s.lang, s.printerURI, s.user, false)
	if _, err := s.exchange(ctx, ipp.OpGetPrinterAttributes, plainAttrs, nil); err != nil {
		s.log.Warn().Err(err).Msg("get-printer-attributes failed, continuing anyway")
	}

	jobAttrs := baselineOperationAttrs(s.lang, s.printerURI, s.user, true)

	if _, err := s.exchange(ctx, ipp.OpValidateJob, jobAttrs, nil); err != nil {
		return 0, err
	}

	createResp, err := s.exchange(ctx, ipp.OpCreateJob, createJobAttrs(jobAttrs, jobName), nil)
	if err != nil {
		return 0, err
	}

	jobID, err := jobIDFrom(createResp.Job)
	if err != nil {
		return 0, err
	}

	if _, err := s.exchange(ctx, ipp.OpSendDocument, sendDocumentAttrs(jobAttrs, jobID, docFormat), doc); err != nil {
		return jobID, err
	}

	if _, err := s.exchange(ctx, ipp.OpGetJobs, jobAttrs, nil); err != nil {
		return jobID, err
	}

	return jobID, nil
}

// exchange builds a request for a single operation, assigns it the next
// monotonic request id, sends it over doer, and decodes the response. A
// response status code >= 0x0400 (client-error/server-error, per §6) is
// reported as a *StatusError; the decoded response is still returned
// alongside it so a caller (or this package's own Submit) can inspect
// whatever attributes came back.
func (s *Sequencer) exchange(ctx context.Context, op ipp.Op, operation ipp.Attributes, data []byte) (*ipp.Message, error) {
	id := atomic.AddUint32(&s.reqID, 1)

	req := ipp.NewRequest(ipp.MakeVersion(1, 1), op, id)
	req.Operation = operation
	req.Data = data

	body, err := req.EncodeBytes()
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, "http://"+s.addr, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", ipp.ContentType)

	start := time.Now()
	httpResp, err := s.doer.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, fmt.Errorf("ipp exchange: unexpected HTTP status %s", httpResp.Status)
	}

	var resp ipp.Message
	if err := resp.Decode(httpResp.Body); err != nil {
		return nil, err
	}

	status := ipp.Status(resp.Code)
	s.log.Debug().
		Stringer("operation", op).
		Uint32("request_id", id).
		Stringer("status", status).
		Dur("elapsed", time.Since(start)).
		Msg("ipp exchange")

	if status >= ipp.StatusErrorBadRequest {
		return &resp, statusErr(op, status)
	}

	return &resp, nil
}
