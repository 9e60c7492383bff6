// Pure functions that build the Operation/Job attribute groups each step
// of the submission sequence sends, kept separate from the sequencing
// logic in orchestrator.go so each is independently testable.

package ippjob

import "github.com/openprinting/go-ipp-client/ipp"

// baselineOperationAttrs builds the Operation-Attributes group every
// request in the sequence carries, per spec.md §4.8: charset, natural
// language, printer-uri, plus requesting-user-name for job-scoped
// operations (everything but Get-Printer-Attributes).
func baselineOperationAttrs(lang, printerURI, user string, jobScoped bool) ipp.Attributes {
	attrs := ipp.Attributes{
		ipp.MakeAttribute("attributes-charset", ipp.TagCharset, ipp.String("utf-8")),
		ipp.MakeAttribute("attributes-natural-language", ipp.TagLanguage, ipp.String(lang)),
		ipp.MakeAttribute("printer-uri", ipp.TagURI, ipp.String(printerURI)),
	}
	if jobScoped {
		attrs = append(attrs, ipp.MakeAttribute("requesting-user-name", ipp.TagName, ipp.String(user)))
	}
	return attrs
}

// createJobAttrs appends the job-name attribute Create-Job sends on top
// of the baseline Operation-Attributes group.
func createJobAttrs(base ipp.Attributes, jobName string) ipp.Attributes {
	if jobName == "" {
		return base
	}
	return append(base.Clone(), ipp.MakeAttribute("job-name", ipp.TagName, ipp.String(jobName)))
}

// sendDocumentAttrs appends the job-id and document-format attributes
// Send-Document sends on top of the baseline Operation-Attributes group,
// plus last-document=true since this orchestrator always sends the whole
// document in one exchange.
func sendDocumentAttrs(base ipp.Attributes, jobID int32, docFormat string) ipp.Attributes {
	attrs := append(base.Clone(),
		ipp.MakeAttribute("job-id", ipp.TagInteger, ipp.Integer(jobID)),
		ipp.MakeAttribute("last-document", ipp.TagBoolean, ipp.Boolean(true)),
	)
	if docFormat != "" {
		attrs = append(attrs, ipp.MakeAttribute("document-format", ipp.TagMimeType, ipp.String(docFormat)))
	}
	return attrs
}

// jobIDFrom extracts the job-id attribute's scalar Integer value from a Job
// group, per spec.md §4.8: "the Create-Job response is expected to
// include a Job-Attributes group whose attributes contain a scalar
// job-id: Integer". Returns a protocol error if the attribute is absent
// or isn't an Integer.
func jobIDFrom(job ipp.Attributes) (int32, error) {
	attr, ok := job.Get("job-id")
	if !ok {
		return 0, ipp.NewProtocolError("create-job response: missing job-id attribute")
	}
	if len(attr.Values) != 1 {
		return 0, ipp.NewProtocolError("create-job response: job-id has %d values, want 1", len(attr.Values))
	}
	id, ok := attr.Values[0].V.(ipp.Integer)
	if !ok {
		return 0, ipp.NewProtocolError("create-job response: job-id has tag %s, want Integer", attr.Values[0].T)
	}
	return int32(id), nil
}
