// pkg/model/regulation.go
package model

// RegulationRecord is a row of the regulations (van_ban) table derived from a document file
type RegulationRecord struct {
	Name     string // Display name: file name without the extension
	URL      string // Reference served by the backend: the file name itself
	IssuedOn string // YYYY-MM-DD taken from the file name, empty when unknown
	FileName string // Source document file name
}

// HasIssueDate reports whether an issuance date was found
func (r RegulationRecord) HasIssueDate() bool {
	return r.IssuedOn != ""
}
