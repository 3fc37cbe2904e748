package model

import "time"

// IngestRun records one load of a cleaned batch into the store.
type IngestRun struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"` // file or scrape batch the rows came from
	Rows      int       `json:"rows"`
	Report    Report    `json:"report"`
	CreatedAt time.Time `json:"created_at"`
}
