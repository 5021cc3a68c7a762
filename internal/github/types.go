package github

// PR represents a pull request from GitHub
type PR struct {
	ID        int64
	Number    int
	Title     string
	URL       string
	State     string // "open" or "closed"
	Merged    bool
	MergedAt  string // RFC 3339, empty when not merged
	CreatedAt string // RFC 3339
	Additions int
	Deletions int
}

// ChangedFile is one entry of a pull request's file list
type ChangedFile struct {
	Filename string
	Patch    string // empty for binary or oversized files
}
