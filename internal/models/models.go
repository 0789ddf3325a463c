package models

// -- Algorithm listing --
type Algorithm struct {
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	Size      int    `json:"size"`
	BlockSize int    `json:"block_size"`
}

// -- Provider listing --
type Provider struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// DigestResult is one line of hashsum output.
type DigestResult struct {
	Algorithm string `json:"algorithm"`
	Source    string `json:"source"`
	Digest    string `json:"digest"`
}
