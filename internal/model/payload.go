package model

// Payload holds the trimmed base64 source and the bytes it decodes to.
// It is recomputed on every decode and never cached.
type Payload struct {
	Raw  string
	Data []byte
}

// Text returns the decoded character sequence, byte for byte
func (p Payload) Text() string {
	return string(p.Data)
}

// Size returns the decoded size in bytes
func (p Payload) Size() int64 {
	return int64(len(p.Data))
}

// Blob is an exportable file: name, MIME type and content
type Blob struct {
	Name     string
	MIMEType string
	Data     []byte
}
