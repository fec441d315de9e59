package render

// Package render plans what the result panel shows for a decoded payload.
// Plan is a pure function of the content kind and the payload; the UI applies
// the resulting ViewState in one pass. Fragment produces the same result as an
// HTML fragment for headless use.
