package decode

// Package decode turns user supplied base64 text into bytes. It follows the
// forgiving-base64 rules browsers apply in atob: ASCII whitespace is ignored and
// padding is optional, everything else outside the standard alphabet fails.
