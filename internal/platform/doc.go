package platform

// Package platform contains OS integration glue: the downloads directory,
// filesystem helpers, and opening or revealing files with the system tools.
