// Package download exports decoded payloads: it builds typed blobs, saves them
// to the download directory under non-clashing names, writes temporary preview
// files that are opened with the default application, and checks PDF documents
// with pdfcpu.
package download
