package model

// Package model defines domain data structures used across the app: decoded
// payloads, content kinds, alert severities and the view state that drives the
// result panel. View state is a plain value computed once per decode and
// applied to the UI in a single pass.
