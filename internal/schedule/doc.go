package schedule

// Package schedule provides cancellable delayed tasks. The UI uses them for the
// short delay before decoding and for auto-dismissing alerts, so that a newer
// action can cancel work scheduled by an older one.
