// Package tagstore implements the bidirectional user/tag index.
//
// A Store keeps two maps that are inverses of each other: user -> tags and
// tag -> users. Both are guarded by one mutex and every mutation is written
// to a JSON data file before the mutex is released, so a reader never sees
// a state that has not been handed to the filesystem.
//
// Persistence faults are logged and swallowed: the in-memory index stays
// authoritative for the running process and the file catches up on the next
// successful write.
package tagstore
