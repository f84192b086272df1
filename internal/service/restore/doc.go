// Package restore brings alarm instances back after a backup restore.
// The platform restore agent drops a JSON collection file into the restore
// directory; the processor merges it into the store and consumes the file,
// while the watcher turns the file's appearance into a restore event for
// the router.
package restore
